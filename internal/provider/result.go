package provider

import "errors"

// ErrLookupFailed is returned by a dictionary lookup that could not produce
// a complete definition: transport failure, non-200 status, undecodable body,
// or a payload without entries, meanings or definitions.
var ErrLookupFailed = errors.New("dictionary lookup failed")

// Definition is the structured result of a single dictionary lookup.
type Definition struct {
	Word    string
	Meaning string
	Example string
}
