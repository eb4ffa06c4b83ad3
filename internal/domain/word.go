package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxCandidateProbes is the number of candidate words tried per letter before
// falling back to the static word.
const MaxCandidateProbes = 5

// NoExampleSentence is used when a dictionary entry carries no usage example.
const NoExampleSentence = "No example sentence found."

// Alphabet lists the letters of a word set in output order.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// WordRecord is one letter's resolved word with its meaning and an example.
type WordRecord struct {
	Letter  string
	Word    string
	Meaning string
	Example string
}

// Tier is the difficulty level controlling how rare the chosen words are.
type Tier string

const (
	TierBeginner     Tier = "beginner"
	TierIntermediate Tier = "intermediate"
	TierProficient   Tier = "proficient"
)

// Tiers lists every tier in reporting order.
var Tiers = []Tier{TierBeginner, TierIntermediate, TierProficient}

func (t Tier) String() string { return string(t) }

func (t Tier) IsValid() bool {
	switch t {
	case TierBeginner, TierIntermediate, TierProficient:
		return true
	}
	return false
}

// MaxFrequency returns the frequency ceiling sent to the word source.
// A lower ceiling yields a rarer word pool.
func (t Tier) MaxFrequency() int {
	switch t {
	case TierIntermediate:
		return 500
	case TierProficient:
		return 100
	default:
		return 1000
	}
}

// ParseTier maps user input to a Tier. Unknown input yields TierBeginner.
func ParseTier(s string) Tier {
	t := Tier(strings.ToLower(strings.TrimSpace(s)))
	if t.IsValid() {
		return t
	}
	return TierBeginner
}

var fallbackWords = map[byte]string{
	'A': "Apple", 'B': "Brave", 'C': "Clever", 'D': "Dream", 'E': "Energy", 'F': "Future",
	'G': "Grace", 'H': "Happy", 'I': "Imagine", 'J': "Journey", 'K': "Kind", 'L': "Laugh",
	'M': "Magic", 'N': "Noble", 'O': "Open", 'P': "Peace", 'Q': "Quest", 'R': "Rise",
	'S': "Smile", 'T': "Trust", 'U': "Unity", 'V': "Value", 'W': "Wish", 'X': "Xenial",
	'Y': "Youth", 'Z': "Zeal",
}

// FallbackWord returns the static word used when live lookups fail for letter.
// The letter is matched case-insensitively; ok is false outside A-Z.
func FallbackWord(letter byte) (string, bool) {
	if letter >= 'a' && letter <= 'z' {
		letter -= 'a' - 'A'
	}
	w, ok := fallbackWords[letter]
	return w, ok
}

// IsLetter reports whether s is exactly one uppercase ASCII letter.
func IsLetter(s string) bool {
	return len(s) == 1 && s[0] >= 'A' && s[0] <= 'Z'
}

// Capitalize upper-cases the first rune and lower-cases the rest.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
