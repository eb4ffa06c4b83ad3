package datamuse

// apiWord is one element of the Datamuse /words response array.
type apiWord struct {
	Word  string   `json:"word"`
	Score int      `json:"score"`
	Tags  []string `json:"tags"`
}
