package learning

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/heartmarshall/alphalearn-backend/internal/domain"
)

// CreateSessionInput is a finished session as submitted by the client.
type CreateSessionInput struct {
	Mode         string
	ScorePercent int
	Words        []domain.WordRecord
	Quiz         []json.RawMessage
}

// Validate checks the session header and words. The quiz is not inspected.
func (i CreateSessionInput) Validate() error {
	var errs []domain.FieldError

	if !domain.Tier(i.Mode).IsValid() {
		errs = append(errs, domain.FieldError{Field: "mode", Message: "must be one of beginner, intermediate, proficient"})
	}

	if i.ScorePercent < 0 || i.ScorePercent > 100 {
		errs = append(errs, domain.FieldError{Field: "scorePercent", Message: "must be between 0 and 100"})
	}

	switch {
	case len(i.Words) == 0:
		errs = append(errs, domain.FieldError{Field: "words", Message: "required"})
	case len(i.Words) > len(domain.Alphabet):
		errs = append(errs, domain.FieldError{Field: "words", Message: "at most 26 words"})
	default:
		seen := make(map[string]struct{}, len(i.Words))
		for idx, w := range i.Words {
			field := fmt.Sprintf("words[%d]", idx)
			if !domain.IsLetter(w.Letter) {
				errs = append(errs, domain.FieldError{Field: field + ".letter", Message: "must be a single letter A-Z"})
			} else if _, dup := seen[w.Letter]; dup {
				errs = append(errs, domain.FieldError{Field: field + ".letter", Message: "duplicate letter"})
			} else {
				seen[w.Letter] = struct{}{}
			}
			if strings.TrimSpace(w.Word) == "" {
				errs = append(errs, domain.FieldError{Field: field + ".word", Message: "required"})
			}
		}
	}

	for idx, q := range i.Quiz {
		if len(q) == 0 || !json.Valid(q) {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("quiz[%d]", idx), Message: "invalid JSON"})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
