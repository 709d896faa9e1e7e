package strength

import (
	"fmt"

	zxcvbn "github.com/nbutton23/zxcvbn-go"
)

// zxcvbnScorer adapts the zxcvbn estimator to [Scorer].
type zxcvbnScorer struct{}

// NewZxcvbnScorer returns a [Scorer] backed by the zxcvbn password-strength
// estimator.
func NewZxcvbnScorer() Scorer {
	return &zxcvbnScorer{}
}

// Score implements [Scorer]. The estimator walks large frequency tables and
// has panicked on exotic inputs in the past, so the call is fenced: a panic
// surfaces as ErrScoringFailed instead of taking down the request.
func (z *zxcvbnScorer) Score(plaintext string) (score int, err error) {
	defer func() {
		if r := recover(); r != nil {
			score = UnknownScore
			err = fmt.Errorf("%w: %v", ErrScoringFailed, r)
		}
	}()

	return zxcvbn.PasswordStrength(plaintext, nil).Score, nil
}
