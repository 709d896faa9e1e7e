// Package strength estimates how resistant a secret is to guessing attacks.
// The estimator itself is an external black box; this package pins down the
// interface the rest of the application consumes and the mapping from the
// estimator's 0–4 scale onto the stored 1–5 scale.
package strength

import "errors"

// ErrScoringFailed is returned when the underlying estimator panics or
// otherwise cannot produce a score. It terminates the operation that asked
// for the score; scoring is never retried.
var ErrScoringFailed = errors.New("strength scoring failed")

// UnknownScore is the sentinel an estimator returns when it has no opinion
// about the input. Mapped to an absent stored score.
const UnknownScore = -1

// Scorer is the consumed estimator interface: a 0–4 score, UnknownScore when
// no score is available, or an error.
type Scorer interface {
	Score(plaintext string) (int, error)
}

// StoredScore maps a raw estimator score onto the persisted 1–5 scale by
// adding one. UnknownScore maps to nil (absent). The transform is pure and
// stateless.
func StoredScore(raw int) *int {
	if raw == UnknownScore {
		return nil
	}
	stored := raw + 1
	return &stored
}
