package round

import (
	"github.com/vreid/janken/internal/pkg/commitment"
	"github.com/vreid/janken/internal/pkg/rules"
)

// Result is everything disclosed once the human has committed.
type Result struct {
	RoundID string `json:"round_id"`

	HumanMove    string `json:"human_move"`
	OpponentMove string `json:"opponent_move"`

	Verdict rules.Verdict `json:"verdict"`

	HMAC commitment.Tag `json:"hmac"`
	Key  string         `json:"key"`
}
