package scoreboard

import (
	"sync"

	"github.com/vreid/janken/internal/pkg/round"
	"github.com/vreid/janken/internal/pkg/rules"
)

// Scoreboard counts verdicts for the rounds of a single invocation. Nothing
// is persisted.
type Scoreboard struct {
	mu    sync.Mutex
	tally Tally
}

func New() *Scoreboard {
	return &Scoreboard{}
}

func (s *Scoreboard) HandleResult(result round.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tally.Rounds++

	switch result.Verdict {
	case rules.Win:
		s.tally.Wins++
	case rules.Lose:
		s.tally.Losses++
	case rules.Draw:
		s.tally.Draws++
	}
}

func (s *Scoreboard) Tally() Tally {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.tally
}
