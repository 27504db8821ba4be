package scoreboard_test

import (
	"sync"
	"testing"

	"github.com/vreid/janken/internal/pkg/round"
	"github.com/vreid/janken/internal/pkg/rules"
	scoreboard "github.com/vreid/janken/internal/pkg/scoreboard"

	"github.com/stretchr/testify/assert"
)

func TestHandleResult(t *testing.T) {
	t.Parallel()

	s := scoreboard.New()

	for _, v := range []rules.Verdict{rules.Win, rules.Win, rules.Lose, rules.Draw, rules.Win} {
		s.HandleResult(round.Result{Verdict: v})
	}

	assert.Equal(t, scoreboard.Tally{Rounds: 5, Wins: 3, Losses: 1, Draws: 1}, s.Tally())
}

func TestHandleResultConcurrent(t *testing.T) {
	t.Parallel()

	s := scoreboard.New()

	var wg sync.WaitGroup
	for range 100 {
		wg.Go(func() {
			s.HandleResult(round.Result{Verdict: rules.Draw})
		})
	}
	wg.Wait()

	assert.Equal(t, 100, s.Tally().Draws)
	assert.Equal(t, 100, s.Tally().Rounds)
}
