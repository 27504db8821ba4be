package rules_test

import (
	"fmt"
	"testing"

	rules "github.com/vreid/janken/internal/pkg/rules"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	classic = []string{"Rock", "Paper", "Scissors"}
	rpsls   = []string{"Rock", "Spock", "Paper", "Lizard", "Scissors"}
)

func moveSet(n int) []string {
	moves := make([]string, n)
	for i := range n {
		moves[i] = fmt.Sprintf("m%d", i)
	}

	return moves
}

func TestClassic(t *testing.T) {
	t.Parallel()

	e, err := rules.NewEngine(classic)
	require.NoError(t, err)

	for _, tc := range []struct {
		first, second string
		want          rules.Verdict
	}{
		{"Rock", "Scissors", rules.Win},
		{"Rock", "Paper", rules.Lose},
		{"Paper", "Paper", rules.Draw},
		{"Paper", "Rock", rules.Win},
		{"Scissors", "Paper", rules.Win},
		{"Scissors", "Rock", rules.Lose},
	} {
		got, err := e.DetermineWinner(tc.first, tc.second)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%s vs %s", tc.first, tc.second)
	}
}

func TestRockPaperScissorsLizardSpock(t *testing.T) {
	t.Parallel()

	e, err := rules.NewEngine(rpsls)
	require.NoError(t, err)

	got, err := e.DetermineWinner("Rock", "Scissors")
	require.NoError(t, err)
	assert.Equal(t, rules.Win, got)

	got, err = e.DetermineWinner("Rock", "Spock")
	require.NoError(t, err)
	assert.Equal(t, rules.Lose, got)
}

func TestSelfDrawAndAntisymmetry(t *testing.T) {
	t.Parallel()

	for _, n := range []int{3, 5, 7, 9, 11, 21} {
		moves := moveSet(n)

		e, err := rules.NewEngine(moves)
		require.NoError(t, err)

		for _, a := range moves {
			wins, losses := 0, 0

			for _, b := range moves {
				ab, err := e.DetermineWinner(a, b)
				require.NoError(t, err)

				ba, err := e.DetermineWinner(b, a)
				require.NoError(t, err)

				switch {
				case a == b:
					assert.Equal(t, rules.Draw, ab)
				case ab == rules.Win:
					wins++
					assert.Equal(t, rules.Lose, ba, "n=%d %s vs %s", n, a, b)
				default:
					losses++
					assert.Equal(t, rules.Lose, ab, "n=%d %s vs %s", n, a, b)
					assert.Equal(t, rules.Win, ba, "n=%d %s vs %s", n, a, b)
				}
			}

			assert.Equal(t, (n-1)/2, wins)
			assert.Equal(t, (n-1)/2, losses)
		}
	}
}

func TestUnknownMove(t *testing.T) {
	t.Parallel()

	e, err := rules.NewEngine(classic)
	require.NoError(t, err)

	_, err = e.DetermineWinner("Rock", "Lizard")
	require.ErrorIs(t, err, rules.ErrUnknownMove)

	_, err = e.DetermineWinner("rock", "Paper")
	require.ErrorIs(t, err, rules.ErrUnknownMove)
}

func TestInvalidMoveSets(t *testing.T) {
	t.Parallel()

	for name, moves := range map[string][]string{
		"nil":       nil,
		"empty":     {},
		"one":       {"Rock"},
		"two":       {"Rock", "Paper"},
		"even":      {"Rock", "Paper", "Scissors", "Lizard"},
		"duplicate": {"Rock", "Paper", "Rock"},
		"blank":     {"Rock", "", "Paper"},
	} {
		e, err := rules.NewEngine(moves)
		require.ErrorIs(t, err, rules.ErrInvalidMoveSet, name)
		assert.Nil(t, e, name)
	}
}

func TestMovesIsACopy(t *testing.T) {
	t.Parallel()

	input := []string{"Rock", "Paper", "Scissors"}

	e, err := rules.NewEngine(input)
	require.NoError(t, err)

	input[0] = "Stone"
	e.Moves()[1] = "Sheet"

	assert.Equal(t, classic, e.Moves())
	assert.Equal(t, 3, e.Len())

	move, ok := e.Move(2)
	assert.True(t, ok)
	assert.Equal(t, "Scissors", move)

	_, ok = e.Move(3)
	assert.False(t, ok)
}

func TestMatrix(t *testing.T) {
	t.Parallel()

	e, err := rules.NewEngine(rpsls)
	require.NoError(t, err)

	m := e.Matrix()
	require.Len(t, m, len(rpsls))

	for i, first := range rpsls {
		require.Len(t, m[i], len(rpsls))

		for j, second := range rpsls {
			want, err := e.DetermineWinner(first, second)
			require.NoError(t, err)
			assert.Equal(t, want, m[i][j])
		}
	}
}

func BenchmarkDetermineWinner(b *testing.B) {
	e, err := rules.NewEngine(moveSet(101))
	if err != nil {
		b.Fatal(err)
	}

	for b.Loop() {
		_, err := e.DetermineWinner("m3", "m97")
		if err != nil {
			b.Error(err)
		}
	}
}
