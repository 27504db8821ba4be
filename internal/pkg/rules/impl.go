package rules

import (
	"errors"
	"fmt"
	"slices"
)

const MinMoves = 3

var (
	ErrInvalidMoveSet = errors.New("invalid move set")
	ErrUnknownMove    = errors.New("unknown move")
)

// Engine decides rounds over an odd cycle of moves. A move beats the moves
// at odd offsets behind it in the cycle and loses to those at even offsets,
// so with Rock, Paper, Scissors each move beats the one before it.
// An Engine is immutable and safe for concurrent use.
type Engine struct {
	moves []string
	index map[string]int
}

func NewEngine(moves []string) (*Engine, error) {
	if len(moves) < MinMoves {
		return nil, fmt.Errorf("%w: need at least %d moves, got %d", ErrInvalidMoveSet, MinMoves, len(moves))
	}

	if len(moves)%2 == 0 {
		return nil, fmt.Errorf("%w: need an odd number of moves, got %d", ErrInvalidMoveSet, len(moves))
	}

	index := make(map[string]int, len(moves))

	for i, move := range moves {
		if move == "" {
			return nil, fmt.Errorf("%w: move %d is empty", ErrInvalidMoveSet, i+1)
		}

		if _, ok := index[move]; ok {
			return nil, fmt.Errorf("%w: duplicate move %q", ErrInvalidMoveSet, move)
		}

		index[move] = i
	}

	return &Engine{
		moves: slices.Clone(moves),
		index: index,
	}, nil
}

func (e *Engine) Len() int {
	return len(e.moves)
}

// Moves returns a copy of the move set in its configured order.
func (e *Engine) Moves() []string {
	return slices.Clone(e.moves)
}

func (e *Engine) Move(i int) (string, bool) {
	if i < 0 || i >= len(e.moves) {
		return "", false
	}

	return e.moves[i], true
}

func (e *Engine) Index(move string) (int, error) {
	i, ok := e.index[move]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownMove, move)
	}

	return i, nil
}

func (e *Engine) DetermineWinner(first, second string) (Verdict, error) {
	i, err := e.Index(first)
	if err != nil {
		return "", err
	}

	j, err := e.Index(second)
	if err != nil {
		return "", err
	}

	return e.verdict(i, j), nil
}

// Matrix returns DetermineWinner for every ordered pair, indexed by
// m[first][second].
func (e *Engine) Matrix() [][]Verdict {
	n := len(e.moves)

	result := make([][]Verdict, n)
	for i := range n {
		result[i] = make([]Verdict, n)
		for j := range n {
			result[i][j] = e.verdict(i, j)
		}
	}

	return result
}

func (e *Engine) verdict(i, j int) Verdict {
	n := len(e.moves)

	distance := ((i-j)%n + n) % n

	switch {
	case distance == 0:
		return Draw
	case distance%2 == 1:
		return Win
	default:
		return Lose
	}
}
