package round

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/google/uuid"
	"github.com/samber/do/v2"
	"github.com/vreid/janken/internal/pkg/commitment"
	"github.com/vreid/janken/internal/pkg/keygen"
	"github.com/vreid/janken/internal/pkg/rules"
)

var ErrRoundFinished = errors.New("round already played")

type RoundService struct {
	Engine *rules.Engine

	// Random is the secure source for keys and opponent moves.
	Random io.Reader
}

func NewRoundService(i do.Injector) (*RoundService, error) {
	engine := do.MustInvoke[*rules.Engine](i)

	return &RoundService{
		Engine: engine,
		Random: rand.Reader,
	}, nil
}

func (s *RoundService) Start() (*Round, error) {
	return Start(s.Engine, s.Random)
}

// Round is one commit-reveal exchange. The opponent move is fixed and
// committed to before the human is asked for a move.
type Round struct {
	ID string

	engine     *rules.Engine
	key        keygen.SecretKey
	commitment commitment.Commitment
	finished   bool
}

// Start generates a key, picks the opponent move and commits to it. A nil
// reader means crypto/rand.
func Start(engine *rules.Engine, r io.Reader) (*Round, error) {
	if r == nil {
		r = rand.Reader
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate round ID: %w", err)
	}

	key, err := keygen.New(r).Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate key: %w", err)
	}

	move, err := PickRandomMove(engine, r)
	if err != nil {
		return nil, err
	}

	return &Round{
		ID:         id.String(),
		engine:     engine,
		key:        key,
		commitment: commitment.New(key, move),
	}, nil
}

func PickRandomMove(engine *rules.Engine, r io.Reader) (string, error) {
	maxIdx := big.NewInt(int64(engine.Len()))

	randIdx, err := rand.Int(r, maxIdx)
	if err != nil {
		return "", fmt.Errorf("%w: failed to pick opponent move: %w", keygen.ErrEntropy, err)
	}

	move, _ := engine.Move(int(randIdx.Int64()))

	return move, nil
}

// HMAC is the tag shown to the human before they choose.
func (r *Round) HMAC() commitment.Tag {
	return r.commitment.Tag()
}

// Play decides the round against humanMove and reveals the key. A round can
// be played once; an unknown move leaves it open.
func (r *Round) Play(humanMove string) (*Result, error) {
	if r.finished {
		return nil, ErrRoundFinished
	}

	opponentMove := r.commitment.Reveal()

	verdict, err := r.engine.DetermineWinner(humanMove, opponentMove)
	if err != nil {
		return nil, fmt.Errorf("failed to determine winner: %w", err)
	}

	r.finished = true

	return &Result{
		RoundID:      r.ID,
		HumanMove:    humanMove,
		OpponentMove: opponentMove,
		Verdict:      verdict,
		HMAC:         r.commitment.Tag(),
		Key:          r.key.Hex(),
	}, nil
}
