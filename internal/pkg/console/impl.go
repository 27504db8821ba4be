package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/vreid/janken/internal/pkg/round"
	"github.com/vreid/janken/internal/pkg/rules"
	"github.com/vreid/janken/internal/pkg/scoreboard"
)

var (
	ErrExit          = errors.New("exit requested")
	ErrInvalidChoice = errors.New("invalid choice")
	ErrNoInput       = errors.New("input closed before a move was chosen")
)

type Starter interface {
	Start() (*round.Round, error)
}

type Game struct {
	Engine     *rules.Engine
	Rounds     Starter
	Scoreboard *scoreboard.Scoreboard
	Logger     *slog.Logger

	In  io.Reader
	Out io.Writer
}

func ParseChoice(engine *rules.Engine, input string) (Choice, error) {
	input = strings.TrimSpace(input)

	switch input {
	case "0":
		return Choice{Kind: ChoiceExit}, nil
	case "?":
		return Choice{Kind: ChoiceHelp}, nil
	}

	n, err := strconv.Atoi(input)
	if err != nil {
		return Choice{}, fmt.Errorf("%w: %q is not a number", ErrInvalidChoice, input)
	}

	move, ok := engine.Move(n - 1)
	if !ok {
		return Choice{}, fmt.Errorf("%w: choose between 1 and %d", ErrInvalidChoice, engine.Len())
	}

	return Choice{Kind: ChoiceMove, Move: move}, nil
}

// Run plays rounds one after another. It returns ErrExit when the user
// chooses to quit.
func (g *Game) Run(ctx context.Context, rounds int, showTable bool) error {
	scanner := bufio.NewScanner(g.In)

	if showTable {
		err := g.printHelp()
		if err != nil {
			return err
		}
	}

	for range rounds {
		err := ctx.Err()
		if err != nil {
			return fmt.Errorf("game interrupted: %w", err)
		}

		err = g.playRound(scanner)
		if err != nil {
			return err
		}
	}

	if rounds > 1 {
		g.print(RenderTally(g.Scoreboard.Tally()))
	}

	return nil
}

func (g *Game) playRound(scanner *bufio.Scanner) error {
	r, err := g.Rounds.Start()
	if err != nil {
		return fmt.Errorf("failed to start round: %w", err)
	}

	g.Logger.Debug("round started", "round_id", r.ID)

	g.print(pterm.Sprintfln("HMAC: %s", r.HMAC()))
	g.print("\n" + Menu(g.Engine))

	for {
		g.print("\nEnter your move: ")

		if !scanner.Scan() {
			err := scanner.Err()
			if err != nil {
				return fmt.Errorf("failed to read move: %w", err)
			}

			return ErrNoInput
		}

		choice, err := ParseChoice(g.Engine, scanner.Text())
		if err != nil {
			g.print(pterm.Error.Sprintln(err.Error()))

			continue
		}

		if choice.Kind == ChoiceExit {
			return ErrExit
		}

		if choice.Kind == ChoiceHelp {
			err := g.printHelp()
			if err != nil {
				return err
			}

			continue
		}

		result, err := r.Play(choice.Move)
		if err != nil {
			return fmt.Errorf("failed to play round: %w", err)
		}

		g.Scoreboard.HandleResult(*result)

		g.Logger.Debug("round finished",
			"round_id", result.RoundID,
			"verdict", result.Verdict.String())

		g.print("\n" + RenderResult(result) + "\n")

		return nil
	}
}

func (g *Game) printHelp() error {
	table, err := HelpTable(g.Engine)
	if err != nil {
		return fmt.Errorf("failed to render help table: %w", err)
	}

	g.print(table + "\n")

	return nil
}

func (g *Game) print(s string) {
	_, _ = io.WriteString(g.Out, s)
}
