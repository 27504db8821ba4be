package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pterm/pterm"
	"github.com/samber/do/v2"
	"github.com/vreid/janken/internal/pkg/auditor"
	"github.com/vreid/janken/internal/pkg/commitment"
	"github.com/vreid/janken/internal/pkg/common"
	"github.com/vreid/janken/internal/pkg/console"
	"github.com/vreid/janken/internal/pkg/keygen"
	"github.com/vreid/janken/internal/pkg/round"
	"github.com/vreid/janken/internal/pkg/rules"
	"github.com/vreid/janken/internal/pkg/scoreboard"

	"github.com/urfave/cli/v3"
)

const shutdownTimeout = 5 * time.Second

var ErrInvalidRounds = errors.New("rounds must be at least 1")

type PlayService struct {
	Engine       *rules.Engine       `do:""`
	RoundService *round.RoundService `do:""`
}

type AuditService struct {
	EchoService    *common.EchoService     `do:""`
	AuditorService *auditor.AuditorService `do:""`
}

func newLogger(verbose bool) *slog.Logger {
	logger := pterm.DefaultLogger.WithWriter(os.Stderr)
	if verbose {
		logger = logger.WithLevel(pterm.LogLevelDebug)
	}

	return slog.New(pterm.NewSlogHandler(logger))
}

func provideEngine(i do.Injector, cmd *cli.Command) error {
	engine, err := rules.NewEngine(cmd.Args().Slice())
	if err != nil {
		return fmt.Errorf("failed to create rules engine: %w", err)
	}

	do.ProvideValue(i, engine)

	return nil
}

func runPlay(ctx context.Context, cmd *cli.Command) error {
	logger := newLogger(cmd.Bool("verbose"))

	rounds := cmd.Int("rounds")
	if rounds < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidRounds, rounds)
	}

	i := do.New()

	err := provideEngine(i, cmd)
	if err != nil {
		return err
	}

	do.Provide(i, round.NewRoundService)
	do.Provide(i, do.InvokeStruct[PlayService])

	playService, err := do.Invoke[PlayService](i)
	if err != nil {
		return fmt.Errorf("failed to create play service: %w", err)
	}

	game := &console.Game{
		Engine:     playService.Engine,
		Rounds:     playService.RoundService,
		Scoreboard: scoreboard.New(),
		Logger:     logger,
		In:         cmd.Root().Reader,
		Out:        cmd.Root().Writer,
	}

	err = game.Run(ctx, rounds, cmd.Bool("table"))
	if errors.Is(err, console.ErrExit) {
		return cli.Exit("\nExiting the program", 1)
	}

	//nolint:wrapcheck
	return err
}

func runVerify(_ context.Context, cmd *cli.Command) error {
	key, err := keygen.ParseSecretKey(cmd.String("key"))
	if err != nil {
		return fmt.Errorf("failed to parse key: %w", err)
	}

	move := cmd.String("move")

	if !commitment.Verify(key, move, commitment.Tag(cmd.String("hmac"))) {
		return cli.Exit(pterm.Error.Sprintfln("HMAC does not match move %q under the given key", move), 2) //nolint:mnd
	}

	_, err = fmt.Fprint(cmd.Root().Writer, pterm.Success.Sprintfln("HMAC matches move %q", move))

	//nolint:wrapcheck
	return err
}

func runServer(ctx context.Context, cmd *cli.Command) error {
	logger := newLogger(cmd.Bool("verbose"))

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	i := do.New()

	do.ProvideNamedValue(i, "port", cmd.Int("port"))

	err := provideEngine(i, cmd)
	if err != nil {
		return err
	}

	do.Provide(i, common.NewEchoService)
	do.Provide(i, auditor.NewAuditorService)
	do.Provide(i, do.InvokeStruct[AuditService])

	auditService, err := do.Invoke[AuditService](i)
	if err != nil {
		return fmt.Errorf("failed to create audit service: %w", err)
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		logger.Info("shutting down audit service")

		_ = i.ShutdownWithContext(shutdownCtx)
	}()

	logger.Info("starting audit service",
		"port", cmd.Int("port"),
		"moves", auditService.AuditorService.Engine.Moves())

	//nolint:wrapcheck
	return auditService.EchoService.Start()
}

// Root flags are inherited by subcommands, so play reads them too.
func rootFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Sources: cli.EnvVars("JANKEN_VERBOSE"),
		},
		&cli.IntFlag{
			Name:    "rounds",
			Value:   1,
			Sources: cli.EnvVars("JANKEN_ROUNDS"),
		},
		&cli.BoolFlag{
			Name:  "table",
			Usage: "print the outcome table before the first move",
		},
	}
}

// newCommand builds the command tree. Moves given without a subcommand are
// played by the root action, so no move is ever taken as a command name.
func newCommand(in io.Reader, out io.Writer) *cli.Command {
	//nolint:exhaustruct
	return &cli.Command{
		Name:      "janken",
		Usage:     "provably fair rock-paper-scissors over any odd set of moves",
		ArgsUsage: "MOVE MOVE MOVE [MOVE MOVE ...]",
		Reader:    in,
		Writer:    out,
		Flags:     rootFlags(),
		Action:    runPlay,
		Commands: []*cli.Command{
			{
				Name:      "play",
				Usage:     "play against the computer",
				ArgsUsage: "MOVE MOVE MOVE [MOVE MOVE ...]",
				Action:    runPlay,
			},
			{
				Name:  "verify",
				Usage: "check a revealed key and move against an HMAC",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "key",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "move",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "hmac",
						Required: true,
					},
				},
				Action: runVerify,
			},
			{
				Name:      "serve",
				Usage:     "run the HTTP audit service",
				ArgsUsage: "MOVE MOVE MOVE [MOVE MOVE ...]",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "port",
						Value:   3000, //nolint:mnd
						Sources: cli.EnvVars("JANKEN_PORT"),
					},
				},
				Action: runServer,
			},
		},
	}
}

func main() {
	err := newCommand(os.Stdin, os.Stdout).Run(context.Background(), os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
