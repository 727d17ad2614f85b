package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

type gameUseCase interface {
	StartGame(ctx context.Context, conf entity.GameConfig) (*entity.Game, error)
	MakeTurn(ctx context.Context, game *entity.Game, row, col int) (*entity.Game, error)
	RecordOutcome(ctx context.Context, game *entity.Game) (*entity.Stats, error)
}

type statsService interface {
	Display(ctx context.Context, w io.Writer) error
}

// maxLineLength caps a single input line; longer lines are drained and treated as empty input.
const maxLineLength = 1 << 20

// Server drives the game over a line-oriented terminal: one prompt, one line of input.
type Server struct {
	logger       *slog.Logger
	reader       *bufio.Reader
	out          io.Writer
	gameUseCase  gameUseCase
	statsService statsService
}

func New(logger *slog.Logger, in io.Reader, out io.Writer, gameUseCase gameUseCase, statsService statsService) *Server {
	return &Server{
		logger:       logger.With("component", "console"),
		reader:       bufio.NewReader(in),
		out:          out,
		gameUseCase:  gameUseCase,
		statsService: statsService,
	}
}

// Start - asks for the game config once, then plays sessions until the player declines a replay.
// Closed input ends the loop without an error.
func (that *Server) Start(ctx context.Context) error {
	err := that.run(ctx)
	if errors.Is(err, io.EOF) {
		that.logger.Info("input closed, exiting")
		that.println()
		that.println(msgGoodbye)
		return nil
	}

	return err
}

func (that *Server) run(ctx context.Context) error {
	conf, err := that.readGameConfig(ctx)
	if err != nil {
		return err
	}

	for {
		again, err := that.playRound(ctx, conf)
		if err != nil {
			return err
		}

		if !again {
			that.println(msgGoodbye)
			return nil
		}
	}
}

// playRound - plays one session, shows the stats and asks whether to play again.
func (that *Server) playRound(ctx context.Context, conf entity.GameConfig) (bool, error) {
	if err := that.playSession(ctx, conf); err != nil {
		return false, err
	}

	if err := that.statsService.Display(ctx, that.out); err != nil {
		return false, fmt.Errorf("could not display stats: %w", err)
	}

	return that.askReplay(ctx)
}

// readLine - prints the prompt and returns the next input line; io.EOF when the input is closed.
// A line over maxLineLength comes back empty, so callers re-prompt as for any invalid input.
func (that *Server) readLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	that.printf("%s", prompt)

	var (
		line    []byte
		tooLong bool
	)

	for {
		chunk, isPrefix, err := that.reader.ReadLine()
		if errors.Is(err, io.EOF) {
			return "", io.EOF
		}

		if err != nil {
			return "", fmt.Errorf("could not read input: %w", err)
		}

		if !tooLong {
			line = append(line, chunk...)
			if len(line) > maxLineLength {
				tooLong = true
				line = nil
			}
		}

		if !isPrefix {
			break
		}
	}

	if tooLong {
		that.logger.Warn("input line too long, discarded", "limit", maxLineLength)
		return "", nil
	}

	return string(line), nil
}

func (that *Server) printf(format string, args ...any) {
	fmt.Fprintf(that.out, format, args...)
}

func (that *Server) println(args ...any) {
	fmt.Fprintln(that.out, args...)
}
