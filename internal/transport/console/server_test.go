package console

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/repository"
	"github.com/rocketscienceinc/tictactoe-cli/internal/service"
	"github.com/rocketscienceinc/tictactoe-cli/internal/usecase"
)

// scenario A from the top: X wins with the first row.
const topRowWin = "1 1\n2 2\n1 2\n2 1\n1 3\n"

const boardHeader = "    1   2   3\n"

type harness struct {
	out   bytes.Buffer
	stats service.StatsService
}

func newHarness(t *testing.T, statsPath string) *harness {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	stats := service.NewStatsService(logger, repository.NewFileStatsRepository(statsPath))
	if err := stats.Initialize(context.Background()); err != nil {
		t.Logf("stats not initialized: %v", err)
	}

	return &harness{stats: stats}
}

func (h *harness) run(t *testing.T, first string, input string) {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	gameUseCase := usecase.NewGameUseCase(logger, h.stats, func() string { return first })
	server := New(logger, strings.NewReader(input), &h.out, gameUseCase, h.stats)

	require.NoError(t, server.Start(context.Background()))
}

func statsPath(t *testing.T) string {
	t.Helper()

	return filepath.Join(t.TempDir(), "game_stats", "stats.json")
}

func TestServer_XWinsTopRow(t *testing.T) {
	// Given: a 3x3 game with K=3 where X moves first
	h := newHarness(t, statsPath(t))

	// When: X completes the top row on its third move
	h.run(t, entity.PlayerX, "3\n3\n"+topRowWin+"no\n")

	// Then: X is announced and X_wins is incremented
	out := h.out.String()
	assert.Contains(t, out, "Player 'X' wins!")
	assert.Contains(t, out, "1 | X | X | X |")
	assert.Contains(t, out, "X wins: 1\nO wins: 0\nDraws: 0")
	assert.True(t, strings.HasSuffix(out, "Play again? (yes/no): Thanks for playing! Goodbye.\n"))
	assert.Equal(t, &entity.Stats{XWins: 1}, h.stats.Load(context.Background()))
}

func TestServer_Draw(t *testing.T) {
	// Given: a 3x3 game where O moves first
	h := newHarness(t, statsPath(t))

	// When: the board fills up as X,O,X / O,X,O / O,X,O
	moves := "1 2\n1 1\n2 1\n1 3\n2 3\n2 2\n3 1\n3 2\n3 3\n"
	h.run(t, entity.PlayerO, "3\n3\n"+moves+"n\n")

	// Then: a draw is recorded
	out := h.out.String()
	assert.Contains(t, out, "It's a draw!")
	assert.NotContains(t, out, "wins!")
	assert.Contains(t, out, "3 | O | X | O |")
	assert.Equal(t, &entity.Stats{Draws: 1}, h.stats.Load(context.Background()))
}

func TestServer_OutOfRangeMove(t *testing.T) {
	// Given: a 3x3 game where X moves first
	h := newHarness(t, statsPath(t))

	// When: X first tries 4 4, then plays the normal winning line
	h.run(t, entity.PlayerX, "3\n3\n4 4\n0 1\n"+topRowWin+"no\n")

	// Then: both moves are rejected, the turn is kept and X still wins
	out := h.out.String()
	assert.Equal(t, 2, strings.Count(out, "Coordinates out of range. Enter numbers from 1 to 3."))
	assert.Equal(t, 6, strings.Count(out, boardHeader))
	assert.Contains(t, out, "Player 'X' wins!")
	assert.Equal(t, &entity.Stats{XWins: 1}, h.stats.Load(context.Background()))
}

func TestServer_MalformedMove(t *testing.T) {
	// Given: a 3x3 game where X moves first
	h := newHarness(t, statsPath(t))

	// When: X types "a b" before moving
	h.run(t, entity.PlayerX, "3\n3\na b\n"+topRowWin+"no\n")

	// Then: the input is rejected without consuming the turn
	out := h.out.String()
	assert.Equal(t, 1, strings.Count(out, "Invalid input. Enter two numbers separated by a space"))
	assert.Contains(t, out, "Player 'X', enter your move (row col): Invalid input."+
		" Enter two numbers separated by a space (e.g. '2 3').\nPlayer 'X', enter your move")
	// five moves and the final board, the rejected input renders nothing
	assert.Equal(t, 6, strings.Count(out, boardHeader))
	assert.Contains(t, out, "Player 'X' wins!")
	assert.Equal(t, &entity.Stats{XWins: 1}, h.stats.Load(context.Background()))
}

func TestServer_OccupiedCell(t *testing.T) {
	h := newHarness(t, statsPath(t))

	// When: O tries to play on X's cell first
	h.run(t, entity.PlayerX, "3\n3\n1 1\n1 1\n2 2\n1 2\n2 1\n1 3\nno\n")

	// Then: O is asked again and X still wins
	out := h.out.String()
	assert.Contains(t, out, "That cell is already taken. Choose another one.\nPlayer 'O', enter your move")
	assert.Contains(t, out, "Player 'X' wins!")
}

func TestServer_ConfigValidation(t *testing.T) {
	h := newHarness(t, statsPath(t))

	// When: the size is non-numeric then too small, the win length too long then too short
	h.run(t, entity.PlayerX, "abc\n2\n3\nfive\n4\n2\n3\n"+topRowWin+"no\n")

	// Then: each bad value is re-prompted and the game is played on 3x3 with K=3
	out := h.out.String()
	assert.Equal(t, 2, strings.Count(out, "Invalid input. Please enter a whole number."))
	assert.Equal(t, 1, strings.Count(out, "The board size must be between 3 and 99."))
	assert.Equal(t, 2, strings.Count(out, "The win length must be between 3 and 3."))
	assert.Contains(t, out, "--- New game on a 3x3 board, 3 in a row wins ---")
	assert.Contains(t, out, "Player 'X' wins!")
}

func TestServer_Replay(t *testing.T) {
	h := newHarness(t, statsPath(t))

	// When: the player answers "Да" after the first game and "no" after the second
	h.run(t, entity.PlayerX, "3\n3\n"+topRowWin+"Да\n"+topRowWin+"no\n")

	// Then: the config is asked once, two games are played and counted
	out := h.out.String()
	assert.Equal(t, 1, strings.Count(out, msgBoardSizePrompt))
	assert.Equal(t, 2, strings.Count(out, "--- New game on a 3x3 board, 3 in a row wins ---"))
	assert.Contains(t, out, "X wins: 2\n")
	assert.Equal(t, &entity.Stats{XWins: 2}, h.stats.Load(context.Background()))
}

func TestServer_StatsAccumulateAcrossRuns(t *testing.T) {
	path := statsPath(t)

	// Given: a previous run where X won
	newHarness(t, path).run(t, entity.PlayerX, "3\n3\n"+topRowWin+"no\n")

	// When: a new program run is played where O wins
	h := newHarness(t, path)
	h.run(t, entity.PlayerO, "3\n3\n"+topRowWin+"no\n")

	// Then: both results are kept
	assert.Contains(t, h.out.String(), "Player 'O' wins!")
	assert.Equal(t, &entity.Stats{XWins: 1, OWins: 1}, h.stats.Load(context.Background()))
}

func TestServer_ClosedInput(t *testing.T) {
	h := newHarness(t, statsPath(t))

	// When: input ends in the middle of a game
	h.run(t, entity.PlayerX, "3\n3\n1 1\n")

	// Then: the program says goodbye and nothing is recorded
	assert.True(t, strings.HasSuffix(h.out.String(), "Thanks for playing! Goodbye.\n"))
	assert.Equal(t, entity.NewStats(), h.stats.Load(context.Background()))
}

func TestServer_StatsWriteFailure(t *testing.T) {
	// Given: a stats path whose parent is a regular file, so nothing can be written
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))
	h := newHarness(t, filepath.Join(blocker, "stats.json"))

	// When: a game is won
	h.run(t, entity.PlayerX, "3\n3\n"+topRowWin+"no\n")

	// Then: the player is warned and the program still ends normally
	out := h.out.String()
	assert.Contains(t, out, "Player 'X' wins!")
	assert.Contains(t, out, msgStatsNotSaved)
	assert.Contains(t, out, "X wins: 0\nO wins: 0\nDraws: 0")
	assert.True(t, strings.HasSuffix(out, "Thanks for playing! Goodbye.\n"))
}

func TestServer_LongInputLine(t *testing.T) {
	cases := []struct {
		name   string
		length int
	}{
		{name: "Longer than a default scanner buffer", length: 70 * 1024},
		{name: "Longer than the line limit", length: maxLineLength + 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t, statsPath(t))
			long := strings.Repeat("a", tc.length) + "\n"

			// When: a huge line is typed as the board size and as the first move
			h.run(t, entity.PlayerX, long+"3\n3\n"+long+topRowWin+"no\n")

			// Then: both are re-prompted and the game is played to the end
			out := h.out.String()
			assert.Equal(t, 1, strings.Count(out, "Invalid input. Please enter a whole number."))
			assert.Equal(t, 1, strings.Count(out, "Invalid input. Enter two numbers separated by a space"))
			assert.Equal(t, 6, strings.Count(out, boardHeader))
			assert.Contains(t, out, "Player 'X' wins!")
			assert.Equal(t, &entity.Stats{XWins: 1}, h.stats.Load(context.Background()))
		})
	}
}

func TestServer_BoardSizeTooLarge(t *testing.T) {
	h := newHarness(t, statsPath(t))

	// When: a board size beyond the limit is entered first
	h.run(t, entity.PlayerX, "100000000000\n3\n3\n"+topRowWin+"no\n")

	// Then: it is re-prompted and a 3x3 game is played
	out := h.out.String()
	assert.Equal(t, 1, strings.Count(out, "The board size must be between 3 and 99."))
	assert.Contains(t, out, "Player 'X' wins!")
}
