package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/cases"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

// affirmativeAnswers are compared against the case-folded, trimmed reply.
var affirmativeAnswers = []string{"yes", "y", "да", "д"}

// ParseMove - parses "row col" into two 1-based integers. Range is not checked here.
func ParseMove(line string) (int, int, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: got %q", apperror.ErrMalformedMove, line)
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", apperror.ErrMalformedMove, err)
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", apperror.ErrMalformedMove, err)
	}

	return row, col, nil
}

func ParseInt(line string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("not an integer: %w", err)
	}

	return value, nil
}

func IsAffirmative(answer string) bool {
	return lo.Contains(affirmativeAnswers, cases.Fold().String(strings.TrimSpace(answer)))
}
