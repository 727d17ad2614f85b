package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

// Stats is the persisted tally of finished sessions.
type Stats struct {
	XWins int `json:"X_wins"`
	OWins int `json:"O_wins"`
	Draws int `json:"Draws"`
}

func NewStats() *Stats {
	return &Stats{}
}

// Record increments the counter for the outcome and reports whether one was incremented.
// The outcome is a game winner: PlayerX, PlayerO or PlayerTie. Anything else is ignored.
func (that *Stats) Record(outcome string) bool {
	switch outcome {
	case PlayerX:
		that.XWins++
	case PlayerO:
		that.OWins++
	case PlayerTie:
		that.Draws++
	default:
		return false
	}

	return true
}

func (that *Stats) Total() int {
	return that.XWins + that.OWins + that.Draws
}

// Validate rejects records with a negative counter.
func (that *Stats) Validate() error {
	if that.XWins < 0 || that.OWins < 0 || that.Draws < 0 {
		return fmt.Errorf("%w: negative counter in %+v", apperror.ErrCorruptStats, *that)
	}

	return nil
}
