package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// RenderBoard - writes the board with 1-based column numbers on top and row numbers on the left.
func RenderBoard(w io.Writer, board *entity.Board) {
	labelWidth := len(strconv.Itoa(board.Size))
	indent := strings.Repeat(" ", labelWidth+1)
	separator := indent + strings.Repeat("+---", board.Size) + "+"

	var header strings.Builder
	header.WriteString(indent)
	for col := 1; col <= board.Size; col++ {
		fmt.Fprintf(&header, "  %-2d", col)
	}

	fmt.Fprintln(w, strings.TrimRight(header.String(), " "))
	fmt.Fprintln(w, separator)

	for row := range board.Size {
		fmt.Fprintf(w, "%*d |", labelWidth, row+1)
		for col := range board.Size {
			fmt.Fprintf(w, " %s |", cellSymbol(board.At(row, col)))
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, separator)
	}
}

func cellSymbol(cell string) string {
	if cell == entity.EmptyCell {
		return " "
	}
	return cell
}
