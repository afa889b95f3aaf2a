package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper-console/internal/mines"
)

const clearSequence = "\033[H\033[2J"

func ClearScreen(w io.Writer) error {
	_, err := io.WriteString(w, clearSequence)
	return err
}

// Board writes grid as a table: a header with the column indices, then one
// line per row prefixed with its index.
func Board(w io.Writer, grid mines.Grid, width int) error {
	height := len(grid) / width
	colWidth := len(strconv.Itoa(width - 1))
	rowWidth := len(strconv.Itoa(height - 1))

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", rowWidth+1))
	for x := range width {
		if x > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%*d", colWidth, x)
	}
	b.WriteByte('\n')

	for y := range height {
		fmt.Fprintf(&b, "%*d ", rowWidth, y)
		for x := range width {
			if x > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%*s", colWidth, grid.At(width, x, y).String())
		}
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}

type Renderer struct {
	Out   io.Writer
	Clear bool
}

// Draw renders the game. With revealAll every mine and count is shown.
func (r Renderer) Draw(g *mines.Game, revealAll bool) error {
	if r.Clear {
		if err := ClearScreen(r.Out); err != nil {
			return err
		}
	}
	return Board(r.Out, g.Grid(revealAll), g.Board().Width())
}
