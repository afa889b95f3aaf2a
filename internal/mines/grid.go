package mines

import (
	"strconv"
	"strings"
)

type CellState int8

const (
	Unknown      CellState = -2
	ShownMine    CellState = 64 // post-game-over
	ExplodedMine CellState = 65
	// 0-8 for an open cell with the given number of mined neighbours
)

func (s CellState) String() string {
	switch s {
	case Unknown:
		return "."
	case 0:
		return " "
	case 1, 2, 3, 4, 5, 6, 7, 8:
		return strconv.Itoa(int(s))
	case ShownMine, ExplodedMine:
		return "*"
	default:
		return "!"
	}
}

// Grid is the player's view of a board, one [CellState] per linear index.
type Grid []CellState

func (g Grid) At(width, x, y int) CellState {
	return g[y*width+x]
}

func (g Grid) ToString(width int) string {
	var b strings.Builder
	for y := range len(g) / width {
		for x := range width {
			if x > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(g[y*width+x].String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// View builds the player's view of b. With revealAll every cell is shown,
// which is how a finished game is displayed; the board itself is not
// touched.
func (b *Board) View(revealAll bool) Grid {
	grid := make(Grid, len(b.mines))
	for i := range grid {
		x, y := i%b.width, i/b.width
		switch {
		case !revealAll && !b.revealed[i]:
			grid[i] = Unknown
		case b.mines[i]:
			grid[i] = ShownMine
		default:
			grid[i] = CellState(b.NeighborMineCount(x, y))
		}
	}
	return grid
}
