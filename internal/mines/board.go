package mines

import (
	"iter"
	"math/rand/v2"
	"slices"
)

// Board holds the mine layout and the reveal state of a single field. Cells
// are addressed either by (x, y) or by the linear index y*width+x.
//
// Mines are placed once, in [New], and never move. A cell goes from hidden to
// revealed at most once and a mine cell is never marked revealed.
type Board struct {
	width, height int
	mineCount     int
	mines         []bool
	revealed      []bool
	revealedCount int
}

// New creates a width x height board with mineCount mines chosen uniformly at
// random without replacement. If r is nil the global source is used.
func New(width, height, mineCount int, r *rand.Rand) (*Board, error) {
	if err := validate(width, height, mineCount); err != nil {
		return nil, err
	}

	b := newBoard(width, height)
	b.mineCount = mineCount

	intN := rand.IntN
	if r != nil {
		intN = r.IntN
	}

	/*
	 * Write down every cell index, then pick mineCount of them off the
	 * list: each pick swaps the chosen candidate with the last live one.
	 */
	candidates := make([]int, width*height)
	for i := range candidates {
		candidates[i] = i
	}
	k := len(candidates)
	for range mineCount {
		i := intN(k)
		b.mines[candidates[i]] = true
		k--
		candidates[i] = candidates[k]
	}

	return b, nil
}

// NewFromMines creates a board with mines at the given linear indices.
// Indices must be distinct and inside the board.
func NewFromMines(width, height int, mines []int) (*Board, error) {
	if err := validate(width, height, len(mines)); err != nil {
		return nil, err
	}
	b := newBoard(width, height)
	for _, i := range mines {
		if i < 0 || i >= len(b.mines) || b.mines[i] {
			return nil, &ConfigError{
				Width: width, Height: height, MineCount: len(mines), Index: &i,
			}
		}
		b.mines[i] = true
	}
	b.mineCount = len(mines)
	return b, nil
}

func newBoard(width, height int) *Board {
	return &Board{
		width:    width,
		height:   height,
		mines:    make([]bool, width*height),
		revealed: make([]bool, width*height),
	}
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

func (b *Board) MineCount() int { return b.mineCount }

// SafeCellCount is the number of cells that must be revealed to win.
func (b *Board) SafeCellCount() int { return b.width*b.height - b.mineCount }

func (b *Board) RevealedCount() int { return b.revealedCount }

// Mines returns the sorted linear indices of all mines.
func (b *Board) Mines() []int {
	mines := make([]int, 0, b.mineCount)
	for i, mine := range b.mines {
		if mine {
			mines = append(mines, i)
		}
	}
	return slices.Clip(mines)
}

func (b *Board) InBounds(x, y int) bool {
	return 0 <= x && x < b.width && 0 <= y && y < b.height
}

func (b *Board) IsRevealed(x, y int) bool {
	return b.InBounds(x, y) && b.revealed[y*b.width+x]
}

func (b *Board) IsMine(x, y int) bool {
	return b.InBounds(x, y) && b.mines[y*b.width+x]
}

// neighbours yields the linear indices of the in-bounds cells around (x, y).
func (b *Board) neighbours(x, y int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				xx, yy := x+dx, y+dy
				if !b.InBounds(xx, yy) {
					continue
				}
				if !yield(yy*b.width + xx) {
					return
				}
			}
		}
	}
}

// NeighborMineCount returns how many of the up to 8 cells around (x, y) hold
// a mine.
func (b *Board) NeighborMineCount(x, y int) int {
	count := 0
	for j := range b.neighbours(x, y) {
		if b.mines[j] {
			count++
		}
	}
	return count
}

// Reveal opens the cell at (x, y). Opening a cell with no neighbouring mines
// also opens all of its neighbours, cascading through the connected region of
// such cells and its numbered border.
//
// Hitting a mine reports [Mine] and leaves the board untouched.
func (b *Board) Reveal(x, y int) Outcome {
	if !b.InBounds(x, y) {
		return OutOfBounds
	}
	i := y*b.width + x
	if b.revealed[i] {
		return AlreadyRevealed
	}
	if b.mines[i] {
		return Mine
	}

	// Cells are marked when pushed so each is visited once.
	b.markRevealed(i)
	todo := []int{i}
	for len(todo) > 0 {
		i := todo[len(todo)-1]
		todo = todo[:len(todo)-1]

		xx, yy := i%b.width, i/b.width
		if b.NeighborMineCount(xx, yy) != 0 {
			continue
		}
		for j := range b.neighbours(xx, yy) {
			if b.revealed[j] || b.mines[j] {
				continue
			}
			b.markRevealed(j)
			todo = append(todo, j)
		}
	}

	return Safe
}

func (b *Board) markRevealed(i int) {
	b.revealed[i] = true
	b.revealedCount++
}

// CheckWin reports whether every safe cell has been revealed.
func (b *Board) CheckWin() bool {
	return b.revealedCount == b.SafeCellCount()
}
