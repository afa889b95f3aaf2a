package mines

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func revealedSet(b *Board) []bool {
	set := make([]bool, b.width*b.height)
	for y := range b.height {
		for x := range b.width {
			set[y*b.width+x] = b.IsRevealed(x, y)
		}
	}
	return set
}

func TestNewInvalidConfiguration(t *testing.T) {
	tests := []struct {
		name                     string
		width, height, mineCount int
	}{
		{"zero width", 0, 3, 1},
		{"negative height", 3, -1, 1},
		{"negative mines", 3, 3, -1},
		{"too many mines", 3, 3, 10},
		{"cell count overflows", 1 << 32, 1 << 32, 0},
		{"cell count overflows with mines", math.MaxInt, 2, 1},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b, err := New(test.width, test.height, test.mineCount, nil)
			assert.Nil(t, b)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfiguration)

			var configErr *ConfigError
			require.True(t, errors.As(err, &configErr))
			assert.Equal(t, test.mineCount, configErr.MineCount)
		})
	}
}

func TestNewFromMinesOverflow(t *testing.T) {
	_, err := NewFromMines(1<<32, 1<<32, nil)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
	assert.ErrorContains(t, err, "too large")
}

func TestValidateWithin(t *testing.T) {
	params := GameParams{Width: 100, Height: 100, MineCount: 10}
	assert.NoError(t, params.ValidateWithin(10000))
	assert.NoError(t, params.ValidateWithin(0))

	err := params.ValidateWithin(9999)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
	assert.EqualError(t, err, "board 100x100 is larger than 9999 cells")

	err = GameParams{Width: 1 << 40, Height: 1 << 40}.ValidateWithin(10000)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestNewMinePlacement(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	tests := []GameParams{
		{Width: 1, Height: 1, MineCount: 0},
		{Width: 1, Height: 1, MineCount: 1},
		{Width: 9, Height: 9, MineCount: 10},
		{Width: 16, Height: 16, MineCount: 40},
		{Width: 30, Height: 16, MineCount: 99},
		{Width: 5, Height: 4, MineCount: 20},
	}
	for _, params := range tests {
		t.Run(params.String(), func(t *testing.T) {
			for range 20 {
				b, err := New(params.Width, params.Height, params.MineCount, r)
				require.NoError(t, err)

				mines := b.Mines()
				assert.Len(t, mines, params.MineCount)
				seen := make(map[int]bool)
				for _, i := range mines {
					assert.GreaterOrEqual(t, i, 0)
					assert.Less(t, i, params.Width*params.Height)
					assert.False(t, seen[i], "mine %d placed twice", i)
					seen[i] = true
				}
				assert.Equal(t, params.Width*params.Height-params.MineCount, b.SafeCellCount())
				assert.Zero(t, b.RevealedCount())
			}
		})
	}
}

func TestNewCoversEveryCell(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	hits := make([]int, 9)
	for range 500 {
		b, err := New(3, 3, 1, r)
		require.NoError(t, err)
		hits[b.Mines()[0]]++
	}
	for i, n := range hits {
		assert.Positive(t, n, "cell %d never received a mine", i)
	}
}

func TestNewFromMinesRejectsBadIndices(t *testing.T) {
	_, err := NewFromMines(3, 3, []int{0, 0})
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
	_, err = NewFromMines(3, 3, []int{9})
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
	_, err = NewFromMines(3, 3, []int{-1})
	assert.ErrorContains(t, err, "mine index -1")
}

func TestNeighborMineCount(t *testing.T) {
	// * . .
	// . * .
	// . . .
	b, err := NewFromMines(3, 3, []int{0, 4})
	require.NoError(t, err)

	expected := [][]int{
		{1, 2, 1},
		{2, 1, 1},
		{1, 1, 1},
	}
	for y, row := range expected {
		for x, count := range row {
			assert.Equal(t, count, b.NeighborMineCount(x, y), "(%d, %d)", x, y)
		}
	}
}

func TestNeighborMineCountBounds(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	b, err := New(8, 6, 30, r)
	require.NoError(t, err)
	for y := range b.Height() {
		for x := range b.Width() {
			count := b.NeighborMineCount(x, y)
			assert.GreaterOrEqual(t, count, 0)
			assert.LessOrEqual(t, count, 8)

			anyMine := false
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if (dx != 0 || dy != 0) && b.IsMine(x+dx, y+dy) {
						anyMine = true
					}
				}
			}
			assert.Equal(t, !anyMine, count == 0, "(%d, %d)", x, y)
		}
	}

	full, err := NewFromMines(3, 3, []int{0, 1, 2, 3, 5, 6, 7, 8})
	require.NoError(t, err)
	assert.Equal(t, 8, full.NeighborMineCount(1, 1))
}

func TestRevealCascadeSingleMine(t *testing.T) {
	b, err := NewFromMines(3, 3, []int{0})
	require.NoError(t, err)

	assert.Equal(t, Safe, b.Reveal(2, 2))
	for y := range 3 {
		for x := range 3 {
			assert.Equal(t, !(x == 0 && y == 0), b.IsRevealed(x, y), "(%d, %d)", x, y)
		}
	}
	assert.Equal(t, 8, b.RevealedCount())
	assert.True(t, b.CheckWin())
}

func TestRevealMineDoesNotMutate(t *testing.T) {
	b, err := NewFromMines(3, 3, []int{0})
	require.NoError(t, err)

	before := revealedSet(b)
	assert.Equal(t, Mine, b.Reveal(0, 0))
	assert.Equal(t, before, revealedSet(b))
	assert.False(t, b.IsRevealed(0, 0))
	assert.False(t, b.CheckWin())
}

func TestRevealOutOfBounds(t *testing.T) {
	b, err := NewFromMines(3, 3, []int{0})
	require.NoError(t, err)

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {100, 100}} {
		assert.Equal(t, OutOfBounds, b.Reveal(p[0], p[1]))
		assert.Zero(t, b.RevealedCount())
	}
	assert.False(t, b.IsRevealed(-1, 0))
	assert.False(t, b.IsMine(3, 3))
}

func TestRevealAlreadyRevealed(t *testing.T) {
	// numbered cell: no cascade
	b, err := NewFromMines(3, 3, []int{0})
	require.NoError(t, err)

	assert.Equal(t, Safe, b.Reveal(1, 1))
	assert.Equal(t, 1, b.RevealedCount())
	assert.Equal(t, AlreadyRevealed, b.Reveal(1, 1))
	assert.Equal(t, 1, b.RevealedCount())
}

func TestSingleCellBoard(t *testing.T) {
	b, err := New(1, 1, 0, nil)
	require.NoError(t, err)

	assert.False(t, b.CheckWin())
	assert.Equal(t, Safe, b.Reveal(0, 0))
	assert.True(t, b.CheckWin())
}

func TestRevealCascadeStopsAtNumbers(t *testing.T) {
	// . . . . .
	// . . . . .
	// * * * * *
	// . . . . .
	b, err := NewFromMines(5, 4, []int{10, 11, 12, 13, 14})
	require.NoError(t, err)

	assert.Equal(t, Safe, b.Reveal(0, 0))
	for x := range 5 {
		assert.True(t, b.IsRevealed(x, 0))
		assert.True(t, b.IsRevealed(x, 1))
		assert.False(t, b.IsRevealed(x, 2))
		assert.False(t, b.IsRevealed(x, 3))
	}
	assert.False(t, b.CheckWin())

	for x := range 5 {
		assert.Equal(t, Safe, b.Reveal(x, 3))
	}
	assert.True(t, b.CheckWin())
}

func TestRevealLargeEmptyBoard(t *testing.T) {
	b, err := NewFromMines(500, 400, []int{0})
	require.NoError(t, err)

	assert.Equal(t, Safe, b.Reveal(499, 399))
	assert.Equal(t, 500*400-1, b.RevealedCount())
	assert.True(t, b.CheckWin())
}

func TestRevealConfluence(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for range 20 {
		layout, err := New(12, 10, 15, r)
		require.NoError(t, err)
		mines := layout.Mines()

		var zeros [][2]int
		for y := range layout.Height() {
			for x := range layout.Width() {
				if !layout.IsMine(x, y) && layout.NeighborMineCount(x, y) == 0 {
					zeros = append(zeros, [2]int{x, y})
				}
			}
		}

		// Every zero cell of a region must produce the same revealed set.
		results := make(map[[2]int][]bool)
		for _, z := range zeros {
			b, err := NewFromMines(12, 10, mines)
			require.NoError(t, err)
			require.Equal(t, Safe, b.Reveal(z[0], z[1]))
			results[z] = revealedSet(b)
		}
		for _, z := range zeros {
			set := results[z]
			for _, other := range zeros {
				if set[other[1]*12+other[0]] {
					assert.Equal(t, set, results[other],
						"reveal from %v and %v differ", z, other)
				}
			}
		}
	}
}

func TestRevealMonotonic(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	b, err := New(10, 10, 12, r)
	require.NoError(t, err)

	prev := revealedSet(b)
	prevCount := 0
	for range 200 {
		x, y := r.IntN(12)-1, r.IntN(12)-1
		if b.IsMine(x, y) {
			continue
		}
		b.Reveal(x, y)
		next := revealedSet(b)
		for i := range prev {
			if prev[i] {
				assert.True(t, next[i], "cell %d was hidden again", i)
			}
			if next[i] {
				assert.False(t, b.mines[i], "mine %d was revealed", i)
			}
		}
		assert.GreaterOrEqual(t, b.RevealedCount(), prevCount)
		prev, prevCount = next, b.RevealedCount()
	}
}

func TestCheckWinOnlyWhenAllSafeRevealed(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	b, err := New(6, 6, 5, r)
	require.NoError(t, err)

	for y := range b.Height() {
		for x := range b.Width() {
			if b.IsMine(x, y) || b.IsRevealed(x, y) {
				continue
			}
			assert.False(t, b.CheckWin())
			b.Reveal(x, y)
		}
	}
	assert.True(t, b.CheckWin())
	assert.Equal(t, b.SafeCellCount(), b.RevealedCount())
}
