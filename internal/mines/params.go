package mines

import "fmt"

type GameParams struct {
	Width, Height, MineCount int
}

var DefaultParams = GameParams{Width: 10, Height: 10, MineCount: 10}

func (p GameParams) Unpack() (w int, h int, mc int) {
	return p.Width, p.Height, p.MineCount
}

func (p GameParams) Validate() error {
	return validate(p.Width, p.Height, p.MineCount)
}

// ValidateWithin is [GameParams.Validate] with an upper bound on the number
// of cells.
func (p GameParams) ValidateWithin(maxCells int) error {
	return validateWithin(p.Width, p.Height, p.MineCount, maxCells)
}

func (p GameParams) PointInBounds(x, y int) bool {
	return 0 <= x && x < p.Width && 0 <= y && y < p.Height
}

func (p GameParams) String() string {
	return fmt.Sprintf("%dx%d(%d)", p.Width, p.Height, p.MineCount)
}
