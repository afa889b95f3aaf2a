package mines

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidConfiguration = errors.New("invalid board configuration")
	ErrGameOver             = errors.New("game is over")
)

// ConfigError describes why a board could not be built. It matches
// [ErrInvalidConfiguration] with [errors.Is].
type ConfigError struct {
	Width, Height, MineCount int
	// Index is the offending mine index for boards with explicit layouts.
	Index *int
	// MaxCells is the cell limit the board was checked against, 0 if none.
	MaxCells int
}

func (e *ConfigError) Error() string {
	switch {
	case e.Width <= 0:
		return fmt.Sprintf("cannot create a board with width %d", e.Width)
	case e.Height <= 0:
		return fmt.Sprintf("cannot create a board with height %d", e.Height)
	case e.MineCount < 0:
		return fmt.Sprintf("cannot create a board with %d mines", e.MineCount)
	case tooLarge(e.Width, e.Height, e.MaxCells):
		if e.MaxCells > 0 {
			return fmt.Sprintf(
				"board %dx%d is larger than %d cells", e.Width, e.Height, e.MaxCells,
			)
		}
		return fmt.Sprintf("board %dx%d is too large", e.Width, e.Height)
	case e.MineCount > e.Width*e.Height:
		return fmt.Sprintf(
			"not enough space for %d mines (%d > %d * %d)",
			e.MineCount, e.MineCount, e.Width, e.Height,
		)
	case e.Index != nil:
		return fmt.Sprintf(
			"mine index %d is out of range or repeated on a %dx%d board",
			*e.Index, e.Width, e.Height,
		)
	default:
		return ErrInvalidConfiguration.Error()
	}
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}

// tooLarge reports whether width*height overflows int or exceeds maxCells.
// A maxCells of 0 only checks for overflow. Both sides must be positive.
func tooLarge(width, height, maxCells int) bool {
	if height > math.MaxInt/width {
		return true
	}
	return maxCells > 0 && width*height > maxCells
}

func validate(width, height, mineCount int) error {
	return validateWithin(width, height, mineCount, 0)
}

func validateWithin(width, height, mineCount, maxCells int) error {
	if width <= 0 || height <= 0 || mineCount < 0 ||
		tooLarge(width, height, maxCells) || mineCount > width*height {
		return &ConfigError{
			Width: width, Height: height, MineCount: mineCount, MaxCells: maxCells,
		}
	}
	return nil
}
