package config

import (
	"fmt"

	"github.com/vancomm/minesweeper-console/internal/mines"
)

// NewBoardDefaults reads the default board size from MINES_WIDTH,
// MINES_HEIGHT and MINES_COUNT, falling back to [mines.DefaultParams].
func NewBoardDefaults() (mines.GameParams, error) {
	params := mines.DefaultParams
	var err error
	if params.Width, err = lookupInt("MINES_WIDTH", params.Width); err != nil {
		return params, err
	}
	if params.Height, err = lookupInt("MINES_HEIGHT", params.Height); err != nil {
		return params, err
	}
	if params.MineCount, err = lookupInt("MINES_COUNT", params.MineCount); err != nil {
		return params, err
	}
	return params, params.Validate()
}

const defaultMaxCells = 1 << 20

// MaxCells caps the board size the game server accepts, MINES_MAX_CELLS or
// 1048576.
func MaxCells() (int, error) {
	maxCells, err := lookupInt("MINES_MAX_CELLS", defaultMaxCells)
	if err != nil {
		return 0, err
	}
	if maxCells <= 0 {
		return 0, fmt.Errorf("MINES_MAX_CELLS must be positive, got %d", maxCells)
	}
	return maxCells, nil
}
