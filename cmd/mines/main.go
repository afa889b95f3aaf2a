package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/vancomm/minesweeper-console/internal/config"
	"github.com/vancomm/minesweeper-console/internal/console"
	"github.com/vancomm/minesweeper-console/internal/logging"
	"github.com/vancomm/minesweeper-console/internal/mines"
)

var (
	width, height, mineCount int
	seed                     uint64
	noClear                  bool
)

func init() {
	flag.IntVar(&width, "width", 0, "board width (default MINES_WIDTH or 10)")
	flag.IntVar(&height, "height", 0, "board height (default MINES_HEIGHT or 10)")
	flag.IntVar(&mineCount, "mines", -1, "number of mines (default MINES_COUNT or 10)")
	flag.Uint64Var(&seed, "seed", 0, "seed for a reproducible layout, 0 for a random one")
	flag.BoolVar(&noClear, "no-clear", false, "do not clear the screen between moves")
}

func main() {
	flag.Parse()

	if err := config.LoadEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := logging.New(os.Stderr, config.Development())
	mines.Log = logger

	params, err := config.NewBoardDefaults()
	if err != nil {
		logger.Error("invalid board defaults", "error", err)
		os.Exit(1)
	}
	if width > 0 {
		params.Width = width
	}
	if height > 0 {
		params.Height = height
	}
	if mineCount >= 0 {
		params.MineCount = mineCount
	}

	var r *rand.Rand
	if seed != 0 {
		r = rand.New(rand.NewPCG(seed, seed))
	}

	game, err := mines.NewGame(params, r)
	if err != nil {
		logger.Error("unable to create board", "params", params, "error", err)
		os.Exit(2)
	}
	logger.Debug("starting game", "params", params, "seed", seed)

	status, err := console.Minesweeper(game, os.Stdin, os.Stdout, console.Options{
		Clear:  !noClear,
		Logger: logger,
	})
	if err != nil {
		logger.Error("game aborted", "error", err)
		os.Exit(1)
	}
	logger.Debug("game finished", "status", status)
}
