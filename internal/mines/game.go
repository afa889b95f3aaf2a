package mines

import (
	"log/slog"
	"math/rand/v2"
)

var Log *slog.Logger = slog.Default()

type Status uint8

const (
	Playing Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Game tracks whether a [Board] is still being played. Once the game is won
// or lost further reveals are refused with [ErrGameOver].
type Game struct {
	board    *Board
	status   Status
	exploded int // linear index of the mine that was hit, -1 if none
}

func NewGame(params GameParams, r *rand.Rand) (*Game, error) {
	board, err := New(params.Width, params.Height, params.MineCount, r)
	if err != nil {
		return nil, err
	}
	return NewGameFromBoard(board), nil
}

func NewGameFromBoard(board *Board) *Game {
	return &Game{board: board, exploded: -1}
}

func (g *Game) Board() *Board  { return g.board }
func (g *Game) Status() Status { return g.status }
func (g *Game) Over() bool     { return g.status != Playing }

func (g *Game) Params() GameParams {
	return GameParams{
		Width:     g.board.width,
		Height:    g.board.height,
		MineCount: g.board.mineCount,
	}
}

// Reveal opens (x, y) and moves the game to [Won] or [Lost] when the move
// decides it.
func (g *Game) Reveal(x, y int) (Outcome, error) {
	if g.Over() {
		return 0, ErrGameOver
	}

	outcome := g.board.Reveal(x, y)
	switch outcome {
	case Mine:
		g.status = Lost
		g.exploded = y*g.board.width + x
		Log.Debug("mine hit", "x", x, "y", y)
	case Safe, AlreadyRevealed:
		if g.board.CheckWin() {
			g.status = Won
			Log.Debug("board cleared", "params", g.Params())
		}
	}
	return outcome, nil
}

// Forfeit ends a running game as lost.
func (g *Game) Forfeit() {
	if !g.Over() {
		g.status = Lost
	}
}

// Grid is the player's view of the game. Finished games show every cell, with
// the mine that ended the game marked as [ExplodedMine].
func (g *Game) Grid(revealAll bool) Grid {
	grid := g.board.View(revealAll || g.Over())
	if g.exploded >= 0 {
		grid[g.exploded] = ExplodedMine
	}
	return grid
}
