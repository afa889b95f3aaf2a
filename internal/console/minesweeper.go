package console

import (
	"io"
	"log/slog"
	"strconv"

	"github.com/vancomm/minesweeper-console/internal/mines"
	"github.com/vancomm/minesweeper-console/internal/render"
)

type Options struct {
	// Clear wipes the terminal before every board redraw.
	Clear  bool
	Logger *slog.Logger
}

// Minesweeper plays g against the player on in/out until the game is won,
// lost or the input runs out, and returns the final status.
func Minesweeper(g *mines.Game, in io.Reader, out io.Writer, opts Options) (mines.Status, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	p := newPrompter(in, out)
	r := render.Renderer{Out: out, Clear: opts.Clear}
	b := g.Board()

	for !g.Over() {
		if err := r.Draw(g, false); err != nil {
			return g.Status(), err
		}

		xs, ok := p.ask("Enter x coordinate: ")
		if !ok {
			break
		}
		ys, ok := p.ask("Enter y coordinate: ")
		if !ok {
			break
		}
		if xs == "" || ys == "" {
			p.say("Please enter valid coordinates.")
			continue
		}

		x, errX := strconv.Atoi(xs)
		y, errY := strconv.Atoi(ys)
		if errX != nil || errY != nil {
			p.say("Invalid input. Please enter numbers only.")
			if !p.pause() {
				break
			}
			continue
		}

		if !b.InBounds(x, y) {
			p.say(
				"Coordinates out of bounds. Please enter x: 0-%d, y: 0-%d",
				b.Width()-1, b.Height()-1,
			)
			if !p.pause() {
				break
			}
			continue
		}

		outcome, err := g.Reveal(x, y)
		if err != nil {
			return g.Status(), err
		}
		logger.Debug("reveal", "x", x, "y", y, "outcome", outcome, "revealed", b.RevealedCount())
	}

	if err := p.err(); err != nil {
		return g.Status(), err
	}

	switch g.Status() {
	case mines.Lost:
		if err := r.Draw(g, true); err != nil {
			return g.Status(), err
		}
		p.say("\nBOOM! Game Over! You hit a mine.")
	case mines.Won:
		if err := r.Draw(g, true); err != nil {
			return g.Status(), err
		}
		p.say("\nCongratulations! You have cleared all mines!")
	}
	return g.Status(), nil
}
