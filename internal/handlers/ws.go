package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vancomm/minesweeper-console/internal/mines"
	"github.com/vancomm/minesweeper-console/internal/session"
)

type wsCommand string

const (
	wsNoop    wsCommand = "g"
	wsOpen    wsCommand = "o"
	wsForfeit wsCommand = "r"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadArguments   = errors.New("invalid number of arguments")
)

func parseXY(args []string) (x int, y int, err error) {
	if len(args) != 2 {
		return 0, 0, ErrBadArguments
	}
	if x, err = strconv.Atoi(args[0]); err != nil {
		return 0, 0, errors.New("first argument must be an int")
	}
	if y, err = strconv.Atoi(args[1]); err != nil {
		return 0, 0, errors.New("second argument must be an int")
	}
	return x, y, nil
}

// execute runs a single command line against the game. The outcome is nil
// for commands that do not reveal.
func execute(game *mines.Game, line string) (*mines.Outcome, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return nil, nil
	}
	cmd, args := wsCommand(tokens[0]), tokens[1:]
	switch cmd {
	case wsNoop:
		return nil, nil
	case wsOpen:
		x, y, err := parseXY(args)
		if err != nil {
			return nil, err
		}
		outcome, err := game.Reveal(x, y)
		if err != nil {
			return nil, err
		}
		return &outcome, nil
	case wsForfeit:
		if len(args) != 0 {
			return nil, ErrBadArguments
		}
		game.Forfeit()
		return nil, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownCommand, cmd)
	}
}

// runLines executes newline-separated commands until one fails. Reveals on a
// finished game fail with [mines.ErrGameOver]. The last reveal outcome is
// returned.
func runLines(game *mines.Game, message string) (last *mines.Outcome, err error) {
	for _, line := range strings.Split(message, "\n") {
		outcome, err := execute(game, strings.TrimSpace(line))
		if err != nil {
			return last, err
		}
		if outcome != nil {
			last = outcome
		}
	}
	return last, nil
}

type wsReply struct {
	*GameSessionDTO
	Error string `json:"error,omitempty"`
}

func (g GameHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	s, ok := g.lookup(w, r)
	if !ok {
		return
	}

	conn, err := g.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.logger.Error("unable to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	if err := g.wsRunGameLoop(conn, s); err != nil &&
		!websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
		g.logger.Warn("websocket closed", "session", s.ID, "error", err)
	}
}

func (g GameHandler) wsRunGameLoop(conn *websocket.Conn, s *session.Session) error {
	for {
		mt, buf, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		if mt != websocket.TextMessage {
			return nil
		}

		message := strings.TrimSpace(string(buf))
		g.logger.Debug("ws command", "session", s.ID, "message", message)

		var reply wsReply
		s.Do(func(game *mines.Game) error {
			outcome, err := runLines(game, message)
			if err != nil {
				reply.Error = err.Error()
			}
			reply.GameSessionDTO = NewGameSessionDTO(s, game, outcome)
			return nil
		})
		reply.withEndedAt(s)

		conn.SetWriteDeadline(time.Now().Add(g.ws.WriteTimeout))
		if err := conn.WriteJSON(reply); err != nil {
			return err
		}
	}
}
