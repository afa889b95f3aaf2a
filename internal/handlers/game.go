package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/vancomm/minesweeper-console/internal/config"
	"github.com/vancomm/minesweeper-console/internal/mines"
	"github.com/vancomm/minesweeper-console/internal/session"
)

var ErrBadSessionID = errors.New("game session id must be an integer")

type GameHandler struct {
	logger   *slog.Logger
	sessions *session.Registry
	ws       *config.WebSocket
}

func NewGameHandler(
	logger *slog.Logger,
	sessions *session.Registry,
	ws *config.WebSocket,
) *GameHandler {
	handler := &GameHandler{
		logger:   logger,
		sessions: sessions,
		ws:       ws,
	}
	return handler
}

// lookup resolves the {id} path value, answering the request itself when the
// session cannot be found.
func (g GameHandler) lookup(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		sendErrorOrLog(w, g.logger, http.StatusBadRequest, ErrBadSessionID)
		return nil, false
	}
	s, err := g.sessions.Get(id)
	if errors.Is(err, session.ErrNotFound) {
		sendErrorOrLog(w, g.logger, http.StatusNotFound, err)
		return nil, false
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to fetch session", "error", err)
		return nil, false
	}
	return s, true
}

func (g GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseCreateNewGameDTO(r.URL.Query())
	if err != nil {
		sendErrorOrLog(w, g.logger, http.StatusBadRequest, err)
		return
	}

	s, err := g.sessions.Create(mines.GameParams(dto))
	if errors.Is(err, mines.ErrInvalidConfiguration) {
		sendErrorOrLog(w, g.logger, http.StatusBadRequest, err)
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to create a new game", "error", err)
		return
	}

	g.logger.Debug("created game session", "id", s.ID, "params", mines.GameParams(dto))

	var resp *GameSessionDTO
	s.Do(func(game *mines.Game) error {
		resp = NewGameSessionDTO(s, game, nil)
		return nil
	})
	sendJSONOrLog(w, g.logger, http.StatusOK, resp.withEndedAt(s))
}

func (g GameHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	s, ok := g.lookup(w, r)
	if !ok {
		return
	}

	var resp *GameSessionDTO
	s.Do(func(game *mines.Game) error {
		resp = NewGameSessionDTO(s, game, nil)
		return nil
	})
	sendJSONOrLog(w, g.logger, http.StatusOK, resp.withEndedAt(s))
}

func (g GameHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	pos, err := ParsePosition(r.URL.Query())
	if err != nil {
		sendErrorOrLog(w, g.logger, http.StatusBadRequest, err)
		return
	}

	s, ok := g.lookup(w, r)
	if !ok {
		return
	}

	var resp *GameSessionDTO
	err = s.Do(func(game *mines.Game) error {
		outcome, err := game.Reveal(pos.X, pos.Y)
		if err != nil {
			return err
		}
		resp = NewGameSessionDTO(s, game, &outcome)
		return nil
	})
	if errors.Is(err, mines.ErrGameOver) {
		sendErrorOrLog(w, g.logger, http.StatusConflict, err)
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to reveal cell", "error", err)
		return
	}

	sendJSONOrLog(w, g.logger, http.StatusOK, resp.withEndedAt(s))
}

func (g GameHandler) Forfeit(w http.ResponseWriter, r *http.Request) {
	s, ok := g.lookup(w, r)
	if !ok {
		return
	}

	var resp *GameSessionDTO
	s.Do(func(game *mines.Game) error {
		game.Forfeit()
		resp = NewGameSessionDTO(s, game, nil)
		return nil
	})
	sendJSONOrLog(w, g.logger, http.StatusOK, resp.withEndedAt(s))
}
