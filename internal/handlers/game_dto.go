package handlers

import (
	"strconv"

	"github.com/gorilla/schema"

	"github.com/vancomm/minesweeper-console/internal/mines"
	"github.com/vancomm/minesweeper-console/internal/session"
)

var decoder = newDecoder()

func newDecoder() *schema.Decoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	return dec
}

type CreateNewGameDTO struct {
	Width     int `schema:"width,required"`
	Height    int `schema:"height,required"`
	MineCount int `schema:"mine_count,required"`
}

func ParseCreateNewGameDTO(src map[string][]string) (CreateNewGameDTO, error) {
	var dto CreateNewGameDTO
	err := decoder.Decode(&dto, src)
	return dto, err
}

type Position struct {
	X int `schema:"x,required"`
	Y int `schema:"y,required"`
}

func ParsePosition(src map[string][]string) (Position, error) {
	var pos Position
	err := decoder.Decode(&pos, src)
	return pos, err
}

type GameSessionDTO struct {
	GameSessionId string         `json:"game_session_id"`
	Grid          mines.Grid     `json:"grid"`
	Width         int            `json:"width"`
	Height        int            `json:"height"`
	MineCount     int            `json:"mine_count"`
	Revealed      int            `json:"revealed"`
	Status        mines.Status   `json:"status"`
	Outcome       *mines.Outcome `json:"outcome,omitempty"`
	StartedAt     int64          `json:"started_at"`
	EndedAt       *int64         `json:"ended_at,omitempty"`
}

// NewGameSessionDTO must be called while holding the session, i.e. from
// inside [session.Session.Do].
func NewGameSessionDTO(
	s *session.Session,
	g *mines.Game,
	outcome *mines.Outcome,
) *GameSessionDTO {
	params := g.Params()
	return &GameSessionDTO{
		GameSessionId: strconv.FormatInt(s.ID, 10),
		Grid:          g.Grid(false),
		Width:         params.Width,
		Height:        params.Height,
		MineCount:     params.MineCount,
		Revealed:      g.Board().RevealedCount(),
		Status:        g.Status(),
		Outcome:       outcome,
		StartedAt:     s.StartedAt.UnixMilli(),
	}
}

func (dto *GameSessionDTO) withEndedAt(s *session.Session) *GameSessionDTO {
	if ended := s.EndedAt(); !ended.IsZero() {
		e := ended.UnixMilli()
		dto.EndedAt = &e
	}
	return dto
}
