package session

import (
	"errors"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/vancomm/minesweeper-console/internal/mines"
)

var ErrNotFound = errors.New("session not found")

// Session is one live game. All access to the game goes through [Session.Do].
type Session struct {
	ID        int64
	StartedAt time.Time

	mu      sync.Mutex
	game    *mines.Game
	endedAt time.Time
}

// Do runs fn with exclusive access to the game and stamps the end time the
// first time the game is over.
func (s *Session) Do(fn func(g *mines.Game) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := fn(s.game)
	if s.game.Over() && s.endedAt.IsZero() {
		s.endedAt = time.Now().UTC()
	}
	return err
}

// EndedAt is zero while the game is running.
func (s *Session) EndedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.endedAt
}

// Registry holds games in memory. Nothing survives a restart.
type Registry struct {
	mu       sync.Mutex
	rnd      *rand.Rand
	maxCells int
	nextID   int64
	sessions map[int64]*Session
}

// NewRegistry seeds every new game from rnd, or from the global source when
// rnd is nil. Boards with more than maxCells cells are refused; 0 means no
// limit.
func NewRegistry(rnd *rand.Rand, maxCells int) *Registry {
	return &Registry{
		rnd:      rnd,
		maxCells: maxCells,
		nextID:   1,
		sessions: make(map[int64]*Session),
	}
}

func (r *Registry) seed() (uint64, uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.rnd == nil {
		return rand.Uint64(), rand.Uint64()
	}
	return r.rnd.Uint64(), r.rnd.Uint64()
}

// Create builds the board outside the registry lock so a large board does
// not hold up other sessions.
func (r *Registry) Create(params mines.GameParams) (*Session, error) {
	if err := params.ValidateWithin(r.maxCells); err != nil {
		return nil, err
	}

	game, err := mines.NewGame(params, rand.New(rand.NewPCG(r.seed())))
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	s := &Session{
		ID:        r.nextID,
		StartedAt: time.Now().UTC(),
		game:      game,
	}
	r.sessions[s.ID] = s
	r.nextID++
	return s, nil
}

func (r *Registry) Get(id int64) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

func (r *Registry) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(r.sessions, id)
	return nil
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Prune drops games that ended before cutoff and returns how many went.
func (r *Registry) Prune(cutoff time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for id, s := range r.sessions {
		if ended := s.EndedAt(); !ended.IsZero() && ended.Before(cutoff) {
			delete(r.sessions, id)
			n++
		}
	}
	return n
}
