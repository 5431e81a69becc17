package service

import (
	"sync"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

// watcherBuffer is how many unread states a watcher may fall behind by.
// Past that the oldest unread state is discarded, so the newest one is
// always delivered.
const watcherBuffer = 8

// session is one game hosted by the manager. All fields are guarded by mu.
type session struct {
	id string

	mu       sync.Mutex
	board    *chess.Board
	turn     chess.Colour
	outcome  engine.Outcome
	watchers map[int]chan *output.JSONGame
	nextID   int
	closed   bool
}

func newSession(id string) *session {
	return &session{
		id:       id,
		board:    chess.NewStandardBoard(),
		turn:     chess.White,
		watchers: make(map[int]chan *output.JSONGame),
	}
}

// stateLocked returns the client view of the game. mu must be held.
func (s *session) stateLocked() *output.JSONGame {
	return output.GameToJSON(s.id, s.board, s.turn)
}

// watch registers a new watcher and returns its channel and a function
// that unregisters it.
func (s *session) watch() (<-chan *output.JSONGame, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan *output.JSONGame, watcherBuffer)
	if s.closed {
		close(ch)
		return ch, func() {}
	}
	id := s.nextID
	s.nextID++
	s.watchers[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if c, ok := s.watchers[id]; ok {
				delete(s.watchers, id)
				close(c)
			}
		})
	}
}

// notifyLocked sends state to every watcher without blocking, dropping a
// lagging watcher's oldest unread state to make room. mu must be held.
func (s *session) notifyLocked(state *output.JSONGame) {
	for _, ch := range s.watchers {
		select {
		case ch <- state:
			continue
		default:
		}
		select {
		case <-ch:
		default:
		}
		// notifyLocked is the only sender, so a slot is free now.
		ch <- state
	}
}

// close ends every watch on the session.
func (s *session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	for id, ch := range s.watchers {
		delete(s.watchers, id)
		close(ch)
	}
}
