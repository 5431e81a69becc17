// Package service hosts concurrent chess games for remote clients.
package service

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

// MoveRequest is one move submitted by a client.
type MoveRequest struct {
	// Move in 4 character notation, e.g. "e2e4".
	Move string `json:"move"`

	// Promotion is R, N, B or Q. Empty promotes to a queen.
	Promotion string `json:"promotion,omitempty"`

	// Colour optionally names the side the client plays ("white" or
	// "black"). When set, moves out of turn are refused.
	Colour string `json:"colour,omitempty"`
}

// Manager owns the table of live games. Each game is locked on its own,
// so moves in different games never wait on each other.
type Manager struct {
	cfg *config.Config

	mu    sync.RWMutex
	games map[string]*session
}

// NewManager creates an empty manager.
func NewManager(cfg *config.Config) *Manager {
	return &Manager{
		cfg:   cfg,
		games: make(map[string]*session),
	}
}

// Create starts a game from the initial position.
func (m *Manager) Create() (*output.JSONGame, error) {
	m.mu.Lock()
	if len(m.games) >= m.cfg.Server.MaxGames {
		m.mu.Unlock()
		return nil, fmt.Errorf("limit of %d reached: %w", m.cfg.Server.MaxGames, errors.ErrTooManyGames)
	}
	s := newSession(uuid.New().String())
	m.games[s.id] = s
	m.mu.Unlock()

	m.cfg.Logf(config.Events, "game %s created", s.id)

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked(), nil
}

// List returns the ids of all live games in sorted order.
func (m *Manager) List() []string {
	m.mu.RLock()
	ids := maps.Keys(m.games)
	m.mu.RUnlock()
	slices.Sort(ids)
	return ids
}

// State returns the current state of game id.
func (m *Manager) State(id string) (*output.JSONGame, error) {
	s, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked(), nil
}

// Move plays req for the side to move in game id and returns the new state.
// Rule violations come back as *errors.RuleError and leave the game as it was.
func (m *Manager) Move(id string, req MoveRequest) (*output.JSONGame, error) {
	s, err := m.lookup(id)
	if err != nil {
		return nil, err
	}

	mv, err := chess.ParseMove(strings.TrimSpace(req.Move))
	if err != nil {
		return nil, err
	}
	promoter := engine.AlwaysQueen
	if req.Promotion != "" {
		kind, err := chess.ParsePromotion(req.Promotion)
		if err != nil {
			return nil, err
		}
		promoter = engine.PromoterFunc(func(chess.Colour) (chess.Kind, error) { return kind, nil })
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.outcome.Over() {
		return nil, fmt.Errorf("%s: %w", s.outcome, errors.ErrGameOver)
	}
	if req.Colour != "" && !strings.EqualFold(req.Colour, s.turn.String()) {
		return nil, fmt.Errorf("%s to move: %w", s.turn, errors.ErrNotYourTurn)
	}

	if err := engine.NewPlayer(s.turn, s.board, promoter).Execute(mv); err != nil {
		m.cfg.Logf(config.Commands, "game %s: %v rejected: %v", id, s.turn, err)
		return nil, err
	}
	m.cfg.Logf(config.Commands, "game %s: %v played %v", id, s.turn, mv)

	s.turn = s.turn.Opposite()
	s.outcome = engine.OutcomeFor(s.board, s.turn)
	if s.outcome.Over() {
		m.cfg.Logf(config.Events, "game %s finished: %s", id, s.outcome)
	}

	state := s.stateLocked()
	s.notifyLocked(state)
	return state, nil
}

// Watch subscribes to the states of game id after every move. The channel
// is closed when the game is deleted or stop is called.
func (m *Manager) Watch(id string) (updates <-chan *output.JSONGame, stop func(), err error) {
	s, err := m.lookup(id)
	if err != nil {
		return nil, nil, err
	}
	updates, stop = s.watch()
	return updates, stop, nil
}

// Delete removes game id and ends its watches.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	s, ok := m.games[id]
	delete(m.games, id)
	m.mu.Unlock()

	if !ok {
		return fmt.Errorf("%s: %w", id, errors.ErrGameNotFound)
	}
	s.close()
	m.cfg.Logf(config.Events, "game %s deleted", id)
	return nil
}

// Len returns the number of live games.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}

func (m *Manager) lookup(id string) (*session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.games[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", id, errors.ErrGameNotFound)
	}
	return s, nil
}
