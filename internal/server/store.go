package server

import (
	"errors"
	"sync"
)

var errNoActiveSession = errors.New("no active game session")

// GameStore guards the single live session. All mutation goes through
// Update so callers never hold session state across the lock.
type GameStore struct {
	mu      sync.Mutex
	session *Session
}

func NewGameStore() *GameStore {
	return &GameStore{}
}

// Setup replaces any existing session with a fresh one for the given roster.
func (s *GameStore) Setup(playerNames []string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	players := make([]Player, 0, len(playerNames))
	for _, name := range playerNames {
		players = append(players, Player{Name: name})
	}
	s.session = &Session{
		Active:  true,
		Players: players,
	}
	return s.session
}

func (s *GameStore) Current() (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil, false
	}
	return s.session, true
}

func (s *GameStore) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session != nil && s.session.Active
}

func (s *GameStore) Update(update func(session *Session) error) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil, errNoActiveSession
	}
	if err := update(s.session); err != nil {
		return nil, err
	}
	return s.session, nil
}

func (s *GameStore) FindPlayer(session *Session, name string) (*Player, bool) {
	for i := range session.Players {
		if session.Players[i].Name == name {
			return &session.Players[i], true
		}
	}
	return nil, false
}
