package repo

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gogame/internal/domain/board"
	"gogame/internal/errors"
	"gogame/internal/usecase/bot"
	"gogame/internal/usecase/game"
)

// GameEntry is one live game. Lock it around every use of Session or Agent:
// neither is safe for concurrent callers.
type GameEntry struct {
	sync.Mutex
	ID      string
	Session *game.Session
	Agent   *bot.Agent
}

// SessionStore keeps the games of this process in memory.
type SessionStore struct {
	log      *zap.SugaredLogger
	seed     uint64
	mu       sync.RWMutex
	games    map[string]*GameEntry
	nextSeed uint64
}

// NewSessionStore seeds every new game's agent from seed, so a fixed seed
// replays the same bot moves game after game.
func NewSessionStore(log *zap.SugaredLogger, seed uint64) *SessionStore {
	return &SessionStore{
		log:   log,
		seed:  seed,
		games: make(map[string]*GameEntry),
	}
}

func (s *SessionStore) Create(size int, playerColor board.Stone) (*GameEntry, error) {
	session := game.NewSession(size)
	if err := session.SetPlayerColor(playerColor); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	entry := &GameEntry{
		ID:      uuid.New().String(),
		Session: session,
		Agent:   bot.NewSeededAgent(s.seed + s.nextSeed),
	}
	s.nextSeed++
	s.games[entry.ID] = entry

	s.log.Infow("game created", "id", entry.ID, "size", size, "player", playerColor.String())
	return entry, nil
}

func (s *SessionStore) Get(id string) (*GameEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.games[id]
	if !ok {
		return nil, errors.ErrGameNotFound
	}
	return entry, nil
}

func (s *SessionStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.games[id]; !ok {
		return false
	}
	delete(s.games, id)
	s.log.Infow("game deleted", "id", id)
	return true
}

func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.games)
}
