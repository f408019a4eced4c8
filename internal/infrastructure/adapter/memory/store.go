package memory

import (
	"sync"
	"time"

	"github.com/amirhossein-jamali/acorn-grove/internal/domain/entity"
)

type itemKey struct {
	userID string
	item   string
}

type cooldownKey struct {
	userID string
	action string
}

type awardKey struct {
	userID string
	day    string
}

// Store keeps every table in process memory behind one mutex.
// It backs the "memory" storage driver and the concurrency tests.
type Store struct {
	mu sync.Mutex

	// txMu serializes units of work
	txMu sync.Mutex

	users       map[string]*entity.User
	wallets     map[string]int64
	inventory   map[itemKey]int64
	cooldowns   map[cooldownKey]time.Time
	awards      map[awardKey]int64
	entries     []*entity.LedgerEntry
	nextEntryID uint64
	chat        []*entity.ChatMessage
	nextChatID  uint64
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		users:     make(map[string]*entity.User),
		wallets:   make(map[string]int64),
		inventory: make(map[itemKey]int64),
		cooldowns: make(map[cooldownKey]time.Time),
		awards:    make(map[awardKey]int64),
	}
}

// snapshot captures the ledger tables so a unit of work can be undone
type snapshot struct {
	wallets   map[string]int64
	inventory map[itemKey]int64
	awards    map[awardKey]int64
	entries   int
}

func (s *Store) takeSnapshot() *snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := &snapshot{
		wallets:   make(map[string]int64, len(s.wallets)),
		inventory: make(map[itemKey]int64, len(s.inventory)),
		awards:    make(map[awardKey]int64, len(s.awards)),
		entries:   len(s.entries),
	}
	for k, v := range s.wallets {
		snap.wallets[k] = v
	}
	for k, v := range s.inventory {
		snap.inventory[k] = v
	}
	for k, v := range s.awards {
		snap.awards[k] = v
	}
	return snap
}

func (s *Store) restore(snap *snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.wallets = snap.wallets
	s.inventory = snap.inventory
	s.awards = snap.awards
	s.entries = s.entries[:snap.entries]
}
