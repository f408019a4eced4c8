package memory

import (
	"context"

	"github.com/amirhossein-jamali/acorn-grove/internal/domain/entity"
	errs "github.com/amirhossein-jamali/acorn-grove/internal/domain/error"
)

// UserRepository keeps guest users in a Store
type UserRepository struct {
	store *Store
}

// NewUserRepository creates a user repository over store
func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.users[user.ID]; exists {
		return errs.ErrDuplicateUser
	}
	clone := *user
	r.store.users[user.ID] = &clone
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	user, ok := r.store.users[id]
	if !ok {
		return nil, errs.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

// LedgerEntryRepository keeps the audit log in a Store
type LedgerEntryRepository struct {
	store *Store
}

// NewLedgerEntryRepository creates an audit repository over store
func NewLedgerEntryRepository(store *Store) *LedgerEntryRepository {
	return &LedgerEntryRepository{store: store}
}

func (r *LedgerEntryRepository) Append(ctx context.Context, entry *entity.LedgerEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextEntryID++
	entry.ID = r.store.nextEntryID
	clone := *entry
	r.store.entries = append(r.store.entries, &clone)
	return nil
}

// ListByUser returns the newest entries of a user first
func (r *LedgerEntryRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.LedgerEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	out := make([]*entity.LedgerEntry, 0)
	for i := len(r.store.entries) - 1; i >= 0 && (limit <= 0 || len(out) < limit); i-- {
		if r.store.entries[i].UserID == userID {
			clone := *r.store.entries[i]
			out = append(out, &clone)
		}
	}
	return out, nil
}

// ChatRepository keeps the chat log in a Store
type ChatRepository struct {
	store *Store
}

// NewChatRepository creates a chat repository over store
func NewChatRepository(store *Store) *ChatRepository {
	return &ChatRepository{store: store}
}

func (r *ChatRepository) Append(ctx context.Context, msg *entity.ChatMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextChatID++
	msg.ID = r.store.nextChatID
	clone := *msg
	r.store.chat = append(r.store.chat, &clone)
	return nil
}

func (r *ChatRepository) ListRecent(ctx context.Context, channel string, limit int) ([]*entity.ChatMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return []*entity.ChatMessage{}, nil
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	newest := make([]*entity.ChatMessage, 0, limit)
	for i := len(r.store.chat) - 1; i >= 0 && len(newest) < limit; i-- {
		if r.store.chat[i].Channel == channel {
			clone := *r.store.chat[i]
			newest = append(newest, &clone)
		}
	}
	for i, j := 0, len(newest)-1; i < j; i, j = i+1, j-1 {
		newest[i], newest[j] = newest[j], newest[i]
	}
	return newest, nil
}
