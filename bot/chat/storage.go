package chat

import (
	"context"
	"sync"
)

// SessionStorage persists widget sessions. Load returns (nil, nil) when no
// usable snapshot exists; corruption is never surfaced past this layer.
type SessionStorage interface {
	Save(ctx context.Context, s *Session) error
	Load(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
}

// SnapshotRepository defines the database operations for session snapshots.
type SnapshotRepository interface {
	SaveSnapshot(ctx context.Context, sessionID string, data []byte) error
	LoadSnapshot(ctx context.Context, sessionID string) ([]byte, error)
	DeleteSnapshot(ctx context.Context, sessionID string) error
}

// MongoSessionStorage adapts the database repository to the SessionStorage
// interface, encoding sessions through the snapshot codec.
type MongoSessionStorage struct {
	repo SnapshotRepository
}

// NewMongoSessionStorage creates a MongoDB-backed session storage.
func NewMongoSessionStorage(repo SnapshotRepository) *MongoSessionStorage {
	return &MongoSessionStorage{repo: repo}
}

func (s *MongoSessionStorage) Save(ctx context.Context, session *Session) error {
	data, err := EncodeSnapshot(session)
	if err != nil {
		return err
	}
	return s.repo.SaveSnapshot(ctx, session.ID, data)
}

func (s *MongoSessionStorage) Load(ctx context.Context, sessionID string) (*Session, error) {
	raw, err := s.repo.LoadSnapshot(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return DecodeSnapshot(sessionID, raw), nil
}

func (s *MongoSessionStorage) Delete(ctx context.Context, sessionID string) error {
	return s.repo.DeleteSnapshot(ctx, sessionID)
}

// MemoryStorage keeps snapshots in process memory. Used when Mongo is
// disabled and in tests. Goes through the same codec so persistence
// semantics stay identical.
type MemoryStorage struct {
	mu        sync.RWMutex
	snapshots map[string][]byte
}

// NewMemoryStorage creates an empty in-memory session storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{snapshots: make(map[string][]byte)}
}

func (m *MemoryStorage) Save(_ context.Context, session *Session) error {
	data, err := EncodeSnapshot(session)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshots[session.ID] = data
	return nil
}

func (m *MemoryStorage) Load(_ context.Context, sessionID string) (*Session, error) {
	m.mu.RLock()
	raw, ok := m.snapshots[sessionID]
	m.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	return DecodeSnapshot(sessionID, raw), nil
}

func (m *MemoryStorage) Delete(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.snapshots, sessionID)
	return nil
}
