package session

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// PreferenceStore keeps layout preferences of a session across restarts
// of its workspace. The sidebar is open unless stored otherwise.
type PreferenceStore interface {
	SidebarOpen(ctx context.Context, id string) (bool, error)
	SetSidebarOpen(ctx context.Context, id string, open bool) error
	// Touch extends the lifetime of the preferences of an active session.
	Touch(ctx context.Context, id string) error
	// Forget drops the preferences of an evicted session.
	Forget(ctx context.Context, id string) error
}

type MemoryStore struct {
	mu     sync.Mutex
	closed map[string]bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{closed: map[string]bool{}}
}

func (s *MemoryStore) SidebarOpen(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.closed[id], nil
}

func (s *MemoryStore) SetSidebarOpen(ctx context.Context, id string, open bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if open {
		delete(s.closed, id)
	} else {
		s.closed[id] = true
	}
	return nil
}

func (s *MemoryStore) Touch(ctx context.Context, id string) error {
	return nil
}

func (s *MemoryStore) Forget(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.closed, id)
	return nil
}

func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.closed)
}

// RedisStore keeps preferences in redis, expiring with the session.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func sidebarKey(id string) string {
	return "console:session:" + id + ":sidebar"
}

func (s *RedisStore) SidebarOpen(ctx context.Context, id string) (bool, error) {
	v, err := s.client.GetEx(ctx, sidebarKey(id), s.ttl).Result()
	if errors.Is(err, redis.Nil) {
		return true, nil
	}
	if err != nil {
		return true, errors.Wrap(err, "reading sidebar preference")
	}
	return v != "closed", nil
}

func (s *RedisStore) SetSidebarOpen(ctx context.Context, id string, open bool) error {
	v := "open"
	if !open {
		v = "closed"
	}
	if err := s.client.Set(ctx, sidebarKey(id), v, s.ttl).Err(); err != nil {
		return errors.Wrap(err, "writing sidebar preference")
	}
	return nil
}

func (s *RedisStore) Touch(ctx context.Context, id string) error {
	if err := s.client.Expire(ctx, sidebarKey(id), s.ttl).Err(); err != nil {
		return errors.Wrap(err, "extending sidebar preference")
	}
	return nil
}

func (s *RedisStore) Forget(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, sidebarKey(id)).Err(); err != nil {
		return errors.Wrap(err, "deleting sidebar preference")
	}
	return nil
}
