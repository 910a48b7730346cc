package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"glowstudio/models"

	"github.com/go-redis/redis/v8"
)

const sessionKeyPrefix = "booking:draft:"

// RedisSessionStore keeps booking drafts as JSON blobs with a TTL, so an
// abandoned draft expires on its own.
type RedisSessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{Client: client, TTL: ttl}
}

func (s *RedisSessionStore) Get(clientID string) (*models.BookingSession, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	data, err := s.Client.Get(ctx, sessionKeyPrefix+clientID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load booking session: %w", err)
	}

	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}

func (s *RedisSessionStore) Put(session *models.BookingSession) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := s.Client.Set(ctx, sessionKeyPrefix+session.ClientID, data, s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Delete(clientID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := s.Client.Del(ctx, sessionKeyPrefix+clientID).Err(); err != nil {
		return fmt.Errorf("failed to delete booking session: %w", err)
	}
	return nil
}

// MemorySessionStore is the in-process store used by the standalone demo
// binary and the test suites.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]models.BookingSession
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]models.BookingSession)}
}

func (s *MemorySessionStore) Get(clientID string) (*models.BookingSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[clientID]
	if !ok {
		return nil, nil
	}
	return &session, nil
}

func (s *MemorySessionStore) Put(session *models.BookingSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ClientID] = *session
	return nil
}

func (s *MemorySessionStore) Delete(clientID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, clientID)
	return nil
}
