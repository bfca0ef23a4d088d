package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Bios-Marcel/bookadoctor/data"
)

// State is the container the rest of the application reads the logged in
// user from.
type State interface {
	Set(ctx context.Context, session data.Session) error
	Get(ctx context.Context, token string) (*data.Session, error)
	Delete(ctx context.Context, token string) error
}

type MemoryState struct {
	mu       sync.RWMutex
	sessions map[string]data.Session
}

func NewMemoryState() *MemoryState {
	return &MemoryState{sessions: make(map[string]data.Session)}
}

func (state *MemoryState) Set(_ context.Context, session data.Session) error {
	state.mu.Lock()
	defer state.mu.Unlock()
	state.sessions[session.Token] = session
	return nil
}

func (state *MemoryState) Get(_ context.Context, token string) (*data.Session, error) {
	state.mu.RLock()
	defer state.mu.RUnlock()
	session, ok := state.sessions[token]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return &session, nil
}

func (state *MemoryState) Delete(_ context.Context, token string) error {
	state.mu.Lock()
	defer state.mu.Unlock()
	delete(state.sessions, token)
	return nil
}

// RedisState shares sessions between several instances of the front end.
type RedisState struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisState(client *redis.Client, ttl time.Duration) *RedisState {
	return &RedisState{client: client, ttl: ttl}
}

func sessionKey(token string) string {
	return fmt.Sprintf("session:%s", token)
}

func (state *RedisState) Set(ctx context.Context, session data.Session) error {
	rawSession, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("cant serialize session: %w", err)
	}
	return state.client.Set(ctx, sessionKey(session.Token), rawSession, state.ttl).Err()
}

func (state *RedisState) Get(ctx context.Context, token string) (*data.Session, error) {
	rawSession, err := state.client.Get(ctx, sessionKey(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var session data.Session
	if err := json.Unmarshal(rawSession, &session); err != nil {
		return nil, fmt.Errorf("cant parse session: %w", err)
	}
	return &session, nil
}

func (state *RedisState) Delete(ctx context.Context, token string) error {
	return state.client.Del(ctx, sessionKey(token)).Err()
}
