package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// ErrNotFound is returned when no session exists for the given id,
// whether it never existed, was destroyed, or expired.
var ErrNotFound = errors.New("session not found")

// Identity is the server-side record behind a session cookie. The role
// here is authoritative; clients never supply it on protected requests.
type Identity struct {
	UserID    int    `json:"user_id"`
	Role      string `json:"role"`
	PatientID *int   `json:"patient_id"`
	DoctorID  *int   `json:"doctor_id"`
}

// Manager creates, resolves and destroys sessions
type Manager interface {
	Create(ctx context.Context, identity Identity) (string, error)
	Get(ctx context.Context, sessionID string) (*Identity, error)
	Destroy(ctx context.Context, sessionID string) error
}

// Store is a Redis-backed Manager. Session ids are opaque UUIDs issued
// fresh on every Create; records expire after the inactivity window,
// refreshed on each Get.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewStore creates a new Store
func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

func sessionKey(id string) string {
	return "session:" + id
}

// Create stores a new session record and returns its id
func (s *Store) Create(ctx context.Context, identity Identity) (string, error) {
	payload, err := json.Marshal(identity)
	if err != nil {
		return "", fmt.Errorf("failed to encode session identity: %w", err)
	}
	id := uuid.NewString()
	if err := s.rdb.Set(ctx, sessionKey(id), payload, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}
	return id, nil
}

// Get resolves a session id to its identity and refreshes the
// inactivity window.
func (s *Store) Get(ctx context.Context, sessionID string) (*Identity, error) {
	val, err := s.rdb.Get(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	identity := &Identity{}
	if err := json.Unmarshal([]byte(val), identity); err != nil {
		return nil, fmt.Errorf("failed to decode session identity: %w", err)
	}

	if err := s.rdb.Expire(ctx, sessionKey(sessionID), s.ttl).Err(); err != nil {
		return nil, fmt.Errorf("failed to refresh session expiry: %w", err)
	}
	return identity, nil
}

// Destroy removes a session record. Destroying a session that does not
// exist is not an error.
func (s *Store) Destroy(ctx context.Context, sessionID string) error {
	if err := s.rdb.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}
	return nil
}
