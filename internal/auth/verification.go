package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	codeTTL        = 10 * time.Minute
	resendCooldown = 60 * time.Second
)

var (
	ErrCodeMismatch  = errors.New("verification code is incorrect or expired")
	ErrResendTooSoon = errors.New("verification code was sent recently, wait before resending")
)

// CodeStore holds pending verification codes keyed by user id.
type CodeStore interface {
	Put(ctx context.Context, userID, code string, ttl time.Duration) error
	Get(ctx context.Context, userID string) (string, error)
	Delete(ctx context.Context, userID string) error
	// Throttle returns false if a code was issued within the cooldown window.
	Throttle(ctx context.Context, userID string, cooldown time.Duration) (bool, error)
}

// CodeSender delivers a verification code to the user (email in production).
type CodeSender interface {
	Send(ctx context.Context, email, code string) error
}

// GenerateCode returns a random 6-digit code.
func GenerateCode() (string, error) {
	var b [3]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	n := int(b[0])<<16 | int(b[1])<<8 | int(b[2])
	return fmt.Sprintf("%06d", n%1000000), nil
}

// --------------------------------------------------
// Redis-backed store
// --------------------------------------------------
type RedisCodeStore struct {
	client *redis.Client
}

func NewRedisCodeStore(client *redis.Client) *RedisCodeStore {
	return &RedisCodeStore{client: client}
}

func (s *RedisCodeStore) Put(ctx context.Context, userID, code string, ttl time.Duration) error {
	return s.client.Set(ctx, "verify:"+userID, code, ttl).Err()
}

func (s *RedisCodeStore) Get(ctx context.Context, userID string) (string, error) {
	code, err := s.client.Get(ctx, "verify:"+userID).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return code, err
}

func (s *RedisCodeStore) Delete(ctx context.Context, userID string) error {
	return s.client.Del(ctx, "verify:"+userID).Err()
}

func (s *RedisCodeStore) Throttle(ctx context.Context, userID string, cooldown time.Duration) (bool, error) {
	return s.client.SetNX(ctx, "verify-throttle:"+userID, "1", cooldown).Result()
}

// --------------------------------------------------
// In-memory store (tests, local dev without redis)
// --------------------------------------------------
type memoryCode struct {
	code      string
	expiresAt time.Time
}

type InMemoryCodeStore struct {
	mu        sync.Mutex
	codes     map[string]memoryCode
	throttles map[string]time.Time
}

func NewInMemoryCodeStore() *InMemoryCodeStore {
	return &InMemoryCodeStore{
		codes:     make(map[string]memoryCode),
		throttles: make(map[string]time.Time),
	}
}

func (s *InMemoryCodeStore) Put(ctx context.Context, userID, code string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.codes[userID] = memoryCode{code: code, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (s *InMemoryCodeStore) Get(ctx context.Context, userID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.codes[userID]
	if !ok || time.Now().After(entry.expiresAt) {
		return "", nil
	}
	return entry.code, nil
}

func (s *InMemoryCodeStore) Delete(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.codes, userID)
	return nil
}

func (s *InMemoryCodeStore) Throttle(ctx context.Context, userID string, cooldown time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if until, ok := s.throttles[userID]; ok && time.Now().Before(until) {
		return false, nil
	}
	s.throttles[userID] = time.Now().Add(cooldown)
	return true, nil
}

// --------------------------------------------------
// Log sender (stands in for the email service locally)
// --------------------------------------------------
type LogCodeSender struct{}

func (LogCodeSender) Send(ctx context.Context, email, code string) error {
	log.Printf("verification code for %s: %s", email, code)
	return nil
}
