// Package session implements the server-side session store backing the
// opaque cookie auth gate. Sessions live in Redis with a sliding TTL and the
// cookie value is an HMAC-signed random token.
package session

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hosteldesk/complaint-service/internal/models"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidToken    = errors.New("invalid session token")
)

const keyPrefix = "session:"

// Data is what a session carries: the authenticated identity.
type Data struct {
	UserID uint            `json:"user_id"`
	RegNo  string          `json:"regno"`
	Role   models.UserRole `json:"role"`
}

// Store is the Redis-backed session store.
type Store struct {
	client *redis.Client
	secret []byte
	ttl    time.Duration
}

func NewStore(client *redis.Client, secret string, ttl time.Duration) *Store {
	return &Store{
		client: client,
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Create stores a new session and returns the signed cookie value.
func (s *Store) Create(ctx context.Context, data Data) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("failed to marshal session data: %w", err)
	}

	if err := s.client.Set(ctx, keyPrefix+token, payload, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}

	return token + "." + s.sign(token), nil
}

// Get resolves a signed cookie value to session data and refreshes the TTL
// (sliding expiry). Tampered or unknown tokens are reported as not found so
// callers treat both the same way: no session.
func (s *Store) Get(ctx context.Context, cookie string) (*Data, error) {
	token, err := s.verify(cookie)
	if err != nil {
		return nil, err
	}

	payload, err := s.client.Get(ctx, keyPrefix+token).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var data Data
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session data: %w", err)
	}

	// Sliding expiry: any authenticated request pushes the window out.
	if err := s.client.Expire(ctx, keyPrefix+token, s.ttl).Err(); err != nil {
		return nil, fmt.Errorf("failed to refresh session: %w", err)
	}

	return &data, nil
}

// Destroy removes the session. Unknown or malformed cookies are a no-op;
// logout must succeed regardless.
func (s *Store) Destroy(ctx context.Context, cookie string) error {
	token, err := s.verify(cookie)
	if err != nil {
		return nil
	}
	if err := s.client.Del(ctx, keyPrefix+token).Err(); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}
	return nil
}

// TTL reports the configured session lifetime, used for the cookie MaxAge.
func (s *Store) TTL() time.Duration {
	return s.ttl
}

func (s *Store) sign(token string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(token))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// verify splits a cookie value into token and signature and checks the HMAC.
func (s *Store) verify(cookie string) (string, error) {
	token, signature, found := strings.Cut(cookie, ".")
	if !found || token == "" {
		return "", ErrInvalidToken
	}
	if !hmac.Equal([]byte(signature), []byte(s.sign(token))) {
		return "", ErrInvalidToken
	}
	return token, nil
}

func newToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
