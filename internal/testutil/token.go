package testutil

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var signingKey = []byte("uniswap-test-key")

// MintToken returns an HS256 JWT for userID expiring at exp.
func MintToken(t testing.TB, userID int64, exp time.Time) string {
	t.Helper()
	return sign(t, jwt.MapClaims{
		"sub": userID,
		"exp": jwt.NewNumericDate(exp),
	})
}

// MintTokenWithoutExp returns a well-formed JWT that has no exp claim.
func MintTokenWithoutExp(t testing.TB, userID int64) string {
	t.Helper()
	return sign(t, jwt.MapClaims{"sub": userID})
}

func sign(t testing.TB, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(signingKey)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

// MemoryTokens is an in-memory token store for API client tests.
type MemoryTokens struct {
	mu     sync.Mutex
	token  string
	purged int
}

func NewMemoryTokens(token string) *MemoryTokens {
	return &MemoryTokens{token: token}
}

func (m *MemoryTokens) Token(context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

func (m *MemoryTokens) Purge(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	m.purged++
	return nil
}

func (m *MemoryTokens) Set(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
}

// Purged reports how many times Purge was called.
func (m *MemoryTokens) Purged() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.purged
}
