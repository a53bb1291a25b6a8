package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{"sub": "u1", "exp": exp.Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestSessionRegistryCreateAndGet(t *testing.T) {
	registry := NewSessionRegistry(time.Hour)
	created := registry.Create("opaque-token", "alice")
	if created.ID == "" {
		t.Fatalf("session must get an id")
	}

	got, ok := registry.Get(created.ID)
	if !ok {
		t.Fatalf("session not found")
	}
	if got.Token != "opaque-token" || got.Username != "alice" {
		t.Fatalf("unexpected session: %+v", got)
	}
}

func TestSessionRegistryDelete(t *testing.T) {
	registry := NewSessionRegistry(time.Hour)
	created := registry.Create("tok", "alice")
	registry.Delete(created.ID)
	if _, ok := registry.Get(created.ID); ok {
		t.Fatalf("deleted session still retrievable")
	}
}

func TestSessionRegistryEvictsPastTTL(t *testing.T) {
	registry := NewSessionRegistry(-time.Minute)
	created := registry.Create("tok", "alice")
	if _, ok := registry.Get(created.ID); ok {
		t.Fatalf("expired session must be evicted")
	}
}

func TestSessionRegistryEvictsOnExpiredJWT(t *testing.T) {
	registry := NewSessionRegistry(time.Hour)
	created := registry.Create(signedToken(t, time.Now().Add(-time.Minute)), "alice")
	if _, ok := registry.Get(created.ID); ok {
		t.Fatalf("session with expired bearer token must be evicted")
	}
}

func TestSessionRegistryEvictionHookFires(t *testing.T) {
	registry := NewSessionRegistry(time.Hour)
	var evicted []string
	registry.OnEvict(func(id string) { evicted = append(evicted, id) })

	created := registry.Create("tok", "alice")
	registry.Delete(created.ID)
	if len(evicted) != 1 || evicted[0] != created.ID {
		t.Fatalf("hook not fired on delete: %v", evicted)
	}

	expired := NewSessionRegistry(-time.Minute)
	expired.OnEvict(func(id string) { evicted = append(evicted, id) })
	stale := expired.Create("tok", "bob")
	if _, ok := expired.Get(stale.ID); ok {
		t.Fatalf("expired session must be evicted")
	}
	if len(evicted) != 2 || evicted[1] != stale.ID {
		t.Fatalf("hook not fired on expiry eviction: %v", evicted)
	}
}

func TestTokenExpired(t *testing.T) {
	if TokenExpired(signedToken(t, time.Now().Add(time.Hour))) {
		t.Fatalf("live token reported expired")
	}
	if !TokenExpired(signedToken(t, time.Now().Add(-time.Hour))) {
		t.Fatalf("expired token not detected")
	}
	if TokenExpired("not-a-jwt") {
		t.Fatalf("opaque token must pass the expiry check")
	}
}
