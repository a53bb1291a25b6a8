package utils

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

// BrowserSession binds a browser cookie to the bearer token issued by the
// remote auth service.
type BrowserSession struct {
	ID        string
	Token     string
	Username  string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// SessionRegistry is the in-memory store of active browser sessions, keyed
// by an opaque UUID handed to the browser as a cookie.
type SessionRegistry struct {
	mu       sync.RWMutex
	sessions map[string]*BrowserSession
	ttl      time.Duration
	onEvict  func(id string)
}

func NewSessionRegistry(ttl time.Duration) *SessionRegistry {
	return &SessionRegistry{
		sessions: make(map[string]*BrowserSession),
		ttl:      ttl,
	}
}

// OnEvict registers a hook invoked with the session ID whenever a session
// leaves the registry, whether by explicit delete or expiry. State keyed by
// the session ID elsewhere must be released through this hook or it leaks.
func (r *SessionRegistry) OnEvict(fn func(id string)) {
	r.onEvict = fn
}

// Create registers a new session and returns its ID.
func (r *SessionRegistry) Create(token, username string) *BrowserSession {
	session := &BrowserSession{
		ID:        uuid.NewString(),
		Token:     token,
		Username:  username,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(r.ttl),
	}
	r.mu.Lock()
	r.sessions[session.ID] = session
	r.mu.Unlock()
	return session
}

// Get returns the session for an ID if it is still usable. Expired sessions
// (registry TTL or bearer-token expiry) are evicted.
func (r *SessionRegistry) Get(id string) (*BrowserSession, bool) {
	r.mu.RLock()
	session, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if time.Now().After(session.ExpiresAt) || TokenExpired(session.Token) {
		r.Delete(id)
		return nil, false
	}
	return session, true
}

// Delete removes a session and fires the eviction hook.
func (r *SessionRegistry) Delete(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
	if r.onEvict != nil {
		r.onEvict(id)
	}
}

// TokenExpired reports whether a bearer token is a JWT whose exp claim has
// passed. The signature is not checked here; verification is the remote
// API's job, this is only an early rejection so a dead session fails fast.
// Opaque non-JWT tokens always pass.
func TokenExpired(token string) bool {
	parser := jwt.Parser{}
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return false
	}
	return time.Now().After(time.Unix(int64(exp), 0))
}
