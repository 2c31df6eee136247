package auth

import (
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/heartmarshall/contactbook/internal/domain"
)

// Sign-out reasons passed to OnSignOut hooks.
const (
	ReasonLogout   = "logout"
	ReasonExpired  = "expired"
	ReasonRejected = "rejected"
)

// Session holds the bearer credential and signed-in user for one client.
// Every sign-out or credential replacement bumps the epoch so callers can
// detect responses that belong to an earlier session.
type Session struct {
	mu        sync.RWMutex
	token     string
	user      domain.User
	subject   string
	expiresAt time.Time
	epoch     uint64
	hooks     []func(reason string)
	now       func() time.Time
}

// NewSession creates an empty (signed-out) session.
func NewSession() *Session {
	return &Session{now: time.Now}
}

// Claims are the fields read from the backend's access token.
type Claims struct {
	Subject   string
	ExpiresAt time.Time
}

// ParseClaims reads the subject and expiry from a JWT without verifying the
// signature. The signing key belongs to the backend.
func ParseClaims(token string) (Claims, error) {
	var rc jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &rc); err != nil {
		return Claims{}, fmt.Errorf("parse token: %w", err)
	}
	c := Claims{Subject: rc.Subject}
	if rc.ExpiresAt != nil {
		c.ExpiresAt = rc.ExpiresAt.Time
	}
	return c, nil
}

// Replace installs a new credential. A token that is not a JWT is accepted
// as an opaque bearer with no known expiry.
func (s *Session) Replace(token string, user domain.User) error {
	if token == "" {
		return domain.NewValidationError("token", "required")
	}

	var claims Claims
	if parsed, err := ParseClaims(token); err == nil {
		claims = parsed
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.user = user
	s.subject = claims.Subject
	s.expiresAt = claims.ExpiresAt
	s.epoch++
	return nil
}

// Token returns the bearer credential. It fails with ErrUnauthorized when no
// one is signed in and ErrSessionExpired once the token's exp has passed.
func (s *Session) Token() (string, error) {
	s.mu.RLock()
	token, exp := s.token, s.expiresAt
	s.mu.RUnlock()

	if token == "" {
		return "", domain.ErrUnauthorized
	}
	if !exp.IsZero() && !s.now().Before(exp) {
		return "", domain.ErrSessionExpired
	}
	return token, nil
}

// SignOut clears the credential and runs the sign-out hooks. Signing out an
// already empty session is a no-op.
func (s *Session) SignOut(reason string) {
	s.mu.Lock()
	if s.token == "" {
		s.mu.Unlock()
		return
	}
	s.token = ""
	s.user = domain.User{}
	s.subject = ""
	s.expiresAt = time.Time{}
	s.epoch++
	hooks := make([]func(string), len(s.hooks))
	copy(hooks, s.hooks)
	s.mu.Unlock()

	for _, fn := range hooks {
		fn(reason)
	}
}

// OnSignOut registers a hook that runs after every sign-out.
func (s *Session) OnSignOut(fn func(reason string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hooks = append(s.hooks, fn)
}

// Epoch identifies the current credential. It changes on every Replace and
// SignOut.
func (s *Session) Epoch() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.epoch
}

// User returns the signed-in user, or the zero User when signed out.
func (s *Session) User() domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Owner identifies the signed-in account for local storage. It prefers the
// user id and falls back to the token subject.
func (s *Session) Owner() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user.ID != "" {
		return s.user.ID
	}
	return s.subject
}

// ExpiresAt returns the token expiry, zero when unknown.
func (s *Session) ExpiresAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expiresAt
}

// SignedIn reports whether a credential is present, regardless of expiry.
func (s *Session) SignedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}
