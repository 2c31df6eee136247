package account

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/contactbook/internal/domain"
)

type accountAPI interface {
	Login(ctx context.Context, email, password string) (domain.Credentials, error)
	Register(ctx context.Context, name, email, password string) error
	Logout(ctx context.Context) error
}

type sessionManager interface {
	Replace(token string, user domain.User) error
	SignOut(reason string)
	SignedIn() bool
	User() domain.User
}

type tokenStore interface {
	Save(token string, user domain.User) error
	Remove() error
}

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 8

// Service provides sign-in, registration and sign-out.
type Service struct {
	api     accountAPI
	session sessionManager
	tokens  tokenStore
	log     *slog.Logger
}

// NewService creates a new account service.
func NewService(
	log *slog.Logger,
	api accountAPI,
	session sessionManager,
	tokens tokenStore,
) *Service {
	return &Service{
		api:     api,
		session: session,
		tokens:  tokens,
		log:     log.With("service", "account"),
	}
}
