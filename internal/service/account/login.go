package account

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/contactbook/internal/domain"
)

// Login signs in with email and password, installs the credential in the
// session and persists it for later invocations.
func (s *Service) Login(ctx context.Context, input LoginInput) (domain.User, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if err := input.Validate(); err != nil {
		return domain.User{}, err
	}

	creds, err := s.api.Login(ctx, input.Email, input.Password)
	if err != nil {
		return domain.User{}, fmt.Errorf("account.Login: %w", err)
	}

	if err := s.session.Replace(creds.AccessToken, creds.User); err != nil {
		return domain.User{}, fmt.Errorf("account.Login: %w", err)
	}
	if err := s.tokens.Save(creds.AccessToken, creds.User); err != nil {
		return domain.User{}, fmt.Errorf("account.Login save token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in",
		slog.String("user_id", creds.User.ID),
		slog.String("email", creds.User.Email),
	)

	return creds.User, nil
}
