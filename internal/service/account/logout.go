package account

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/contactbook/internal/auth"
)

// Logout tells the backend to drop the token, then always clears the local
// session and the stored credential. A backend failure is only logged.
func (s *Service) Logout(ctx context.Context) error {
	user := s.session.User()

	if s.session.SignedIn() {
		if err := s.api.Logout(ctx); err != nil {
			s.log.WarnContext(ctx, "backend logout failed", slog.String("error", err.Error()))
		}
	}

	s.session.SignOut(auth.ReasonLogout)

	if err := s.tokens.Remove(); err != nil {
		return fmt.Errorf("account.Logout: %w", err)
	}

	s.log.InfoContext(ctx, "user logged out", slog.String("user_id", user.ID))
	return nil
}
