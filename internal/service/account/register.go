package account

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Register creates an account. Validation failures never reach the backend.
// The new user is not signed in.
func (s *Service) Register(ctx context.Context, input RegisterInput) error {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.api.Register(ctx, input.Name, input.Email, input.Password); err != nil {
		return fmt.Errorf("account.Register: %w", err)
	}

	s.log.InfoContext(ctx, "user registered", slog.String("email", input.Email))
	return nil
}
