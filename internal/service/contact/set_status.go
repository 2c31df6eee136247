package contact

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/contactbook/internal/domain"
)

// SetStatus moves a contact to another status.
func (s *Service) SetStatus(ctx context.Context, input SetStatusInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	current, err := s.findLocal(input.ID)
	if err != nil {
		return fmt.Errorf("set status: %w", err)
	}

	epoch := s.session.Epoch()
	if err := s.api.SetStatus(ctx, input.ID, input.Status); err != nil {
		return fmt.Errorf("set status: %w", err)
	}

	activity := domain.NewActivity(domain.ActivityActionSetStatus, current.Name, input.Status.String(), s.now())
	err = s.commit(ctx, epoch, activity, func() {
		s.contacts.Replace(
			func(c domain.Contact) bool { return c.ID == input.ID },
			func(c domain.Contact) domain.Contact {
				c.Status = input.Status
				return c
			},
		)
	})
	if err != nil {
		return fmt.Errorf("set status: %w", err)
	}

	s.log.InfoContext(ctx, "contact status changed",
		slog.String("contact_id", input.ID),
		slog.String("from", current.EffectiveStatus().String()),
		slog.String("to", input.Status.String()),
	)

	return nil
}
