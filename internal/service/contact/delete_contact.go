package contact

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/contactbook/internal/domain"
)

// DeleteContact permanently removes a contact. The activity records the
// name the contact had before deletion.
func (s *Service) DeleteContact(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}

	current, err := s.findLocal(id)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}

	epoch := s.session.Epoch()
	if err := s.api.DeleteContact(ctx, id); err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}

	activity := domain.NewActivity(domain.ActivityActionDeleted, current.Name, "", s.now())
	err = s.commit(ctx, epoch, activity, func() {
		s.contacts.RemoveWhere(func(c domain.Contact) bool { return c.ID == id })
	})
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}

	s.log.InfoContext(ctx, "contact deleted",
		slog.String("contact_id", id),
		slog.String("name", current.Name),
	)

	return nil
}
