package contact

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/contactbook/internal/domain"
)

// CreateContact creates a contact on the backend and appends the server's
// record to the collection.
func (s *Service) CreateContact(ctx context.Context, input CreateContactInput) (domain.Contact, error) {
	if err := input.Validate(); err != nil {
		return domain.Contact{}, err
	}

	fields := input.fields()
	epoch := s.session.Epoch()

	created, err := s.api.CreateContact(ctx, fields)
	if err != nil {
		return domain.Contact{}, fmt.Errorf("create contact: %w", err)
	}

	name := created.Name
	if name == "" {
		name = fields.Name
	}
	activity := domain.NewActivity(domain.ActivityActionAdded, name, "", s.now())

	err = s.commit(ctx, epoch, activity, func() {
		// A reload that raced this request may already hold the record.
		if !s.contacts.Any(func(c domain.Contact) bool { return c.ID == created.ID }) {
			s.contacts.Append(created)
		}
	})
	if err != nil {
		return domain.Contact{}, fmt.Errorf("create contact: %w", err)
	}

	s.log.InfoContext(ctx, "contact created",
		slog.String("contact_id", created.ID),
		slog.String("name", name),
	)

	return created.Clone(), nil
}
