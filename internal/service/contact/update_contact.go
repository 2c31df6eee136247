package contact

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/contactbook/internal/domain"
)

// UpdateContact merges the provided fields into the local record, sends the
// result to the backend and, once confirmed, stores the merged record. The
// response body only acknowledges the write: status, favorite and creation
// time never change through an update.
func (s *Service) UpdateContact(ctx context.Context, input UpdateContactInput) (domain.Contact, error) {
	if err := input.Validate(); err != nil {
		return domain.Contact{}, err
	}

	current, err := s.findLocal(input.ID)
	if err != nil {
		return domain.Contact{}, fmt.Errorf("update contact: %w", err)
	}

	merged := input.patch().Apply(current)
	merged.Categories = domain.NormalizeCategories(merged.Categories)
	epoch := s.session.Epoch()

	if _, err := s.api.UpdateContact(ctx, input.ID, fieldsOf(merged)); err != nil {
		return domain.Contact{}, fmt.Errorf("update contact: %w", err)
	}

	result := merged

	activity := domain.NewActivity(domain.ActivityActionUpdated, result.Name, "", s.now())
	err = s.commit(ctx, epoch, activity, func() {
		s.contacts.Replace(
			func(c domain.Contact) bool { return c.ID == input.ID },
			func(domain.Contact) domain.Contact { return result.Clone() },
		)
	})
	if err != nil {
		return domain.Contact{}, fmt.Errorf("update contact: %w", err)
	}

	s.log.InfoContext(ctx, "contact updated",
		slog.String("contact_id", input.ID),
		slog.String("name", result.Name),
	)

	return result, nil
}
