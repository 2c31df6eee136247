package contact

import (
	"context"
	"fmt"

	"github.com/heartmarshall/contactbook/internal/domain"
)

// GetContact fetches the backend's current record for id. Local state is not
// changed.
func (s *Service) GetContact(ctx context.Context, id string) (domain.Contact, error) {
	if err := validateID(id); err != nil {
		return domain.Contact{}, err
	}

	c, err := s.api.GetContact(ctx, id)
	if err != nil {
		return domain.Contact{}, fmt.Errorf("get contact: %w", err)
	}
	return c, nil
}
