package contact

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/contactbook/internal/domain"
)

// ToggleFavorite flips a contact's favorite flag and returns the new value.
func (s *Service) ToggleFavorite(ctx context.Context, id string) (bool, error) {
	if err := validateID(id); err != nil {
		return false, err
	}

	current, err := s.findLocal(id)
	if err != nil {
		return false, fmt.Errorf("toggle favorite: %w", err)
	}

	next := !current.Favorite
	epoch := s.session.Epoch()
	if err := s.api.ToggleFavorite(ctx, id); err != nil {
		return false, fmt.Errorf("toggle favorite: %w", err)
	}

	actionType := domain.ActionTypeUnfavorite
	if next {
		actionType = domain.ActionTypeFavorite
	}
	activity := domain.NewActivity(domain.ActivityActionToggleFavorite, current.Name, actionType, s.now())

	err = s.commit(ctx, epoch, activity, func() {
		s.contacts.Replace(
			func(c domain.Contact) bool { return c.ID == id },
			func(c domain.Contact) domain.Contact {
				c.Favorite = next
				return c
			},
		)
	})
	if err != nil {
		return false, fmt.Errorf("toggle favorite: %w", err)
	}

	s.log.InfoContext(ctx, "favorite toggled",
		slog.String("contact_id", id),
		slog.Bool("favorite", next),
	)

	return next, nil
}
