package contact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/contactbook/internal/domain"
	"github.com/heartmarshall/contactbook/pkg/collection"
)

// ErrUsingSnapshot marks a Load that fell back to the stored snapshot.
var ErrUsingSnapshot = errors.New("using snapshot")

// Load fetches contacts and the activity log concurrently and replaces both
// only when both succeed. When the backend is unreachable and a snapshot is
// available, the snapshot is restored and the unreachable error is still
// returned so callers can flag the data as offline.
func (s *Service) Load(ctx context.Context) error {
	epoch := s.session.Epoch()

	var (
		contacts   []domain.Contact
		activities []domain.UserActivity
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		contacts, err = s.api.ListContacts(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		activities, err = s.api.ListActivities(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		if errors.Is(err, domain.ErrUnreachable) && s.restore(ctx, epoch) {
			return fmt.Errorf("load: %w: %w", ErrUsingSnapshot, err)
		}
		return fmt.Errorf("load: %w", err)
	}

	s.mu.Lock()
	if s.session.Epoch() != epoch {
		s.mu.Unlock()
		return fmt.Errorf("load: %w", domain.ErrStaleResponse)
	}
	s.contacts = collection.From(contacts)
	s.activities = collection.From(activities)
	s.version++
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(ctx, snap)

	s.log.InfoContext(ctx, "contacts loaded",
		slog.Int("contacts", len(contacts)),
		slog.Int("activities", len(activities)),
	)

	return nil
}

// restore replaces local state with the stored snapshot. It reports whether
// a snapshot was applied.
func (s *Service) restore(ctx context.Context, epoch uint64) bool {
	if s.snapshots == nil {
		return false
	}
	owner := s.session.Owner()
	if owner == "" {
		return false
	}

	contacts, err := s.snapshots.LoadContacts(ctx, owner)
	if err != nil {
		s.log.WarnContext(ctx, "snapshot load failed", slog.String("error", err.Error()))
		return false
	}
	activities, err := s.snapshots.LoadActivities(ctx, owner)
	if err != nil {
		s.log.WarnContext(ctx, "snapshot load failed", slog.String("error", err.Error()))
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session.Epoch() != epoch {
		return false
	}
	s.contacts = collection.From(contacts)
	s.activities = collection.From(activities)

	s.log.InfoContext(ctx, "restored contacts from snapshot",
		slog.Int("contacts", len(contacts)),
		slog.Int("activities", len(activities)),
	)
	return true
}
