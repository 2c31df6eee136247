package contact

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/heartmarshall/contactbook/internal/domain"
	"github.com/heartmarshall/contactbook/pkg/collection"
)

type contactAPI interface {
	ListContacts(ctx context.Context) ([]domain.Contact, error)
	ListActivities(ctx context.Context) ([]domain.UserActivity, error)
	GetContact(ctx context.Context, id string) (domain.Contact, error)
	CreateContact(ctx context.Context, fields domain.ContactFields) (domain.Contact, error)
	UpdateContact(ctx context.Context, id string, fields domain.ContactFields) (*domain.Contact, error)
	DeleteContact(ctx context.Context, id string) error
	ToggleFavorite(ctx context.Context, id string) error
	SetStatus(ctx context.Context, id string, status domain.ContactStatus) error
}

type snapshotStore interface {
	SaveContacts(ctx context.Context, owner string, contacts []domain.Contact) error
	LoadContacts(ctx context.Context, owner string) ([]domain.Contact, error)
	SaveActivities(ctx context.Context, owner string, activities []domain.UserActivity) error
	LoadActivities(ctx context.Context, owner string) ([]domain.UserActivity, error)
}

type sessionState interface {
	Epoch() uint64
	Owner() string
}

// Service keeps one session's contact collection and activity log in step
// with the backend. Local state changes only after the backend confirms a
// request, and each confirmed mutation appends exactly one activity.
type Service struct {
	api       contactAPI
	snapshots snapshotStore
	session   sessionState
	now       func() time.Time
	log       *slog.Logger

	mu         sync.Mutex
	contacts   *collection.Collection[domain.Contact]
	activities *collection.Collection[domain.UserActivity]
	version    uint64

	persistMu sync.Mutex
	persisted uint64
}

// NewService creates a contact sync service. snapshots may be nil to run
// without a local snapshot store.
func NewService(
	log *slog.Logger,
	api contactAPI,
	session sessionState,
	snapshots snapshotStore,
) *Service {
	return &Service{
		api:        api,
		snapshots:  snapshots,
		session:    session,
		now:        time.Now,
		log:        log.With("service", "contact"),
		contacts:   collection.New[domain.Contact](),
		activities: collection.New[domain.UserActivity](),
	}
}

// Contacts returns a copy of the last known-good collection.
func (s *Service) Contacts() *collection.Collection[domain.Contact] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.contacts.Map(domain.Contact.Clone)
}

// Activities returns a copy of the activity log in append order.
func (s *Service) Activities() *collection.Collection[domain.UserActivity] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activities.Clone()
}

// findLocal returns the local record for id.
func (s *Service) findLocal(id string) (domain.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.contacts.Find(func(c domain.Contact) bool { return c.ID == id })
	if !ok {
		return domain.Contact{}, fmt.Errorf("contact %s: %w", id, domain.ErrNotFound)
	}
	return c.Clone(), nil
}

// commit applies a confirmed mutation and its activity in one critical
// section. A response that belongs to an earlier session is discarded.
func (s *Service) commit(ctx context.Context, epoch uint64, activity domain.UserActivity, mutate func()) error {
	s.mu.Lock()
	if s.session.Epoch() != epoch {
		s.mu.Unlock()
		s.log.WarnContext(ctx, "discarding stale response",
			slog.String("action", activity.Action.String()),
			slog.String("contact_name", activity.ContactName),
		)
		return domain.ErrStaleResponse
	}
	mutate()
	s.activities.Append(activity)
	s.version++
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(ctx, snap)
	return nil
}

type stateSnapshot struct {
	version    uint64
	contacts   []domain.Contact
	activities []domain.UserActivity
}

func (s *Service) snapshotLocked() stateSnapshot {
	return stateSnapshot{
		version:    s.version,
		contacts:   s.contacts.Items(),
		activities: s.activities.Items(),
	}
}

// persist writes state through to the snapshot store. Failures are logged
// and never surfaced. Older versions are skipped when a newer one has
// already been written.
func (s *Service) persist(ctx context.Context, snap stateSnapshot) {
	if s.snapshots == nil {
		return
	}
	owner := s.session.Owner()
	if owner == "" {
		return
	}

	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	if snap.version <= s.persisted {
		return
	}
	if err := s.snapshots.SaveContacts(ctx, owner, snap.contacts); err != nil {
		s.log.WarnContext(ctx, "snapshot contacts failed", slog.String("error", err.Error()))
		return
	}
	if err := s.snapshots.SaveActivities(ctx, owner, snap.activities); err != nil {
		s.log.WarnContext(ctx, "snapshot activities failed", slog.String("error", err.Error()))
		return
	}
	s.persisted = snap.version
}

// fieldsOf extracts the writable fields sent to the backend.
func fieldsOf(c domain.Contact) domain.ContactFields {
	return domain.ContactFields{
		Name:       c.Name,
		Email:      c.Email,
		Phone:      c.PhoneValue(),
		Categories: domain.NormalizeCategories(c.Categories),
		Avatar:     c.Avatar,
	}
}
