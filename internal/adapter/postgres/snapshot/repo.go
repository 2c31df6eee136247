// Package snapshot stores the last known-good contact list and activity log
// per signed-in user so the client can show data when the backend is down.
package snapshot

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/contactbook/internal/adapter/postgres"
	"github.com/heartmarshall/contactbook/internal/domain"
)

const (
	contactsTable   = "snapshot_contacts"
	activitiesTable = "snapshot_activities"

	// insertBatch keeps multi-row inserts well under the 65535 parameter limit.
	insertBatch = 500
)

var (
	contactColumns = []string{
		"owner", "position", "id", "name", "email", "phone",
		"categories", "favorite", "status", "created_at", "avatar",
	}
	activityColumns = []string{
		"owner", "seq", "action", "contact_name", "action_type", "occurred_at",
	}
)

// Repo provides snapshot persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	tx   *postgres.TxManager
}

// New creates a new snapshot repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool, tx: postgres.NewTxManager(pool)}
}

// SaveContacts replaces the owner's stored contacts in one transaction.
// Positional order is kept in the position column.
func (r *Repo) SaveContacts(ctx context.Context, owner string, contacts []domain.Contact) error {
	err := r.tx.RunLocked(ctx, lockKey(owner), func(ctx context.Context) error {
		del := postgres.Builder().Delete(contactsTable).Where(squirrel.Eq{"owner": owner})
		if _, err := postgres.Exec(ctx, r.pool, del); err != nil {
			return err
		}

		for start := 0; start < len(contacts); start += insertBatch {
			end := min(start+insertBatch, len(contacts))
			ins := postgres.Builder().Insert(contactsTable).Columns(contactColumns...)
			for i, c := range contacts[start:end] {
				ins = ins.Values(
					owner, start+i, c.ID, c.Name, c.Email, c.Phone,
					categoriesOrEmpty(c.Categories), c.Favorite, string(c.EffectiveStatus()),
					timeOrNil(c.CreatedAt), c.Avatar,
				)
			}
			if _, err := postgres.Exec(ctx, r.pool, ins); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return postgres.MapError(err, contactsTable, owner)
	}
	return nil
}

// LoadContacts returns the owner's stored contacts in saved order.
// An owner without a snapshot gets an empty slice.
func (r *Repo) LoadContacts(ctx context.Context, owner string) ([]domain.Contact, error) {
	stmt := postgres.Builder().
		Select(contactColumns[2:]...).
		From(contactsTable).
		Where(squirrel.Eq{"owner": owner}).
		OrderBy("position")

	rows, err := postgres.Query(ctx, r.pool, stmt)
	if err != nil {
		return nil, postgres.MapError(err, contactsTable, owner)
	}

	contacts, err := pgx.CollectRows(rows, scanContact)
	if err != nil {
		return nil, postgres.MapError(err, contactsTable, owner)
	}
	return contacts, nil
}

// SaveActivities replaces the owner's stored activity log in one transaction.
func (r *Repo) SaveActivities(ctx context.Context, owner string, activities []domain.UserActivity) error {
	err := r.tx.RunLocked(ctx, lockKey(owner), func(ctx context.Context) error {
		del := postgres.Builder().Delete(activitiesTable).Where(squirrel.Eq{"owner": owner})
		if _, err := postgres.Exec(ctx, r.pool, del); err != nil {
			return err
		}

		for start := 0; start < len(activities); start += insertBatch {
			end := min(start+insertBatch, len(activities))
			ins := postgres.Builder().Insert(activitiesTable).Columns(activityColumns...)
			for i, a := range activities[start:end] {
				ins = ins.Values(owner, start+i, string(a.Action), a.ContactName, a.ActionType, a.Timestamp)
			}
			if _, err := postgres.Exec(ctx, r.pool, ins); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return postgres.MapError(err, activitiesTable, owner)
	}
	return nil
}

// LoadActivities returns the owner's stored activity log oldest first.
func (r *Repo) LoadActivities(ctx context.Context, owner string) ([]domain.UserActivity, error) {
	stmt := postgres.Builder().
		Select(activityColumns[2:]...).
		From(activitiesTable).
		Where(squirrel.Eq{"owner": owner}).
		OrderBy("seq")

	rows, err := postgres.Query(ctx, r.pool, stmt)
	if err != nil {
		return nil, postgres.MapError(err, activitiesTable, owner)
	}

	activities, err := pgx.CollectRows(rows, scanActivity)
	if err != nil {
		return nil, postgres.MapError(err, activitiesTable, owner)
	}
	return activities, nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanContact(row pgx.CollectableRow) (domain.Contact, error) {
	var (
		c         domain.Contact
		status    string
		createdAt *time.Time
	)
	if err := row.Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone,
		&c.Categories, &c.Favorite, &status, &createdAt, &c.Avatar,
	); err != nil {
		return domain.Contact{}, fmt.Errorf("scan contact: %w", err)
	}

	c.Status = domain.ContactStatus(status)
	if createdAt != nil {
		c.CreatedAt = createdAt.UTC()
	}
	if c.Categories == nil {
		c.Categories = []string{}
	}
	return c, nil
}

func scanActivity(row pgx.CollectableRow) (domain.UserActivity, error) {
	var (
		a      domain.UserActivity
		action string
	)
	if err := row.Scan(&action, &a.ContactName, &a.ActionType, &a.Timestamp); err != nil {
		return domain.UserActivity{}, fmt.Errorf("scan activity: %w", err)
	}
	a.Action = domain.ActivityAction(action)
	a.Timestamp = a.Timestamp.UTC()
	return a, nil
}

func categoriesOrEmpty(categories []string) []string {
	if categories == nil {
		return []string{}
	}
	return categories
}

func timeOrNil(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func lockKey(owner string) string {
	return "snapshot:" + owner
}
