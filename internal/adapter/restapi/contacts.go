package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/heartmarshall/contactbook/internal/domain"
)

func contactPath(id string) string {
	return "/api/contacts/" + url.PathEscape(id)
}

// ListContacts fetches the signed-in user's contacts in server order.
func (c *Client) ListContacts(ctx context.Context) ([]domain.Contact, error) {
	resp, err := c.do(ctx, request{method: http.MethodGet, path: "/api/contacts", authed: true})
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}

	var items []apiContact
	if len(bytes.TrimSpace(resp.body)) > 0 {
		if err := json.Unmarshal(resp.body, &items); err != nil {
			return nil, fmt.Errorf("list contacts: decode json: %w", err)
		}
	}

	contacts := make([]domain.Contact, 0, len(items))
	for _, item := range items {
		contacts = append(contacts, item.toDomain())
	}
	return contacts, nil
}

// GetContact fetches a single contact.
func (c *Client) GetContact(ctx context.Context, id string) (domain.Contact, error) {
	resp, err := c.do(ctx, request{method: http.MethodGet, path: contactPath(id), authed: true})
	if err != nil {
		return domain.Contact{}, fmt.Errorf("get contact: %w", err)
	}

	contact, ok := decodeContact(resp.body)
	if !ok {
		return domain.Contact{}, fmt.Errorf("get contact: decode json: missing contact")
	}
	return contact, nil
}

// CreateContact creates a contact and returns the server's record, which
// carries the assigned id and createdAt.
func (c *Client) CreateContact(ctx context.Context, fields domain.ContactFields) (domain.Contact, error) {
	resp, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/api/contacts",
		body:   newContactBody(fields),
		authed: true,
	})
	if err != nil {
		return domain.Contact{}, fmt.Errorf("create contact: %w", err)
	}

	contact, ok := decodeContact(resp.body)
	if !ok {
		if err := ack(resp); err != nil {
			return domain.Contact{}, fmt.Errorf("create contact: %w", err)
		}
		return domain.Contact{}, fmt.Errorf("create contact: response has no contact")
	}
	return contact, nil
}

// UpdateContact replaces the writable fields of a contact. It returns the
// server's record when the response carries one and nil for a bare ack.
func (c *Client) UpdateContact(ctx context.Context, id string, fields domain.ContactFields) (*domain.Contact, error) {
	resp, err := c.do(ctx, request{
		method: http.MethodPut,
		path:   contactPath(id),
		body:   newContactBody(fields),
		authed: true,
	})
	if err != nil {
		return nil, fmt.Errorf("update contact: %w", err)
	}

	if contact, ok := decodeContact(resp.body); ok {
		return &contact, nil
	}
	if err := ack(resp); err != nil {
		return nil, fmt.Errorf("update contact: %w", err)
	}
	return nil, nil
}

// DeleteContact permanently removes a contact.
func (c *Client) DeleteContact(ctx context.Context, id string) error {
	resp, err := c.do(ctx, request{method: http.MethodDelete, path: contactPath(id), authed: true})
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	if err := ack(resp); err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	return nil
}

// ToggleFavorite flips the favorite flag on the server.
func (c *Client) ToggleFavorite(ctx context.Context, id string) error {
	resp, err := c.do(ctx, request{
		method: http.MethodPatch,
		path:   contactPath(id) + "/toggle-favorite",
		authed: true,
	})
	if err != nil {
		return fmt.Errorf("toggle favorite: %w", err)
	}
	if err := ack(resp); err != nil {
		return fmt.Errorf("toggle favorite: %w", err)
	}
	return nil
}

// SetStatus moves a contact to a new status.
func (c *Client) SetStatus(ctx context.Context, id string, status domain.ContactStatus) error {
	resp, err := c.do(ctx, request{
		method: http.MethodPatch,
		path:   contactPath(id) + "/set-status",
		body:   map[string]string{"status": string(status)},
		authed: true,
	})
	if err != nil {
		return fmt.Errorf("set status: %w", err)
	}
	if err := ack(resp); err != nil {
		return fmt.Errorf("set status: %w", err)
	}
	return nil
}

// ListActivities fetches the user's activity log.
func (c *Client) ListActivities(ctx context.Context) ([]domain.UserActivity, error) {
	resp, err := c.do(ctx, request{method: http.MethodGet, path: "/api/user-activities", authed: true})
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}

	var items []apiActivity
	if len(bytes.TrimSpace(resp.body)) > 0 {
		if err := json.Unmarshal(resp.body, &items); err != nil {
			return nil, fmt.Errorf("list activities: decode json: %w", err)
		}
	}

	activities := make([]domain.UserActivity, 0, len(items))
	for _, item := range items {
		a := item.toDomain()
		if !a.Action.IsValid() {
			c.log.WarnContext(ctx, "unknown activity action",
				slog.String("action", item.Action),
				slog.String("contact_name", item.ContactName),
			)
		}
		activities = append(activities, a)
	}
	return activities, nil
}

// decodeContact reports whether body is a contact object with an id.
func decodeContact(body []byte) (domain.Contact, bool) {
	var item apiContact
	if err := json.Unmarshal(body, &item); err != nil || item.ID == "" {
		return domain.Contact{}, false
	}
	return item.toDomain(), true
}
