package restapi

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/heartmarshall/contactbook/internal/domain"
)

// apiContact is the wire shape of a contact. Categories arrive as an array
// of strings, but anything else is tolerated and treated as empty.
type apiContact struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Phone      *string         `json:"phone"`
	Categories json.RawMessage `json:"categories"`
	Favorite   bool            `json:"favorite"`
	Status     string          `json:"status"`
	CreatedAt  string          `json:"createdAt"`
	Avatar     *string         `json:"avatar"`
}

type apiActivity struct {
	Action      string `json:"action"`
	ContactName string `json:"contact_name"`
	ActionType  string `json:"action_type"`
	Timestamp   string `json:"timestamp"`
}

type apiUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type apiLoginResponse struct {
	AccessToken string  `json:"access_token"`
	User        apiUser `json:"user"`
}

// contactBody is sent on create and update.
type contactBody struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	Categories []string `json:"categories"`
	Avatar     *string  `json:"avatar,omitempty"`
}

func newContactBody(f domain.ContactFields) contactBody {
	categories := f.Categories
	if categories == nil {
		categories = []string{}
	}
	return contactBody{
		Name:       f.Name,
		Email:      f.Email,
		Phone:      f.Phone,
		Categories: categories,
		Avatar:     f.Avatar,
	}
}

func (a apiContact) toDomain() domain.Contact {
	return domain.Contact{
		ID:         a.ID,
		Name:       a.Name,
		Email:      a.Email,
		Phone:      nonEmpty(a.Phone),
		Categories: decodeCategories(a.Categories),
		Favorite:   a.Favorite,
		Status:     domain.ContactStatus(a.Status).Normalize(),
		CreatedAt:  parseTime(a.CreatedAt),
		Avatar:     nonEmpty(a.Avatar),
	}
}

func (a apiActivity) toDomain() domain.UserActivity {
	return domain.UserActivity{
		Action:      domain.ActivityAction(a.Action),
		ContactName: a.ContactName,
		ActionType:  a.ActionType,
		Timestamp:   parseTime(a.Timestamp),
	}
}

func (u apiUser) toDomain() domain.User {
	return domain.User{ID: u.ID, Name: u.Name, Email: u.Email}
}

func decodeCategories(raw json.RawMessage) []string {
	var labels []string
	if len(raw) == 0 || json.Unmarshal(raw, &labels) != nil {
		return []string{}
	}
	return domain.NormalizeCategories(labels)
}

func nonEmpty(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := *s
	return &v
}

// parseTime accepts RFC 3339 with or without fractional seconds. Unparsable
// values decode as the zero time.
func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return t.UTC()
	}
	return time.Time{}
}
