package domain

import (
	"slices"
	"time"
)

// PredefinedCategories are the labels suggested when editing a contact.
// Any other free-text label is accepted as well.
var PredefinedCategories = []string{"Work", "Family", "Friend", "Important"}

// Contact is a single address-book record. ID and CreatedAt are assigned by
// the backend and never changed by the client.
type Contact struct {
	ID         string        `json:"id"         yaml:"id"`
	Name       string        `json:"name"       yaml:"name"`
	Email      string        `json:"email"      yaml:"email"`
	Phone      *string       `json:"phone,omitempty"  yaml:"phone,omitempty"`
	Categories []string      `json:"categories" yaml:"categories"`
	Favorite   bool          `json:"favorite"   yaml:"favorite"`
	Status     ContactStatus `json:"status"     yaml:"status"`
	CreatedAt  time.Time     `json:"createdAt"  yaml:"created_at"`
	Avatar     *string       `json:"avatar,omitempty" yaml:"avatar,omitempty"`
}

// EffectiveStatus returns the contact's status with unset and unrecognized
// values treated as active.
func (c Contact) EffectiveStatus() ContactStatus {
	if s := c.Status.Normalize(); s.IsValid() {
		return s
	}
	return ContactStatusActive
}

// HasCategory reports whether the contact carries the exact label.
func (c Contact) HasCategory(category string) bool {
	return slices.Contains(c.Categories, category)
}

// FirstCategory returns the first label or "" when there is none.
func (c Contact) FirstCategory() string {
	if len(c.Categories) == 0 {
		return ""
	}
	return c.Categories[0]
}

// PhoneValue returns the phone number or "" when absent.
func (c Contact) PhoneValue() string {
	if c.Phone == nil {
		return ""
	}
	return *c.Phone
}

// Clone returns a deep copy so callers cannot alias the slice or pointers.
func (c Contact) Clone() Contact {
	out := c
	out.Categories = slices.Clone(c.Categories)
	if c.Phone != nil {
		p := *c.Phone
		out.Phone = &p
	}
	if c.Avatar != nil {
		a := *c.Avatar
		out.Avatar = &a
	}
	return out
}

// ContactFields is the writable subset of a contact sent on create.
type ContactFields struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	Categories []string `json:"categories"`
	Avatar     *string  `json:"avatar,omitempty"`
}

// ContactPatch carries partial changes for an update. Nil fields are left
// unchanged.
type ContactPatch struct {
	Name       *string  `json:"name,omitempty"`
	Email      *string  `json:"email,omitempty"`
	Phone      *string  `json:"phone,omitempty"`
	Categories []string `json:"categories,omitempty"`
	Avatar     *string  `json:"avatar,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p ContactPatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.Phone == nil && p.Categories == nil && p.Avatar == nil
}

// Apply merges the patch into c and returns the result. c is not modified.
func (p ContactPatch) Apply(c Contact) Contact {
	out := c.Clone()
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Email != nil {
		out.Email = *p.Email
	}
	if p.Phone != nil {
		if *p.Phone == "" {
			out.Phone = nil
		} else {
			phone := *p.Phone
			out.Phone = &phone
		}
	}
	if p.Categories != nil {
		out.Categories = slices.Clone(p.Categories)
	}
	if p.Avatar != nil {
		avatar := *p.Avatar
		out.Avatar = &avatar
	}
	return out
}
