package contact

import (
	"strings"

	"github.com/heartmarshall/contactbook/internal/domain"
)

// CreateContactInput holds the parameters for creating a contact.
type CreateContactInput struct {
	Name       string
	Email      string
	Phone      string
	Categories []string
	Avatar     *string
}

// Validate checks all fields and collects all errors.
func (i CreateContactInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	email := strings.TrimSpace(i.Email)
	if email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if !domain.IsValidEmail(email) {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid format"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i CreateContactInput) fields() domain.ContactFields {
	return domain.ContactFields{
		Name:       strings.TrimSpace(i.Name),
		Email:      strings.TrimSpace(i.Email),
		Phone:      strings.TrimSpace(i.Phone),
		Categories: domain.NormalizeCategories(i.Categories),
		Avatar:     trimOrNil(i.Avatar),
	}
}

// UpdateContactInput holds the parameters for updating a contact.
type UpdateContactInput struct {
	ID         string
	Name       *string
	Email      *string
	Phone      *string // nil = don't change; ptr("") = clear
	Categories []string
	Avatar     *string
}

// Validate checks all fields and collects all errors.
func (i UpdateContactInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.ID) == "" {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.patch().IsEmpty() {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil && strings.TrimSpace(*i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if i.Email != nil {
		email := strings.TrimSpace(*i.Email)
		if email == "" {
			errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
		} else if !domain.IsValidEmail(email) {
			errs = append(errs, domain.FieldError{Field: "email", Message: "invalid format"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateContactInput) patch() domain.ContactPatch {
	p := domain.ContactPatch{
		Name:   trimPtr(i.Name),
		Email:  trimPtr(i.Email),
		Phone:  trimPtr(i.Phone),
		Avatar: i.Avatar,
	}
	if i.Categories != nil {
		p.Categories = domain.NormalizeCategories(i.Categories)
	}
	return p
}

// SetStatusInput holds the parameters for moving a contact between statuses.
type SetStatusInput struct {
	ID     string
	Status domain.ContactStatus
}

// Validate checks all fields and collects all errors.
func (i SetStatusInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.ID) == "" {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be one of active, blocked, bin"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateID(id string) error {
	if strings.TrimSpace(id) == "" {
		return domain.NewValidationError("id", "required")
	}
	return nil
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}
