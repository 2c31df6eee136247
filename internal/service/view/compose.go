// Package view composes the visible contact list from the current
// collection: status partition, free-text search, category filter and sort.
// It owns no state; Compose is recomputed whenever any input changes.
package view

import (
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/heartmarshall/contactbook/internal/domain"
	"github.com/heartmarshall/contactbook/internal/service/derive"
	"github.com/heartmarshall/contactbook/pkg/collection"
)

// Query selects and orders a view of the contact collection.
type Query struct {
	Status   domain.ContactStatus
	Search   string
	Category string
	Sort     domain.SortOption
}

// Validate checks the status and sort values.
func (q Query) Validate() error {
	var errs []domain.FieldError
	if q.Status != "" && !q.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be one of active, blocked, bin"})
	}
	if q.Sort != "" && !q.Sort.IsValid() {
		errs = append(errs, domain.FieldError{Field: "sort", Message: "must be one of name, category, recent"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ParseSort converts user input into a SortOption. Empty selects recent.
func ParseSort(s string) (domain.SortOption, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return domain.SortByRecent, nil
	}
	opt := domain.SortOption(s)
	if !opt.IsValid() {
		return "", domain.NewValidationError("sort", "must be one of name, category, recent")
	}
	return opt, nil
}

// Composer builds views using a locale-aware collator for lexical sorts.
type Composer struct {
	mu       sync.Mutex
	collator *collate.Collator
}

// NewComposer creates a Composer for the given BCP 47 locale tag.
// An unparsable tag falls back to English.
func NewComposer(locale string) *Composer {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &Composer{collator: collate.New(tag)}
}

// Compose applies, in order: status partition, search, category filter, sort.
// The input collection is not modified.
func (v *Composer) Compose(contacts *collection.Collection[domain.Contact], q Query) *collection.Collection[domain.Contact] {
	out := derive.PartitionByStatus(contacts).Group(q.Status)

	if q.Search != "" {
		out = out.Filter(func(c domain.Contact) bool { return matchesSearch(c, q.Search) })
	}

	if q.Category != "" {
		out = out.Filter(func(c domain.Contact) bool { return c.HasCategory(q.Category) })
	}

	switch q.Sort {
	case domain.SortByName:
		out = out.Sorted(func(a, b domain.Contact) int { return v.compare(a.Name, b.Name) })
	case domain.SortByCategory:
		out = out.Sorted(func(a, b domain.Contact) int { return v.compare(a.FirstCategory(), b.FirstCategory()) })
	}

	return out
}

// compare serializes collator use; a Collator keeps internal buffers and
// must not be shared across goroutines.
func (v *Composer) compare(a, b string) int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.collator.CompareString(a, b)
}

// matchesSearch reports a case-insensitive substring hit on name, email or
// phone. A missing phone never matches.
func matchesSearch(c domain.Contact, term string) bool {
	if domain.ContainsFold(c.Name, term) || domain.ContainsFold(c.Email, term) {
		return true
	}
	return c.Phone != nil && domain.ContainsFold(*c.Phone, term)
}
