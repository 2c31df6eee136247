package domain

// ContactStatus is the lifecycle state of a contact.
type ContactStatus string

const (
	ContactStatusActive  ContactStatus = "active"
	ContactStatusBlocked ContactStatus = "blocked"
	ContactStatusBin     ContactStatus = "bin"
)

func (s ContactStatus) String() string { return string(s) }

func (s ContactStatus) IsValid() bool {
	switch s {
	case ContactStatusActive, ContactStatusBlocked, ContactStatusBin:
		return true
	}
	return false
}

// Normalize maps an unset status to active.
// Unknown values are returned unchanged so callers can still reject them.
func (s ContactStatus) Normalize() ContactStatus {
	if s == "" {
		return ContactStatusActive
	}
	return s
}

// Transitions returns the statuses a user is offered from s.
func (s ContactStatus) Transitions() []ContactStatus {
	switch s.Normalize() {
	case ContactStatusActive:
		return []ContactStatus{ContactStatusBlocked, ContactStatusBin}
	case ContactStatusBlocked:
		return []ContactStatus{ContactStatusActive, ContactStatusBin}
	case ContactStatusBin:
		return []ContactStatus{ContactStatusActive}
	}
	return nil
}

// ParseContactStatus converts user input into a ContactStatus.
func ParseContactStatus(s string) (ContactStatus, bool) {
	status := ContactStatus(s)
	return status, status.IsValid()
}

// ActivityAction is the kind of mutation recorded in the activity log.
type ActivityAction string

const (
	ActivityActionAdded          ActivityAction = "added"
	ActivityActionUpdated        ActivityAction = "updated"
	ActivityActionDeleted        ActivityAction = "deleted"
	ActivityActionToggleFavorite ActivityAction = "toggle_favorite"
	ActivityActionSetStatus      ActivityAction = "set_status"
)

func (a ActivityAction) String() string { return string(a) }

func (a ActivityAction) IsValid() bool {
	switch a {
	case ActivityActionAdded, ActivityActionUpdated, ActivityActionDeleted,
		ActivityActionToggleFavorite, ActivityActionSetStatus:
		return true
	}
	return false
}

// Qualifiers recorded in UserActivity.ActionType for favorite toggles.
const (
	ActionTypeFavorite   = "favorite"
	ActionTypeUnfavorite = "unfavorite"
)

// SortOption selects the ordering of a composed contact view.
type SortOption string

const (
	SortByName     SortOption = "name"
	SortByCategory SortOption = "category"
	SortByRecent   SortOption = "recent"
)

func (o SortOption) String() string { return string(o) }

func (o SortOption) IsValid() bool {
	switch o {
	case SortByName, SortByCategory, SortByRecent:
		return true
	}
	return false
}
