package domain

import (
	"fmt"
	"time"
)

// UserActivity is an append-only audit record of one mutating action.
// ContactName is a snapshot taken when the action happened, so history
// survives deletion but does not follow renames.
type UserActivity struct {
	Action      ActivityAction `json:"action"       yaml:"action"`
	ContactName string         `json:"contact_name" yaml:"contact_name"`
	ActionType  string         `json:"action_type"  yaml:"action_type,omitempty"`
	Timestamp   time.Time      `json:"timestamp"    yaml:"timestamp"`
}

// NewActivity builds an activity stamped with now in UTC.
func NewActivity(action ActivityAction, contactName, actionType string, now time.Time) UserActivity {
	return UserActivity{
		Action:      action,
		ContactName: contactName,
		ActionType:  actionType,
		Timestamp:   now.UTC(),
	}
}

// Describe returns the one-line text shown in activity feeds. Actions the
// client does not know are shown with their raw name.
func (a UserActivity) Describe() string {
	switch a.Action {
	case ActivityActionToggleFavorite:
		if a.ActionType == ActionTypeFavorite {
			return fmt.Sprintf("Marked %s as favorite", a.ContactName)
		}
		return fmt.Sprintf("Marked %s as not favorite", a.ContactName)
	case ActivityActionSetStatus:
		switch ContactStatus(a.ActionType) {
		case ContactStatusActive:
			return fmt.Sprintf("Reactivated %s", a.ContactName)
		case ContactStatusBlocked:
			return fmt.Sprintf("Blocked %s", a.ContactName)
		case ContactStatusBin:
			return fmt.Sprintf("Moved %s to Bin", a.ContactName)
		}
		return fmt.Sprintf("Changed status of %s", a.ContactName)
	case ActivityActionAdded:
		return fmt.Sprintf("Added New Contact: %s", a.ContactName)
	case ActivityActionDeleted:
		return fmt.Sprintf("Deleted Contact: %s", a.ContactName)
	case ActivityActionUpdated:
		return fmt.Sprintf("Updated Contact: %s", a.ContactName)
	}
	if a.Action == "" {
		return a.ContactName
	}
	return fmt.Sprintf("%s: %s", a.Action, a.ContactName)
}
