package domain

// OtherCategory is the synthetic bucket that absorbs categories beyond the top N.
const OtherCategory = "Other"

// CategoryDistribution is a derived count of contacts carrying a label.
type CategoryDistribution struct {
	Category string `json:"category" yaml:"category"`
	Count    int    `json:"count"    yaml:"count"`
}

// Dashboard aggregates the analytics shown above the active contact list.
type Dashboard struct {
	TotalContacts          int                    `json:"totalContacts"          yaml:"total_contacts"`
	CategoriesDistribution []CategoryDistribution `json:"categoriesDistribution" yaml:"categories_distribution"`
	RecentActivity         []UserActivity         `json:"recentActivity"         yaml:"recent_activity"`
}

// PageConfig describes the contact list page selected by a route.
type PageConfig struct {
	Title        string
	Description  string
	StatusFilter ContactStatus
}

// PageConfigFor maps a route path to its page configuration.
// Unknown routes fall back to the active list.
func PageConfigFor(path string) PageConfig {
	switch path {
	case "/blocked":
		return PageConfig{
			Title:        "Blocked Contacts",
			Description:  "Manage your blocked contacts",
			StatusFilter: ContactStatusBlocked,
		}
	case "/bin":
		return PageConfig{
			Title:        "Contacts in Bin",
			Description:  "Recover or permanently delete contacts",
			StatusFilter: ContactStatusBin,
		}
	default:
		return PageConfig{
			Title:        "All Contacts",
			Description:  "Manage your contacts",
			StatusFilter: ContactStatusActive,
		}
	}
}
