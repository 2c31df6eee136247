// Package derive computes read-only views over a contact collection snapshot:
// status partitions, favorites, recents, category analytics and activity
// summaries. Every function is pure and cannot fail on valid input.
package derive

import (
	"cmp"
	"slices"

	"github.com/heartmarshall/contactbook/internal/domain"
	"github.com/heartmarshall/contactbook/pkg/collection"
)

// Defaults used when Options leaves a field at zero.
const (
	DefaultRecentLimit   = 5
	DefaultActivityLimit = 5
	DefaultTopCategories = 3
)

// Options tunes the derivations. Zero values select the defaults.
type Options struct {
	RecentLimit   int
	ActivityLimit int
	TopCategories int
}

func (o Options) withDefaults() Options {
	if o.RecentLimit <= 0 {
		o.RecentLimit = DefaultRecentLimit
	}
	if o.ActivityLimit <= 0 {
		o.ActivityLimit = DefaultActivityLimit
	}
	if o.TopCategories <= 0 {
		o.TopCategories = DefaultTopCategories
	}
	return o
}

// Partition splits contacts into disjoint status groups.
type Partition struct {
	Active  *collection.Collection[domain.Contact]
	Blocked *collection.Collection[domain.Contact]
	Bin     *collection.Collection[domain.Contact]
}

// Group returns the partition for a status.
func (p Partition) Group(status domain.ContactStatus) *collection.Collection[domain.Contact] {
	switch status.Normalize() {
	case domain.ContactStatusBlocked:
		return p.Blocked
	case domain.ContactStatusBin:
		return p.Bin
	default:
		return p.Active
	}
}

// PartitionByStatus places every contact in exactly one group, keeping input
// order inside each group. Unset and unrecognized statuses count as active.
func PartitionByStatus(contacts *collection.Collection[domain.Contact]) Partition {
	p := Partition{
		Active:  collection.New[domain.Contact](),
		Blocked: collection.New[domain.Contact](),
		Bin:     collection.New[domain.Contact](),
	}
	for c := range contacts.All() {
		switch c.EffectiveStatus() {
		case domain.ContactStatusBlocked:
			p.Blocked.Append(c)
		case domain.ContactStatusBin:
			p.Bin.Append(c)
		default:
			p.Active.Append(c)
		}
	}
	return p
}

// StatusCounts returns the size of each partition.
func StatusCounts(p Partition) map[domain.ContactStatus]int {
	return map[domain.ContactStatus]int{
		domain.ContactStatusActive:  p.Active.Len(),
		domain.ContactStatusBlocked: p.Blocked.Len(),
		domain.ContactStatusBin:     p.Bin.Len(),
	}
}

// Favorites returns the favorite contacts in input order.
func Favorites(active *collection.Collection[domain.Contact]) *collection.Collection[domain.Contact] {
	return active.Filter(func(c domain.Contact) bool { return c.Favorite })
}

// Recent returns the first n contacts of the input as given. It is positional,
// not chronological: callers that want recency must order the input first.
func Recent(active *collection.Collection[domain.Contact], n int) *collection.Collection[domain.Contact] {
	return active.Take(n)
}

// CategoryDistribution counts label occurrences across contacts, keeps the
// top entries by count and folds the remainder into a single "Other" entry.
// Equal counts keep first-seen order. "Other" is present only when the
// remainder is non-empty.
func CategoryDistribution(contacts *collection.Collection[domain.Contact], top int) []domain.CategoryDistribution {
	if top <= 0 {
		top = DefaultTopCategories
	}

	var order []string
	counts := make(map[string]int)
	for c := range contacts.All() {
		for _, label := range c.Categories {
			if label == "" {
				continue
			}
			if _, ok := counts[label]; !ok {
				order = append(order, label)
			}
			counts[label]++
		}
	}

	sorted := make([]domain.CategoryDistribution, 0, len(order))
	for _, label := range order {
		sorted = append(sorted, domain.CategoryDistribution{Category: label, Count: counts[label]})
	}
	slices.SortStableFunc(sorted, func(a, b domain.CategoryDistribution) int {
		return cmp.Compare(b.Count, a.Count)
	})

	if len(sorted) <= top {
		return sorted
	}

	result := slices.Clone(sorted[:top])
	other := 0
	for _, d := range sorted[top:] {
		other += d.Count
	}
	if other > 0 {
		result = append(result, domain.CategoryDistribution{Category: domain.OtherCategory, Count: other})
	}
	return result
}

// Categories returns the distinct labels in first-seen order.
func Categories(contacts *collection.Collection[domain.Contact]) []string {
	var out []string
	seen := make(map[string]struct{})
	for c := range contacts.All() {
		for _, label := range c.Categories {
			if label == "" {
				continue
			}
			if _, ok := seen[label]; ok {
				continue
			}
			seen[label] = struct{}{}
			out = append(out, label)
		}
	}
	return out
}

// RecentActivity orders activities newest first and keeps the first limit.
// Activities with equal timestamps keep their log order.
func RecentActivity(activities *collection.Collection[domain.UserActivity], limit int) *collection.Collection[domain.UserActivity] {
	if limit <= 0 {
		limit = DefaultActivityLimit
	}
	return activities.Sorted(func(a, b domain.UserActivity) int {
		return b.Timestamp.Compare(a.Timestamp)
	}).Take(limit)
}

// Dashboard builds the analytics block for a status context. Only the active
// context has analytics; any other status yields an empty dashboard.
func Dashboard(
	status domain.ContactStatus,
	active *collection.Collection[domain.Contact],
	activities *collection.Collection[domain.UserActivity],
	opts Options,
) domain.Dashboard {
	if status.Normalize() != domain.ContactStatusActive {
		return domain.Dashboard{
			CategoriesDistribution: []domain.CategoryDistribution{},
			RecentActivity:         []domain.UserActivity{},
		}
	}

	opts = opts.withDefaults()

	return domain.Dashboard{
		TotalContacts:          active.Len(),
		CategoriesDistribution: CategoryDistribution(active, opts.TopCategories),
		RecentActivity:         RecentActivity(activities, opts.ActivityLimit).Items(),
	}
}
