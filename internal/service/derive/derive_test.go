package derive

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/contactbook/internal/domain"
	"github.com/heartmarshall/contactbook/pkg/collection"
)

func contact(id string, status domain.ContactStatus, categories ...string) domain.Contact {
	return domain.Contact{
		ID:         id,
		Name:       "Contact " + id,
		Email:      id + "@example.com",
		Categories: categories,
		Status:     status,
	}
}

func ids(c *collection.Collection[domain.Contact]) []string {
	return collection.MapTo(c, func(c domain.Contact) string { return c.ID }).Items()
}

// ---------------------------------------------------------------------------
// PartitionByStatus
// ---------------------------------------------------------------------------

func TestPartitionByStatus_Disjoint(t *testing.T) {
	t.Parallel()

	input := collection.From([]domain.Contact{
		contact("1", domain.ContactStatusActive),
		contact("2", domain.ContactStatusBlocked),
		contact("3", ""),
		contact("4", domain.ContactStatusBin),
		contact("5", domain.ContactStatusBlocked),
		contact("6", domain.ContactStatusActive),
	})

	p := PartitionByStatus(input)

	assert.Equal(t, []string{"1", "3", "6"}, ids(p.Active))
	assert.Equal(t, []string{"2", "5"}, ids(p.Blocked))
	assert.Equal(t, []string{"4"}, ids(p.Bin))
	assert.Equal(t, input.Len(), p.Active.Len()+p.Blocked.Len()+p.Bin.Len())

	seen := map[string]int{}
	for _, g := range []*collection.Collection[domain.Contact]{p.Active, p.Blocked, p.Bin} {
		for c := range g.All() {
			seen[c.ID]++
		}
	}
	for id, n := range seen {
		assert.Equal(t, 1, n, "contact %s appears in %d groups", id, n)
	}
}

func TestPartitionByStatus_Empty(t *testing.T) {
	t.Parallel()

	p := PartitionByStatus(collection.New[domain.Contact]())

	assert.Equal(t, 0, p.Active.Len())
	assert.Equal(t, 0, p.Blocked.Len())
	assert.Equal(t, 0, p.Bin.Len())
}

func TestPartition_Group(t *testing.T) {
	t.Parallel()

	p := PartitionByStatus(collection.From([]domain.Contact{
		contact("1", domain.ContactStatusBin),
	}))

	assert.Same(t, p.Bin, p.Group(domain.ContactStatusBin))
	assert.Same(t, p.Active, p.Group(""))
	assert.Equal(t, map[domain.ContactStatus]int{
		domain.ContactStatusActive:  0,
		domain.ContactStatusBlocked: 0,
		domain.ContactStatusBin:     1,
	}, StatusCounts(p))
}

// ---------------------------------------------------------------------------
// Favorites / Recent
// ---------------------------------------------------------------------------

func TestFavorites_PreservesOrder(t *testing.T) {
	t.Parallel()

	items := []domain.Contact{
		contact("1", ""), contact("2", ""), contact("3", ""), contact("4", ""),
	}
	items[1].Favorite = true
	items[3].Favorite = true

	got := Favorites(collection.From(items))

	assert.Equal(t, []string{"2", "4"}, ids(got))
}

func TestRecent_IsPositional(t *testing.T) {
	t.Parallel()

	items := make([]domain.Contact, 7)
	for i := range items {
		items[i] = contact(fmt.Sprintf("c%d", i+1), domain.ContactStatusActive)
		// Later contacts are newer; Recent must not reorder by time.
		items[i].CreatedAt = time.Date(2024, 1, i+1, 0, 0, 0, 0, time.UTC)
	}

	got := Recent(collection.From(items), 5)

	assert.Equal(t, []string{"c1", "c2", "c3", "c4", "c5"}, ids(got))
}

func TestRecent_FewerThanN(t *testing.T) {
	t.Parallel()

	got := Recent(collection.From([]domain.Contact{contact("1", "")}), 5)
	assert.Equal(t, 1, got.Len())
}

// ---------------------------------------------------------------------------
// CategoryDistribution
// ---------------------------------------------------------------------------

func contactsWithCounts(counts []struct {
	label string
	n     int
}) *collection.Collection[domain.Contact] {
	c := collection.New[domain.Contact]()
	id := 0
	for _, e := range counts {
		for i := 0; i < e.n; i++ {
			id++
			c.Append(contact(fmt.Sprint(id), domain.ContactStatusActive, e.label))
		}
	}
	return c
}

func TestCategoryDistribution_OverflowIntoOther(t *testing.T) {
	t.Parallel()

	input := contactsWithCounts([]struct {
		label string
		n     int
	}{
		{"D", 3}, {"A", 10}, {"E", 1}, {"B", 8}, {"C", 5},
	})

	got := CategoryDistribution(input, 3)

	want := []domain.CategoryDistribution{
		{Category: "A", Count: 10},
		{Category: "B", Count: 8},
		{Category: "C", Count: 5},
		{Category: "Other", Count: 4},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CategoryDistribution mismatch (-want +got):\n%s", diff)
	}
}

func TestCategoryDistribution_NoOtherWhenThreeOrFewer(t *testing.T) {
	t.Parallel()

	input := collection.From([]domain.Contact{
		contact("1", "", "Work", "Family"),
		contact("2", "", "Work"),
		contact("3", "", "Friend"),
	})

	got := CategoryDistribution(input, 3)

	want := []domain.CategoryDistribution{
		{Category: "Work", Count: 2},
		{Category: "Family", Count: 1},
		{Category: "Friend", Count: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CategoryDistribution mismatch (-want +got):\n%s", diff)
	}
}

func TestCategoryDistribution_SumAndSizeProperty(t *testing.T) {
	t.Parallel()

	input := collection.From([]domain.Contact{
		contact("1", "", "a", "b", "c"),
		contact("2", "", "d", "e"),
		contact("3", "", "a", "f"),
		contact("4", ""),
		contact("5", "", "g", "", "b"),
	})

	pairs := 0
	for c := range input.All() {
		for _, l := range c.Categories {
			if l != "" {
				pairs++
			}
		}
	}

	got := CategoryDistribution(input, 3)

	sum := 0
	hasOther := false
	for _, d := range got {
		sum += d.Count
		if d.Category == domain.OtherCategory {
			hasOther = true
		}
	}
	assert.Equal(t, pairs, sum)
	assert.LessOrEqual(t, len(got), 4)
	assert.True(t, hasOther, "more than 3 distinct categories must produce Other")
}

func TestCategoryDistribution_TiesFoldedIntoOther(t *testing.T) {
	t.Parallel()

	input := collection.From([]domain.Contact{
		contact("1", "", "a", "b", "c", "d", "e"),
	})

	got := CategoryDistribution(input, 3)

	require.Len(t, got, 4)
	assert.Equal(t, []string{"a", "b", "c", "Other"}, []string{got[0].Category, got[1].Category, got[2].Category, got[3].Category})
	assert.Equal(t, 2, got[3].Count)
}

func TestCategoryDistribution_Empty(t *testing.T) {
	t.Parallel()

	got := CategoryDistribution(collection.New[domain.Contact](), 3)
	assert.Empty(t, got)
}

func TestCategories_FirstSeenOrder(t *testing.T) {
	t.Parallel()

	input := collection.From([]domain.Contact{
		contact("1", "", "Work", "Family"),
		contact("2", "", "Friend", "Work"),
		contact("3", ""),
	})

	assert.Equal(t, []string{"Work", "Family", "Friend"}, Categories(input))
}

// ---------------------------------------------------------------------------
// RecentActivity / Dashboard
// ---------------------------------------------------------------------------

func activityAt(name string, minute int) domain.UserActivity {
	return domain.NewActivity(domain.ActivityActionAdded, name, "",
		time.Date(2024, 5, 1, 12, minute, 0, 0, time.UTC))
}

func TestRecentActivity_NewestFirst(t *testing.T) {
	t.Parallel()

	log := collection.From([]domain.UserActivity{
		activityAt("a", 1),
		activityAt("b", 7),
		activityAt("c", 3),
		activityAt("d", 9),
		activityAt("e", 2),
		activityAt("f", 8),
	})

	got := RecentActivity(log, 5)

	names := collection.MapTo(got, func(a domain.UserActivity) string { return a.ContactName }).Items()
	assert.Equal(t, []string{"d", "f", "b", "c", "e"}, names)
	assert.Equal(t, 6, log.Len(), "source must not change")
}

func TestDashboard_ActiveContext(t *testing.T) {
	t.Parallel()

	active := collection.From([]domain.Contact{
		contact("1", "", "Work"),
		contact("2", "", "Work", "Family"),
	})
	log := collection.From([]domain.UserActivity{activityAt("x", 1)})

	got := Dashboard(domain.ContactStatusActive, active, log, Options{})

	assert.Equal(t, 2, got.TotalContacts)
	assert.Equal(t, []domain.CategoryDistribution{
		{Category: "Work", Count: 2},
		{Category: "Family", Count: 1},
	}, got.CategoriesDistribution)
	assert.Len(t, got.RecentActivity, 1)
}

func TestDashboard_NonActiveContextIsEmpty(t *testing.T) {
	t.Parallel()

	active := collection.From([]domain.Contact{contact("1", "", "Work")})
	log := collection.From([]domain.UserActivity{activityAt("x", 1)})

	for _, status := range []domain.ContactStatus{domain.ContactStatusBlocked, domain.ContactStatusBin} {
		got := Dashboard(status, active, log, Options{})
		assert.Equal(t, 0, got.TotalContacts, status)
		assert.Empty(t, got.CategoriesDistribution, status)
		assert.Empty(t, got.RecentActivity, status)
	}
}
