package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/heartmarshall/contactbook/internal/domain"
)

const timeLayout = "2006-01-02 15:04"

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	mutedStyle  = lipgloss.NewStyle().Faint(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Faint(true)
)

func renderTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		String()
}

func renderHeading(title, description string) string {
	if description == "" {
		return titleStyle.Render(title)
	}
	return titleStyle.Render(title) + "\n" + mutedStyle.Render(description)
}

func renderContacts(contacts []domain.Contact) string {
	if len(contacts) == 0 {
		return mutedStyle.Render("No contacts found.")
	}

	rows := make([][]string, 0, len(contacts))
	for _, c := range contacts {
		rows = append(rows, []string{
			c.ID,
			favoriteMark(c.Favorite) + c.Name,
			c.Email,
			c.PhoneValue(),
			strings.Join(c.Categories, ", "),
			formatTime(c.CreatedAt),
		})
	}
	return renderTable([]string{"ID", "Name", "Email", "Phone", "Categories", "Created"}, rows)
}

func renderContact(c domain.Contact) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(favoriteMark(c.Favorite) + c.Name))
	b.WriteString("\n")

	field := func(label, value string) {
		if value == "" {
			value = mutedStyle.Render("-")
		}
		fmt.Fprintf(&b, "%-11s %s\n", label+":", value)
	}
	field("ID", c.ID)
	field("Email", c.Email)
	field("Phone", c.PhoneValue())
	field("Categories", strings.Join(c.Categories, ", "))
	field("Status", c.EffectiveStatus().String())
	field("Created", formatTime(c.CreatedAt))
	if c.Avatar != nil {
		field("Avatar", *c.Avatar)
	}
	field("Actions", strings.Join(contactActions(c), ", "))
	return strings.TrimRight(b.String(), "\n")
}

// contactActions lists the commands offered for a contact in its current
// status. Favorites can be toggled on active contacts only.
func contactActions(c domain.Contact) []string {
	var out []string
	status := c.EffectiveStatus()
	if status == domain.ContactStatusActive {
		out = append(out, "edit", "favorite")
	}
	for _, to := range status.Transitions() {
		out = append(out, "status "+to.String())
	}
	return out
}

func joinStatuses(statuses []domain.ContactStatus, sep string) string {
	parts := make([]string, len(statuses))
	for i, s := range statuses {
		parts[i] = s.String()
	}
	return strings.Join(parts, sep)
}

func renderActivities(activities []domain.UserActivity) string {
	if len(activities) == 0 {
		return mutedStyle.Render("No recent activity.")
	}

	var b strings.Builder
	for i, a := range activities {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s  %s", mutedStyle.Render(formatTime(a.Timestamp)), a.Describe())
	}
	return b.String()
}

func renderDistribution(dist []domain.CategoryDistribution) string {
	if len(dist) == 0 {
		return mutedStyle.Render("No categories yet.")
	}

	rows := make([][]string, 0, len(dist))
	for _, d := range dist {
		rows = append(rows, []string{d.Category, strconv.Itoa(d.Count)})
	}
	return renderTable([]string{"Category", "Contacts"}, rows)
}

func renderDashboard(d domain.Dashboard) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d\n\n", titleStyle.Render("Total contacts:"), d.TotalContacts)
	b.WriteString(titleStyle.Render("Categories"))
	b.WriteString("\n")
	b.WriteString(renderDistribution(d.CategoriesDistribution))
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render("Recent activity"))
	b.WriteString("\n")
	b.WriteString(renderActivities(d.RecentActivity))
	return b.String()
}

func favoriteMark(favorite bool) string {
	if favorite {
		return "★ "
	}
	return ""
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(timeLayout)
}
