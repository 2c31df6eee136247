package domain

import (
	"strings"
)

// NormalizeCategories trims labels, drops blanks and removes duplicates while
// keeping first-seen order. A nil input yields an empty, non-nil slice.
func NormalizeCategories(categories []string) []string {
	out := make([]string, 0, len(categories))
	seen := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// IsValidEmail performs the client-side syntactic check: one "@" with a
// non-empty local part and a domain containing a dot that is neither
// leading nor trailing.
func IsValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	if strings.ContainsAny(email, " \t\r\n") {
		return false
	}
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	if strings.Count(email, "@") != 1 {
		return false
	}
	domain := email[at+1:]
	dot := strings.Index(domain, ".")
	if dot <= 0 || strings.HasSuffix(domain, ".") {
		return false
	}
	return !strings.Contains(domain, "..")
}

// ContainsFold reports whether substr is within s, case-insensitively.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
