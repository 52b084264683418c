package users

import (
	"sort"
	"strings"

	"github.com/ST10329226/Fakebook-SQL-MVC/models"

	"github.com/samber/lo"
)

// FilterByEmailDomain keeps users whose email ends with the given string,
// case-folded. This is a raw suffix match, not a parsed-domain match: a
// filter of "mail.com" also matches "gmail.com".
func FilterByEmailDomain(users []models.User, domain string) []models.User {
	suffix := strings.ToLower(domain)
	return lo.Filter(users, func(u models.User, _ int) bool {
		return strings.HasSuffix(strings.ToLower(u.Email), suffix)
	})
}

// SortUsers applies one of the five sort orders. Unknown values silently
// fall back to newest first.
func SortUsers(users []models.User, sortOrder string) {
	switch sortOrder {
	case "username_desc":
		sort.SliceStable(users, func(i, j int) bool {
			return users[i].Username > users[j].Username
		})
	case "username_asc":
		sort.SliceStable(users, func(i, j int) bool {
			return users[i].Username < users[j].Username
		})
	case "email_desc":
		sort.SliceStable(users, func(i, j int) bool {
			return users[i].Email > users[j].Email
		})
	case "email_asc":
		sort.SliceStable(users, func(i, j int) bool {
			return users[i].Email < users[j].Email
		})
	default:
		sort.SliceStable(users, func(i, j int) bool {
			return users[i].CreatedAt.After(users[j].CreatedAt)
		})
	}
}

// EmailDomains builds the facet list: the substring after the first "@" of
// each email, "@"-prefixed, deduplicated and alphabetically ordered. Emails
// without an "@" are skipped.
func EmailDomains(emails []string) []string {
	domains := lo.FilterMap(emails, func(email string, _ int) (string, bool) {
		at := strings.Index(email, "@")
		if at < 0 {
			return "", false
		}
		return "@" + email[at+1:], true
	})

	domains = lo.Uniq(domains)
	sort.Strings(domains)
	return domains
}

// SortOption is a value/label pair for the sort dropdown.
type SortOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// SortOptions returns the fixed list of sort orders offered by the UI.
func SortOptions() []SortOption {
	return []SortOption{
		{Value: "default", Label: "Default (Newest First)"},
		{Value: "username_asc", Label: "Username (A-Z)"},
		{Value: "username_desc", Label: "Username (Z-A)"},
		{Value: "email_asc", Label: "Email (A-Z)"},
		{Value: "email_desc", Label: "Email (Z-A)"},
	}
}
