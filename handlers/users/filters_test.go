package users

import (
	"testing"
	"time"

	"github.com/ST10329226/Fakebook-SQL-MVC/models"

	"github.com/stretchr/testify/assert"
)

func usernames(users []models.User) []string {
	names := make([]string, 0, len(users))
	for _, u := range users {
		names = append(names, u.Username)
	}
	return names
}

func TestFilterByEmailDomain_SuffixMatch(t *testing.T) {
	users := []models.User{
		{ID: 1, Username: "alice", Email: "alice@gmail.com"},
		{ID: 2, Username: "bob", Email: "bob@yahoo.com"},
		{ID: 3, Username: "carol", Email: "carol@mail.com"},
	}

	// Raw suffix match: "mail.com" also catches "gmail.com"
	got := FilterByEmailDomain(users, "mail.com")
	assert.Equal(t, []string{"alice", "carol"}, usernames(got))

	got = FilterByEmailDomain(users, "yahoo.com")
	assert.Equal(t, []string{"bob"}, usernames(got))
}

func TestFilterByEmailDomain_CaseFolded(t *testing.T) {
	users := []models.User{
		{ID: 1, Username: "alice", Email: "alice@GMail.com"},
	}

	got := FilterByEmailDomain(users, "gmail.COM")
	assert.Equal(t, []string{"alice"}, usernames(got))
}

func TestSortUsers_AllOrders(t *testing.T) {
	t1 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	fixture := func() []models.User {
		return []models.User{
			{ID: 1, Username: "bob", Email: "bob@yahoo.com", CreatedAt: t1.Add(time.Hour)},
			{ID: 2, Username: "alice", Email: "alice@gmail.com", CreatedAt: t1},
			{ID: 3, Username: "carol", Email: "carol@mail.com", CreatedAt: t1.Add(2 * time.Hour)},
		}
	}

	cases := []struct {
		sortOrder string
		want      []string
	}{
		{"username_asc", []string{"alice", "bob", "carol"}},
		{"username_desc", []string{"carol", "bob", "alice"}},
		{"email_asc", []string{"alice", "bob", "carol"}},
		{"email_desc", []string{"carol", "bob", "alice"}},
		{"", []string{"carol", "bob", "alice"}},
		// Unknown values silently fall back to newest first
		{"bogus", []string{"carol", "bob", "alice"}},
	}

	for _, tc := range cases {
		users := fixture()
		SortUsers(users, tc.sortOrder)
		assert.Equal(t, tc.want, usernames(users), "sortOrder=%q", tc.sortOrder)
	}
}

func TestEmailDomains_Facet(t *testing.T) {
	emails := []string{
		"alice@gmail.com",
		"bob@yahoo.com",
		"carol@gmail.com",
		"no-at-sign",
	}

	got := EmailDomains(emails)

	assert.Equal(t, []string{"@gmail.com", "@yahoo.com"}, got)
}

func TestEmailDomains_SplitsOnFirstAt(t *testing.T) {
	got := EmailDomains([]string{"weird@user@host.com"})

	assert.Equal(t, []string{"@user@host.com"}, got)
}

func TestSortOptions_FixedList(t *testing.T) {
	got := SortOptions()

	assert.Equal(t, []SortOption{
		{Value: "default", Label: "Default (Newest First)"},
		{Value: "username_asc", Label: "Username (A-Z)"},
		{Value: "username_desc", Label: "Username (Z-A)"},
		{Value: "email_asc", Label: "Email (A-Z)"},
		{Value: "email_desc", Label: "Email (Z-A)"},
	}, got)
}
