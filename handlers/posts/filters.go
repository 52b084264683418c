package posts

import (
	"sort"
	"strings"
	"time"

	"github.com/ST10329226/Fakebook-SQL-MVC/models"

	"github.com/samber/lo"
)

// PostFilters holds the optional listing parameters. A zero field disables
// the corresponding stage.
type PostFilters struct {
	Search   string
	Username string
	DateFrom *time.Time
	DateTo   *time.Time
}

// FilterPosts applies the listing stages in order: free-text search over the
// post content and the owner's username (case-insensitive), exact author
// filter (case-sensitive), then the inclusive date range.
func FilterPosts(posts []models.Post, filters PostFilters) []models.Post {
	if filters.Search != "" {
		needle := strings.ToLower(filters.Search)
		posts = lo.Filter(posts, func(p models.Post, _ int) bool {
			return strings.Contains(strings.ToLower(p.Content), needle) ||
				strings.Contains(strings.ToLower(p.User.Username), needle)
		})
	}

	if filters.Username != "" {
		posts = lo.Filter(posts, func(p models.Post, _ int) bool {
			return p.User.Username == filters.Username
		})
	}

	if filters.DateFrom != nil {
		posts = lo.Filter(posts, func(p models.Post, _ int) bool {
			return !p.CreatedAt.Before(*filters.DateFrom)
		})
	}

	if filters.DateTo != nil {
		posts = lo.Filter(posts, func(p models.Post, _ int) bool {
			return !p.CreatedAt.After(*filters.DateTo)
		})
	}

	return posts
}

// SortPosts orders posts by creation time. Only "oldest" selects ascending
// order; every other value, including unknown ones, falls back to newest
// first.
func SortPosts(posts []models.Post, sortOrder string) {
	switch sortOrder {
	case "oldest":
		sort.SliceStable(posts, func(i, j int) bool {
			return posts[i].CreatedAt.Before(posts[j].CreatedAt)
		})
	default:
		sort.SliceStable(posts, func(i, j int) bool {
			return posts[i].CreatedAt.After(posts[j].CreatedAt)
		})
	}
}

// ParseDate reads a yyyy-mm-dd query value. Empty or unparseable values
// disable the bound instead of erroring.
func ParseDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil
	}
	return &t
}
