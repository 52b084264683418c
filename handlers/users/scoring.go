package users

import (
	"sort"
	"strings"

	"github.com/ST10329226/Fakebook-SQL-MVC/models"

	"github.com/samber/lo"
)

// Relevance weights for the free-text search stage.
const (
	usernameMatchScore = 100
	emailMatchScore    = 50
	bioMatchScore      = 10
)

// MatchScore computes the relevance of a user for a search term: 100 for a
// username hit, 50 for an email hit, 10 for a bio hit. Containment is
// case-insensitive, scores add up.
func MatchScore(user models.User, search string) int {
	needle := strings.ToLower(search)

	score := 0
	if strings.Contains(strings.ToLower(user.Username), needle) {
		score += usernameMatchScore
	}
	if strings.Contains(strings.ToLower(user.Email), needle) {
		score += emailMatchScore
	}
	if strings.Contains(strings.ToLower(user.Bio), needle) {
		score += bioMatchScore
	}
	return score
}

type scoredUser struct {
	user  models.User
	score int
}

// SearchUsers pairs every user with its match score, orders by descending
// score and keeps only users that matched at all. The relevance order is
// provisional: the sort stage that follows always reorders the result, so it
// only survives until then.
func SearchUsers(users []models.User, search string) []models.User {
	scored := lo.Map(users, func(u models.User, _ int) scoredUser {
		return scoredUser{user: u, score: MatchScore(u, search)}
	})

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	scored = lo.Filter(scored, func(s scoredUser, _ int) bool {
		return s.score > 0
	})

	return lo.Map(scored, func(s scoredUser, _ int) models.User {
		return s.user
	})
}
