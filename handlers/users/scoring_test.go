package users

import (
	"testing"
	"time"

	"github.com/ST10329226/Fakebook-SQL-MVC/models"

	"github.com/stretchr/testify/assert"
)

func searchFixture() []models.User {
	now := time.Now()
	return []models.User{
		{ID: 1, Username: "alice", Email: "a@example.com", Bio: "gardener", CreatedAt: now},
		{ID: 2, Username: "bob", Email: "team.alice@example.com", Bio: "rider", CreatedAt: now},
		{ID: 3, Username: "carol", Email: "c@example.com", Bio: "friend of alice", CreatedAt: now},
		{ID: 4, Username: "dave", Email: "d@example.com", Bio: "nothing in common", CreatedAt: now},
	}
}

func TestMatchScore_Weights(t *testing.T) {
	users := searchFixture()

	assert.Equal(t, 100, MatchScore(users[0], "alice"))
	assert.Equal(t, 50, MatchScore(users[1], "alice"))
	assert.Equal(t, 10, MatchScore(users[2], "alice"))
	assert.Equal(t, 0, MatchScore(users[3], "alice"))
}

func TestMatchScore_AddsUpAcrossFields(t *testing.T) {
	user := models.User{Username: "alice", Email: "alice@example.com", Bio: "alice writes here"}

	assert.Equal(t, 160, MatchScore(user, "alice"))
}

func TestMatchScore_CaseInsensitive(t *testing.T) {
	user := models.User{Username: "Alice", Email: "x@example.com"}

	assert.Equal(t, 100, MatchScore(user, "aLiCe"))
}

func TestSearchUsers_ExcludesNonMatchesAndRanksByScore(t *testing.T) {
	got := SearchUsers(searchFixture(), "alice")

	// dave has no match in any field
	assert.Len(t, got, 3)
	// username hit > email hit > bio hit
	assert.Equal(t, "alice", got[0].Username)
	assert.Equal(t, "bob", got[1].Username)
	assert.Equal(t, "carol", got[2].Username)
}

func TestSearchUsers_RelevanceOrderIsDiscardedByExplicitSort(t *testing.T) {
	users := SearchUsers(searchFixture(), "alice")
	SortUsers(users, "username_desc")

	assert.Equal(t, "carol", users[0].Username)
	assert.Equal(t, "bob", users[1].Username)
	assert.Equal(t, "alice", users[2].Username)
}
