package likes

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ST10329226/Fakebook-SQL-MVC/db"
	"github.com/ST10329226/Fakebook-SQL-MVC/models"
	"github.com/ST10329226/Fakebook-SQL-MVC/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @Summary Like a post
// @Description Record a like on a post by the authenticated user. Liking the same post twice is rejected by the store's uniqueness constraint.
// @Tags likes
// @Produce json
// @Param id path int true "Post ID"
// @Security BearerAuth
// @Success 201 {object} models.Like
// @Failure 400 {object} map[string]string "error: Invalid post ID"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Post not found"
// @Failure 409 {object} map[string]string "error: Post already liked"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /posts/{id}/likes [post]
func CreateLike(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	var post models.Post
	if err := db.DB.First(&post, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	like := models.Like{
		PostID: uint(postID),
		UserID: userID.(uint),
	}

	// No existence check up front: the unique index on (post_id, user_id) is
	// the arbiter, a duplicate surfaces as a constraint violation.
	if err := db.DB.Create(&like).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "Post already liked"})
			return
		}
		utils.LogError(err, "Error adding like")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error adding like: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, like)
}
