package comments

import (
	"net/http"
	"strconv"

	"github.com/ST10329226/Fakebook-SQL-MVC/db"
	"github.com/ST10329226/Fakebook-SQL-MVC/models"
	"github.com/ST10329226/Fakebook-SQL-MVC/utils"

	"github.com/gin-gonic/gin"
)

// @Summary List comments of a post
// @Description Retrieve the comments of a post, oldest first, each with its author
// @Tags comments
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} map[string]interface{} "comments"
// @Failure 400 {object} map[string]string "error: Invalid post ID"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /posts/{id}/comments [get]
func GetCommentsByPostID(c *gin.Context) {
	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	var comments []models.Comment
	if err := db.DB.Preload("User").Where("post_id = ?", postID).Order("created_at").Find(&comments).Error; err != nil {
		utils.LogError(err, "Error retrieving comments")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving comments: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// @Summary Comment on a post
// @Description Create a comment on a post as the authenticated user
// @Tags comments
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param comment body models.CommentCreate true "Comment content"
// @Security BearerAuth
// @Success 201 {object} models.Comment
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Post not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /posts/{id}/comments [post]
func CreateComment(c *gin.Context) {
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

	var input models.CommentCreate
	if !utils.ValidateRequestBody(c, &input) {
		return
	}

	var post models.Post
	if err := db.DB.First(&post, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	comment := models.Comment{
		PostID:  uint(postID),
		UserID:  userID.(uint),
		Content: input.Content,
	}

	if err := db.DB.Create(&comment).Error; err != nil {
		utils.LogError(err, "Error creating comment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating comment: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, comment)
}
