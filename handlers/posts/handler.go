package posts

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

// @Summary List posts
// @Description Retrieve posts with optional search, author filter, date range and sort order. Each post carries its owning user, and the response includes the distinct username list for the filter control.
// @Tags posts
// @Produce json
// @Param searchString query string false "Case-insensitive match on post content or author username"
// @Param usernameFilter query string false "Exact author username"
// @Param dateFrom query string false "Inclusive lower bound (yyyy-mm-dd)"
// @Param dateTo query string false "Inclusive upper bound (yyyy-mm-dd)"
// @Param sortOrder query string false "oldest for ascending; anything else newest first"
// @Success 200 {object} map[string]interface{} "posts, usernames"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /posts [get]
func GetAllPosts(c *gin.Context) {
	var posts []models.Post
	if err := db.DB.Preload("User").Find(&posts).Error; err != nil {
		utils.LogError(err, "Error retrieving posts")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving posts: " + err.Error()})
		return
	}

	posts = FilterPosts(posts, PostFilters{
		Search:   c.Query("searchString"),
		Username: c.Query("usernameFilter"),
		DateFrom: ParseDate(c.Query("dateFrom")),
		DateTo:   ParseDate(c.Query("dateTo")),
	})
	SortPosts(posts, c.Query("sortOrder"))

	// The dropdown lists every known author, not just the matching ones.
	var usernames []string
	if err := db.DB.Model(&models.User{}).Distinct().Order("username").Pluck("username", &usernames).Error; err != nil {
		utils.LogError(err, "Error retrieving usernames")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving usernames: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"posts":     posts,
		"usernames": usernames,
	})
}

// @Summary Get a post by ID
// @Description Retrieve a post and its owning user by post ID
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} models.Post
// @Failure 400 {object} map[string]string "error: Invalid post ID"
// @Failure 404 {object} map[string]string "error: Post not found"
// @Router /posts/{id} [get]
func GetPostByID(c *gin.Context) {
	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	var post models.Post
	if err := db.DB.Preload("User").First(&post, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	c.JSON(http.StatusOK, post)
}

// @Summary Create a new post
// @Description Create a post owned by the authenticated user
// @Tags posts
// @Accept json
// @Produce json
// @Param post body models.PostCreate true "Post content"
// @Security BearerAuth
// @Success 201 {object} models.Post
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /posts [post]
func CreatePost(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var input models.PostCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	post := models.Post{
		UserID:  userID.(uint),
		Content: input.Content,
	}

	if err := db.DB.Create(&post).Error; err != nil {
		utils.LogError(err, "Error creating post")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating post: " + err.Error()})
		return
	}

	if err := db.DB.Preload("User").First(&post, "id = ?", post.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving created post: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, post)
}

// @Summary Delete a post
// @Description Delete a post owned by the authenticated user. The delete is blocked while comments or likes still reference the post.
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Post deleted successfully"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Not authorized to delete this post"
// @Failure 404 {object} map[string]string "error: Post not found"
// @Failure 409 {object} map[string]string "error: Post still has comments or likes"
// @Router /posts/{id} [delete]
func DeletePost(c *gin.Context) {
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

	if post.UserID != userID.(uint) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to delete this post"})
		return
	}

	if err := db.DB.Delete(&post).Error; err != nil {
		// Foreign keys are declared NO ACTION, the store refuses the delete
		// while dependent rows exist.
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			c.JSON(http.StatusConflict, gin.H{"error": "Post still has comments or likes"})
			return
		}
		utils.LogError(err, "Error deleting post")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting post: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}
