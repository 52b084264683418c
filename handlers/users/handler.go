package users

import (
	"errors"
	"net/http"

	"github.com/ST10329226/Fakebook-SQL-MVC/db"
	"github.com/ST10329226/Fakebook-SQL-MVC/models"
	"github.com/ST10329226/Fakebook-SQL-MVC/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// @Summary List users
// @Description Retrieve users with optional scored search, email-domain filter and sort order. The response includes the email-domain facet and the fixed sort options for the filter controls.
// @Tags users
// @Produce json
// @Param searchString query string false "Weighted match over username, email and bio"
// @Param emailDomainFilter query string false "Suffix match on the email address"
// @Param sortOrder query string false "username_asc, username_desc, email_asc, email_desc; anything else newest first"
// @Success 200 {object} map[string]interface{} "users, emailDomains, sortOptions"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /users [get]
func GetAllUsers(c *gin.Context) {
	var users []models.User
	if err := db.DB.Find(&users).Error; err != nil {
		utils.LogError(err, "Error retrieving users")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving users: " + err.Error()})
		return
	}

	if search := c.Query("searchString"); search != "" {
		users = SearchUsers(users, search)
	}
	if domain := c.Query("emailDomainFilter"); domain != "" {
		users = FilterByEmailDomain(users, domain)
	}
	SortUsers(users, c.Query("sortOrder"))

	// The facet covers every known user, not just the matching ones.
	var emails []string
	if err := db.DB.Model(&models.User{}).Pluck("email", &emails).Error; err != nil {
		utils.LogError(err, "Error retrieving email domains")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving email domains: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users":        users,
		"emailDomains": EmailDomains(emails),
		"sortOptions":  SortOptions(),
	})
}

// @Summary Register a new user
// @Description Create a user account with a hashed password
// @Tags users
// @Accept json
// @Produce json
// @Param user body models.UserRegister true "User information"
// @Success 201 {object} map[string]interface{} "message: User created successfully, email: user email"
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 409 {object} map[string]string "error: Username or email already used"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /register [post]
func CreateUser(c *gin.Context) {
	var input models.UserRegister
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error hashing password"})
		return
	}

	user := models.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		Bio:          input.Bio,
	}

	if err := db.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "Username or email already used"})
			return
		}
		utils.LogError(err, "Error creating user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating user: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"email":   user.Email,
	})
}

// @Summary Get the current user's profile
// @Description Retrieve the profile of the authenticated user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "user"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: User not found"
// @Router /users/profile [get]
func GetUserProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var user models.User
	if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
