package auth

import (
	"net/http"

	"github.com/ST10329226/Fakebook-SQL-MVC/db"
	"github.com/ST10329226/Fakebook-SQL-MVC/models"
	"github.com/ST10329226/Fakebook-SQL-MVC/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// @Summary Log in
// @Description Authenticate with email and password, returns a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body models.UserLogin true "Credentials"
// @Success 200 {object} map[string]string "token"
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Invalid email or password"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /login [post]
func Login(c *gin.Context) {
	var input models.UserLogin
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	var user models.User
	if err := db.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := utils.GenerateJWT(user, 24)
	if err != nil {
		utils.LogError(err, "Error generating token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error generating token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
