package routes

import (
	"github.com/ST10329226/Fakebook-SQL-MVC/handlers/users"
	"github.com/ST10329226/Fakebook-SQL-MVC/middleware"

	"github.com/gin-gonic/gin"
)

func UsersRoutes(r *gin.Engine) {
	r.GET("/users", users.GetAllUsers)
	r.POST("/register", users.CreateUser)

	usersRoutes := r.Group("/users")
	usersRoutes.Use(middleware.JWTAuth())
	{
		usersRoutes.GET("/profile", users.GetUserProfile)
	}
}
