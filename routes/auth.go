package routes

import (
	"github.com/ST10329226/Fakebook-SQL-MVC/handlers/auth"

	"github.com/gin-gonic/gin"
)

func AuthRoutes(r *gin.Engine) {
	r.POST("/login", auth.Login)
}
