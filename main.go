package main

import (
	"log"

	"github.com/ST10329226/Fakebook-SQL-MVC/db"
	_ "github.com/ST10329226/Fakebook-SQL-MVC/docs"
	"github.com/ST10329226/Fakebook-SQL-MVC/routes"

	"github.com/gin-gonic/gin"
)

// @title Fakebook API
// @version 1.0
// @description Browse API for the Fakebook social network
// @host localhost:8080
// @BasePath /
// @SecurityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter the JWT with the Bearer prefix: Bearer <JWT>
func main() {
	gin.SetMode(gin.ReleaseMode)

	db.InitDB()

	r := routes.SetupRouter()

	if err := r.Run(":8080"); err != nil {
		log.Fatal("Error starting the server:", err)
	}
}
