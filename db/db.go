package db

import (
	"os"

	"github.com/ST10329226/Fakebook-SQL-MVC/models"
	"github.com/ST10329226/Fakebook-SQL-MVC/utils"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	if err := godotenv.Load(); err != nil {
		utils.LogInfo("No .env file found, DB_URL must be set in the environment")
	}

	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		utils.LogError(nil, "DB_URL is not set")
		panic("database URL not configured")
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: utils.GetGormLogger(),
		// Map dialect errors to gorm.ErrDuplicatedKey / ErrForeignKeyViolated
		TranslateError: true,
	})
	if err != nil {
		utils.LogError(err, "Error connecting to the database")
		panic("could not connect to the database")
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
	)
	if err != nil {
		utils.LogError(err, "Error migrating database")
		panic("could not migrate database")
	}

	utils.LogSuccess("Database connection successful")
}
