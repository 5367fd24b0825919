package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/mariahavens/restaurant-pos/config"
	"github.com/mariahavens/restaurant-pos/models"
	"github.com/mariahavens/restaurant-pos/router"
	"github.com/mariahavens/restaurant-pos/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	config.Load()
	utils.InitLogger(config.AppConfig.LogFile)

	if config.AppConfig.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("failed to connect to database: %v", err)
	}
	autoMigrate(db)

	r := router.SetupRouter(db)

	port := os.Getenv("PORT")
	if port == "" {
		port = config.AppConfig.Server.Port
	}
	utils.InfoLogger.Printf("listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.Staff{},
		&models.MenuCategory{},
		&models.MenuItem{},
		&models.Table{},
		&models.Order{},
		&models.OrderItem{},
		&models.Reservation{},
		&models.WaitingGuest{},
		&models.GuestCheckin{},
		&models.StaffPerformance{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("failed to run migrations: %v", err)
	}
	utils.InfoLogger.Println("migrations completed")
}
