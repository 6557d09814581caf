package main

import (
	"log"
	"time"

	"github.com/Gkeerthanasilkskanchi/silks-api/config"
	"github.com/Gkeerthanasilkskanchi/silks-api/repository"
	"github.com/Gkeerthanasilkskanchi/silks-api/routes"
	"github.com/Gkeerthanasilkskanchi/silks-api/store"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func main() {
	cfg := config.Load()

	st, err := newStore(cfg)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	repos := repository.New(st)

	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "https://www.gkeerthanasilks.in"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	server.Static("/uploads", cfg.UploadsDir)
	routes.SetupRoutes(server, routes.Deps{Config: cfg, Repos: repos})

	if err := server.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// newStore picks the persistence backend. MySQL is the default; the sheets
// backend talks to the Google spreadsheet the catalog originally lived in.
func newStore(cfg config.Config) (store.Store, error) {
	if cfg.StoreBackend == "sheets" {
		return store.NewSheetStore(cfg.SpreadsheetID, cfg.SheetsToken), nil
	}

	db, err := gorm.Open(mysql.Open(cfg.MySQLDSN), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return store.NewSQLStore(db)
}
