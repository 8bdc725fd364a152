package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/rmccall/shelftrack-golang/internal/database"
	"github.com/rmccall/shelftrack-golang/internal/handlers"
	"github.com/rmccall/shelftrack-golang/internal/routes"
)

func main() {
	// 0. --- Load Environment Variables (.env) ---
	if err := godotenv.Load(); err != nil {
		logrus.Warn("Could not find or load .env file. Relying on system environment variables.")
	}

	// 1. --- Database Connection ---
	db, err := database.OpenDB()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to open database")
	}
	defer db.Close()

	// 2. --- Schema Lifecycle ---
	// Every other operation depends on the tables existing, so a
	// failure here is non-recoverable.
	schema := database.NewSchemaManager(db, database.DefaultSchema)
	if err := schema.Initialize(); err != nil {
		logrus.WithError(err).Fatal("Failed to initialize database schema")
	}

	// --- Application Setup ---
	app := handlers.New(db)

	// --- Router Setup ---
	router := routes.SetupRouter(app)

	// --- Start Server ---
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logrus.WithField("port", port).Info("Starting ShelfTrack API server")
	if err := router.Run(":" + port); err != nil {
		logrus.WithError(err).Fatal("Failed to start server")
	}
}
