package main

import (
	"context"
	"log"
	"os"

	"app/config"
	"app/routes"
	"app/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	// Load configuration
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	config.AppConfig = config.Config{
		JWTSecret:        jwtSecret,
		StoreBackend:     os.Getenv("STORE_BACKEND"),
		SpreadsheetID:    os.Getenv("SPREADSHEET_ID"),
		GoogleCredsJSON:  os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		OperatorEmail:    os.Getenv("OPERATOR_EMAIL"),
		OperatorPassHash: os.Getenv("OPERATOR_PASSWORD_HASH"),
	}

	// Initialize the tabular store
	ctx := context.Background()
	switch config.AppConfig.StoreBackend {
	case "postgres":
		if config.AppConfig.DatabaseURL == "" {
			log.Fatal("DATABASE_URL is not set")
		}
		pg, err := store.NewPostgres(ctx, config.AppConfig.DatabaseURL)
		if err != nil {
			log.Fatalf("Unable to connect to database: %v\n", err)
		}
		defer pg.Close()
		store.Use(pg)
	case "memory":
		store.Use(store.NewMemory())
		log.Println("Using in-memory store; data will not survive restarts")
	default:
		if config.AppConfig.SpreadsheetID == "" {
			log.Fatal("SPREADSHEET_ID is not set")
		}
		sh, err := store.NewSheets(ctx, config.AppConfig.SpreadsheetID, []byte(config.AppConfig.GoogleCredsJSON))
		if err != nil {
			log.Fatalf("Unable to connect to spreadsheet: %v\n", err)
		}
		store.Use(sh)
	}

	app := fiber.New()

	// Add CORS middleware
	app.Use(cors.New())

	// Setup routes
	routes.SetupRoutes(app)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	log.Fatal(app.Listen(":" + port))
}
