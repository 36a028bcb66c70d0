package main

import (
	"log"

	appfx "searchlens/internal/fx"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		appfx.ConfigModule,  // Provides: config.Config (EXA_API_KEY required)
		appfx.ScraperModule, // Provides: *scraper.Scraper
		appfx.SearchModule,  // Provides: providers + *search.Registry
		appfx.CoreModule,    // Provides: *core.CompareCore
		appfx.ServerModule,  // Starts the HTTP server

		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.ConsoleLogger{W: log.Writer()}
		}),
	)

	// Run blocks until the app receives a shutdown signal
	app.Run()
}
