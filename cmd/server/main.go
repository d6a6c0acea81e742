package main

import (
	"log"
	"net/http"
	"os"

	"github.com/rs/zerolog"

	"logitrack/internal/config"
	"logitrack/internal/logger"
	"logitrack/internal/middleware"
	"logitrack/internal/routes"
)

func main() {
	// Structured logging to a rotating file
	logger.Setup()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	// Connect and migrate
	config.InitDB()
	config.SeedAdmin()

	r := routes.SetupRouter()

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	addr := "0.0.0.0:" + port()
	log.Printf("server running at %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}

func port() string {
	if v := os.Getenv("PORT"); v != "" {
		return v
	}
	return "8080"
}
