package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/evently-hq/evently/internal/api"
	"github.com/evently-hq/evently/internal/auth"
	"github.com/evently-hq/evently/internal/config"
	"github.com/evently-hq/evently/internal/repositories"
)

// @title Evently API
// @version 1.0
// @description Personal event tracker: register, log in, and manage your own dated events.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Connect to database
	repositories.ConnectDatabase()

	users := repositories.NewUserStore(repositories.DB)
	events := repositories.NewEventStore(repositories.DB)
	tokens := auth.NewTokenService([]byte(config.Envs.JWTSecret), config.Envs.JWTExpiry)

	mux := api.SetupRouter(users, events, tokens)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", config.Envs.Port),
		Handler: mux,
		// Timeouts prevent resource exhaustion from slow clients
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Starting Evently server on port: %s", config.Envs.Port)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Could not listen on port %s: %v", config.Envs.Port, err)
	}
}
