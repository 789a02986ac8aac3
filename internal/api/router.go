package api

import (
	"fmt"
	"log"
	"net/http"

	_ "github.com/evently-hq/evently/docs"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/evently-hq/evently/internal/api/handlers"
	"github.com/evently-hq/evently/internal/api/middleware"
	"github.com/evently-hq/evently/internal/auth"
	"github.com/evently-hq/evently/internal/config"
	"github.com/evently-hq/evently/internal/repositories"
	"github.com/rs/cors"
)

func SetupRouter(users repositories.UserStore, events repositories.EventStore, tokens *auth.TokenService) http.Handler {
	mainMux := http.NewServeMux()
	c := cors.New(config.Envs.CorsConfig)

	authHandler := handlers.NewAuthHandler(users, tokens)
	eventHandler := handlers.NewEventHandler(events)
	userHandler := handlers.NewUserHandler(users)

	// ---------- PUBLIC ROUTES ----------
	mainMux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	})

	mainMux.HandleFunc("/docs/", httpSwagger.WrapHandler)

	authMux := http.NewServeMux()
	authMux.HandleFunc("/register", authHandler.Register)
	authMux.HandleFunc("/login", authHandler.Login)
	authMux.HandleFunc("/logout", authHandler.Logout)

	mainMux.Handle("/api/v1/auth/",
		http.StripPrefix("/api/v1/auth", authMux),
	)

	// ---------- PROTECTED ROUTES ----------
	protectedMux := http.NewServeMux()

	protectedMux.HandleFunc("GET /events", eventHandler.ListEvents)
	protectedMux.HandleFunc("POST /events", eventHandler.CreateEvent)
	protectedMux.HandleFunc("GET /events/{id}", eventHandler.GetEvent)
	protectedMux.HandleFunc("PUT /events/{id}", eventHandler.UpdateEvent)
	protectedMux.HandleFunc("DELETE /events/{id}", eventHandler.DeleteEvent)

	protectedMux.HandleFunc("GET /users/profile", userHandler.GetProfile)
	protectedMux.HandleFunc("PUT /users/profile", userHandler.UpdateProfile)

	mainMux.Handle("/api/v1/",
		http.StripPrefix(
			"/api/v1",
			middleware.AuthMiddleware(tokens, protectedMux),
		),
	)

	log.Println("Router initialized")
	handler := c.Handler(mainMux)
	handler = middleware.Logger(handler)
	return handler
}
