package api

import (
	"net/http"
	"time"

	"outfit_advisor/internal/api/handler"
	"outfit_advisor/internal/app/service"
	"outfit_advisor/internal/common"
	"outfit_advisor/internal/common/security"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	authService *service.AuthService,
	recommendationService *service.RecommendationService,
	tokens *security.TokenManager,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger) // Chi's logger
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	// Verifies the session token from "Authorization: Bearer T" or the jwt
	// cookie and puts claims in context. Routes opt in to enforcement via
	// middleware.Authenticator.
	r.Use(jwtauth.Verifier(tokens.Auth()))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		common.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	sessionSecs := int(tokens.SessionDuration() / time.Second)
	authHandler := handler.NewAuthHandler(authService, sessionSecs)
	authHandler.RegisterRoutes(r)

	recommendHandler := handler.NewRecommendHandler(recommendationService)
	recommendHandler.RegisterRoutes(r)

	return r
}
