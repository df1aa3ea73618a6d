package rest

import (
	"net/http"
	"os"

	"thozhahub/internal/service"
	"thozhahub/internal/transport/rest/handler"
	"thozhahub/internal/transport/rest/middleware"
	"thozhahub/internal/transport/ws"

	"github.com/gorilla/mux"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService    *service.AuthService
	ProfileService *service.ProfileService
	WSHub          *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	profileHandler := handler.NewProfileHandler(c.ProfileService)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/register", authHandler.Register).Methods("POST", "OPTIONS")
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")

	// WebSocket route (public with token in query param)
	v1.HandleFunc("/ws/profile", wsHandler.ProfileWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Profile routes (require user auth)
	profileRoutes := v1.NewRoute().Subrouter()
	profileRoutes.Use(authMW.RequireUser)

	profileRoutes.HandleFunc("/profile/questions", profileHandler.Questions).Methods("GET", "OPTIONS")
	profileRoutes.HandleFunc("/profile/questionnaire", profileHandler.SubmitQuestionnaire).Methods("POST", "OPTIONS")
	profileRoutes.HandleFunc("/profile/results", profileHandler.Results).Methods("GET", "OPTIONS")
	profileRoutes.HandleFunc("/profile/adaptive/start", profileHandler.AdaptiveStart).Methods("GET", "OPTIONS")
	profileRoutes.HandleFunc("/profile/adaptive/next", profileHandler.AdaptiveNext).Methods("POST", "OPTIONS")
	profileRoutes.HandleFunc("/profile/adaptive/submit", profileHandler.AdaptiveSubmit).Methods("POST", "OPTIONS")
	profileRoutes.HandleFunc("/profile/adaptive/results", profileHandler.AdaptiveResults).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
