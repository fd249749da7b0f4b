package app

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/user/nutritrack-go/docs" // registers the Swagger docs

	"github.com/user/nutritrack-go/auth"
	"github.com/user/nutritrack-go/config"
	"github.com/user/nutritrack-go/foods"
	"github.com/user/nutritrack-go/middleware"
	"github.com/user/nutritrack-go/tracking"
	"github.com/user/nutritrack-go/users"
)

// requestTimeout bounds every request, store calls included.
const requestTimeout = 60 * time.Second

// App is the assembled application.
type App struct {
	Router http.Handler
	// Sessions is nil when the stateful login variant is disabled.
	Sessions *auth.SessionManager
	Limiter  *middleware.RateLimiter
	Metrics  *middleware.Metrics
}

// New builds the services and the router on top of store.
func New(cfg *config.AppConfig, store *Store, logger logrus.FieldLogger) *App {
	// Services, with their dependencies injected by hand.
	var sessions *auth.SessionManager
	if cfg.Session.Enabled {
		sessions = auth.NewSessionManager(store.Sessions, *cfg.Session)
	}
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	authService := auth.NewAuthService(store.Users, auth.NewPasswordHasher(), tokens, sessions)
	foodService := foods.NewService(store.Foods, cfg.Auth.AdminUserIDs)
	trackingService := tracking.NewService(store.Tracking, foodService)
	userService := users.NewUserService(store.Users)

	// Handlers (controllers).
	authHandlers := auth.NewHandlers(authService)
	foodHandlers := foods.NewHandlers(foodService)
	trackingHandlers := tracking.NewHandlers(trackingService)
	userHandlers := users.NewUserHandlers(userService)

	metrics := middleware.NewMetrics()
	limiter := middleware.NewRateLimiter(cfg.Auth.RateLimitPerMinute)

	r := chi.NewRouter()

	// Chi requires all middleware to be registered before any routes.
	r.Use(chimw.RequestID)
	// RealIP rewrites RemoteAddr from client-controlled headers, and the rate limiter
	// keys on RemoteAddr, so it only runs when a trusted proxy sets those headers.
	if cfg.Server.TrustForwardedHeaders {
		r.Use(chimw.RealIP)
	}
	r.Use(middleware.RequestLogger(logger))
	r.Use(metrics.Instrument)
	r.Use(middleware.Recoverer)
	r.Use(chimw.Timeout(requestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Origin", "X-Requested-With", "token"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		auth.WriteJSON(w, http.StatusOK, auth.MessageResponse{Message: "Hello welcome"})
	})
	r.Get("/healthz", healthHandler(store))
	r.Handle("/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Credential routes: public, rate limited per client IP.
	r.Group(func(r chi.Router) {
		r.Use(limiter.Handler)
		r.Post("/register", authHandlers.HandleRegister())
		r.Post("/login", authHandlers.HandleLogin())
	})
	r.Post("/logout", authHandlers.HandleLogout())

	// Everything else requires a bearer token.
	r.Group(func(r chi.Router) {
		r.Use(auth.JWTMiddleware(tokens))

		r.Get("/foods", foodHandlers.HandleListFoods())
		r.Get("/food/{name}", foodHandlers.HandleSearchFoods())
		r.Post("/addfood", foodHandlers.HandleAddFood())

		r.Post("/track", trackingHandlers.HandleTrack())
		r.Get("/track/{userId}/{date}", trackingHandlers.HandleListTracked())

		r.Get("/users/me", userHandlers.HandleGetUserProfile())
	})

	return &App{
		Router:   r,
		Sessions: sessions,
		Limiter:  limiter,
		Metrics:  metrics,
	}
}

type healthResponse struct {
	Status string `json:"status"`
}

func healthHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			auth.WriteJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
			return
		}
		auth.WriteJSON(w, http.StatusOK, healthResponse{Status: "ok"})
	}
}
