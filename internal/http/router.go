// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging, panic recovery, metrics, compression,
// CORS, security headers, and rate limiting.
//
// Design goals:
//   - Put observability first (OTel + Prometheus)
//   - Safe-by-default middleware ordering (RequestID → logging → recovery)
//   - Deterministic, minimal router setup; all dependencies injected
//   - Production-ready CORS and security header posture
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerfiles "github.com/swaggo/files"
	ginswagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	_ "github.com/recipedeck/go-recipe-backend/docs"
	"github.com/recipedeck/go-recipe-backend/internal/clients"
	"github.com/recipedeck/go-recipe-backend/internal/clients/spoonacular"
	"github.com/recipedeck/go-recipe-backend/internal/clients/youtube"
	"github.com/recipedeck/go-recipe-backend/internal/config"
	"github.com/recipedeck/go-recipe-backend/internal/domain"
	"github.com/recipedeck/go-recipe-backend/internal/http/handlers"
	"github.com/recipedeck/go-recipe-backend/internal/http/middleware"
	"github.com/recipedeck/go-recipe-backend/internal/repo"
	"github.com/recipedeck/go-recipe-backend/internal/services"
	"github.com/recipedeck/go-recipe-backend/internal/upload"
)

// recipeRepoShim adapts the repository free functions to the
// services.RecipeRepo interface expected by the RecipeService. This keeps
// services decoupled from the concrete repo package while reusing existing
// functions.
type recipeRepoShim struct{}

// CreateRecipe proxies repo.CreateRecipe.
func (recipeRepoShim) CreateRecipe(ctx context.Context, db *gorm.DB, title, ingredients, instructions, category string) (*domain.Recipe, error) {
	return repo.CreateRecipe(ctx, db, title, ingredients, instructions, category)
}

// ListRecipes proxies repo.ListRecipes.
func (recipeRepoShim) ListRecipes(ctx context.Context, db *gorm.DB) ([]domain.Recipe, error) {
	return repo.ListRecipes(ctx, db)
}

// GetRecipe proxies repo.GetRecipe.
func (recipeRepoShim) GetRecipe(ctx context.Context, db *gorm.DB, id uint) (*domain.Recipe, error) {
	return repo.GetRecipe(ctx, db, id)
}

// UpdateRecipe proxies repo.UpdateRecipe.
func (recipeRepoShim) UpdateRecipe(ctx context.Context, db *gorm.DB, id uint, title, ingredients, instructions string) error {
	return repo.UpdateRecipe(ctx, db, id, title, ingredients, instructions)
}

// DeleteRecipe proxies repo.DeleteRecipe.
func (recipeRepoShim) DeleteRecipe(ctx context.Context, db *gorm.DB, id uint) error {
	return repo.DeleteRecipe(ctx, db, id)
}

// SearchRecipesByTitle proxies repo.SearchRecipesByTitle.
func (recipeRepoShim) SearchRecipesByTitle(ctx context.Context, db *gorm.DB, substring string) ([]domain.Recipe, error) {
	return repo.SearchRecipesByTitle(ctx, db, substring)
}

// discussionRepoShim adapts the repository free functions to
// services.DiscussionRepo.
type discussionRepoShim struct{}

// CreateDiscussion proxies repo.CreateDiscussion.
func (discussionRepoShim) CreateDiscussion(ctx context.Context, db *gorm.DB, username, content string, imageURL *string) (*domain.Discussion, error) {
	return repo.CreateDiscussion(ctx, db, username, content, imageURL)
}

// ListDiscussions proxies repo.ListDiscussions.
func (discussionRepoShim) ListDiscussions(ctx context.Context, db *gorm.DB) ([]domain.Discussion, error) {
	return repo.ListDiscussions(ctx, db)
}

// userRepoShim adapts the repository free functions to services.UserRepo.
type userRepoShim struct{}

// CreateUser proxies repo.CreateUser.
func (userRepoShim) CreateUser(ctx context.Context, db *gorm.DB, username, passwordHash string) (*domain.User, error) {
	return repo.CreateUser(ctx, db, username, passwordHash)
}

// GetUserByUsername proxies repo.GetUserByUsername.
func (userRepoShim) GetUserByUsername(ctx context.Context, db *gorm.DB, username string) (*domain.User, error) {
	return repo.GetUserByUsername(ctx, db, username)
}

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine. It configures observability (tracing, metrics), rate limiting,
// CORS and security headers, health and metrics endpoints, and then mounts
// the versioned public API under /api/v*.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. Logger: structured request logs
//  4. Recovery: capture panics after logger
//  5. Body size limiter (uploads need room for images)
//  6. Gzip compression for responses
//  7. Metrics
//  8. Rate limiter (per IP)
//  9. CORS and Security headers
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured request logging
	r.Use(middleware.Logger())

	// 4) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Global body size limit (8 MiB; image uploads included)
	r.Use(limitBody(8 << 20))

	// 6) Response compression
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// 7) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 8) Token-bucket rate limiter per client IP
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByIP())
	r.Use(rl.Handler())

	// 9) CORS posture (safe defaults: allow all if none configured)
	if len(cfg.CORS.AllowedOrigins) == 0 {
		// Force ACAO: * even for requests without an Origin header (helps tests and simple health checks).
		r.Use(func(c *gin.Context) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length", "Content-Disposition"},
			AllowCredentials: false, // must remain false with AllowAllOrigins
			MaxAge:           12 * time.Hour,
		}))
	} else {
		// Echo ACAO with the request Origin when it is in the allowlist (in addition to gin-contrib/cors).
		allowed := make(map[string]struct{}, len(cfg.CORS.AllowedOrigins))
		for _, o := range cfg.CORS.AllowedOrigins {
			allowed[o] = struct{}{}
		}
		r.Use(func(c *gin.Context) {
			if origin := c.GetHeader("Origin"); origin != "" {
				if _, ok := allowed[origin]; ok {
					h := c.Writer.Header()
					h.Set("Access-Control-Allow-Origin", origin)
					h.Add("Vary", "Origin")
				}
			}
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length", "Content-Disposition"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Security headers (HSTS only when enabled and request is HTTPS)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		NoStore:      false,
		EnablePolicy: true,
	}))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	// Liveness/health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Dependency injection: services ← repo/db/clients
	recipeSvc := services.NewRecipeService(db, recipeRepoShim{})
	discSvc := services.NewDiscussionService(db, discussionRepoShim{})
	userSvc := services.NewUserService(db, userRepoShim{})

	httpClient := clients.DefaultHTTPClient(cfg.HTTPClientTimeout)
	videoSvc := youtube.New(cfg.YouTubeAPIKey, httpClient)
	suggestSvc := spoonacular.New(cfg.SpoonacularAPIKey, httpClient)

	uploads := upload.NewStore(cfg.UploadDir)

	h := handlers.New(recipeSvc, discSvc, userSvc, videoSvc, suggestSvc, uploads)

	// Public API
	apiBase := cfg.APIBasePath // e.g. "/api/v1"
	api := groupWithPrefix(r, apiBase)
	{
		// Recipes
		api.POST("/recipes", h.CreateRecipe)
		api.GET("/recipes", h.ListRecipes)
		api.GET("/recipes/search", h.SearchRecipes)
		api.GET("/recipes/suggestions", h.SuggestRecipes)
		api.GET("/recipes/:id", h.GetRecipe)
		api.PUT("/recipes/:id", h.UpdateRecipe)
		api.DELETE("/recipes/:id", h.DeleteRecipe)

		// Discussion forum
		api.GET("/discussions", h.ListDiscussions)
		api.POST("/discussions", h.PostDiscussion)

		// Users
		api.POST("/users", h.RegisterUser)

		// Cooking videos
		api.GET("/videos/search", h.SearchVideos)
		api.GET("/videos/top", h.TopVideos)

		// Trivia quiz
		api.GET("/quiz/questions", h.QuizQuestions)
		api.POST("/quiz/score", h.ScoreQuiz)
		api.POST("/quiz/certificate", h.QuizCertificate)

		// Uploads
		api.POST("/uploads", h.UploadImage)
	}

	// Stored images (originals and thumbnails) are served as static files.
	r.Static("/uploads", cfg.UploadDir)

	// Swagger UI (flag-gated; off by default)
	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginswagger.WrapHandler(swaggerfiles.Handler))
	}
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints to maxBytes using http.MaxBytesReader. Requests exceeding the cap
// will cause downstream body reads to error.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
