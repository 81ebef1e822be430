package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/unicompare/unicompare-api/catalog"
	"github.com/unicompare/unicompare-api/handlers"
	university_handlers "github.com/unicompare/unicompare-api/handlers/university"
	"github.com/unicompare/unicompare-api/services"
	"github.com/unicompare/unicompare-api/utils/cache"
	"github.com/unicompare/unicompare-api/utils/middleware"
)

// SetupRoutes wires the middleware stack and the read-only university
// endpoints. redisCache may be nil when Redis is not configured.
func SetupRoutes(app *fiber.App, cat *catalog.Catalog, redisCache *cache.RedisCache, allowedOrigins string) *services.UniversityService {
	if allowedOrigins == "" {
		allowedOrigins = "http://localhost:3000,http://localhost:3001"
	}

	middleware.SetupSecurity(app, middleware.SecurityConfig{
		AllowedOrigins:    allowedOrigins,
		RateLimitRequests: 100,             // 100 requests
		RateLimitWindow:   1 * time.Minute, // per minute
	})

	universityService := services.NewUniversityService(cat)
	universityHandler := university_handlers.NewUniversityHandler(universityService, redisCache)

	// Health check endpoint (public)
	app.Get("/ping", handlers.HandleCheckHealth(cat))

	// API v1 group
	api := app.Group("/api/v1")

	// Universities routes (all public, read-only)
	universities := api.Group("/universities")
	universities.Get("/", universityHandler.ListUniversities)           // List with filters, sort, pagination
	universities.Get("/compare", universityHandler.CompareUniversities) // Compare exactly two by id
	universities.Get("/:id", universityHandler.GetUniversity)           // Single record by id

	return universityService
}
