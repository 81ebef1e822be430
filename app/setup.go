package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/unicompare/unicompare-api/api"
	"github.com/unicompare/unicompare-api/catalog"
	"github.com/unicompare/unicompare-api/config"
	"github.com/unicompare/unicompare-api/database"
	"github.com/unicompare/unicompare-api/router"
	"github.com/unicompare/unicompare-api/services/cron"
	"github.com/unicompare/unicompare-api/utils/cache"
	"gorm.io/gorm"
)

func SetupAndRunServer() error {

	// Load ENV
	if err := config.LoadENV(); err != nil {
		return err
	}

	getEnv, err := config.Get()
	if err != nil {
		return err
	}

	// Load the catalog exactly once. A failed load is fatal: the
	// service never runs with a partial catalog.
	cat, err := loadCatalog(getEnv)
	if err != nil {
		return err
	}
	log.Printf("Loaded %d universities from %s catalog source", cat.Len(), getEnv.CATALOG_SOURCE)

	// Optional response cache. Missing Redis only disables caching.
	var redisCache *cache.RedisCache
	if getEnv.REDIS_URL != "" {
		redisCache, err = cache.NewRedisCache(getEnv.REDIS_URL)
		if err != nil {
			log.Printf("Warning: Failed to connect to Redis: %v. Response caching will be disabled.", err)
			redisCache = nil
		}
	}

	// Init API
	var server *api.APIServer = api.NewAPIServer(fmt.Sprintf(":%d", getEnv.PORT))
	app := server.GetEngine()

	// Setup Routes (middleware included)
	universityService := router.SetupRoutes(app, cat, redisCache, getEnv.ALLOWED_ORIGINS)

	// Cache revalidation cron (only useful when Redis is present)
	var cronManager *cron.CronManager
	if redisCache != nil && os.Getenv("CRON_ENABLED") != "false" { // Default to enabled
		cronManager = cron.NewCronManager(universityService, redisCache)
		if err := cronManager.Start(); err != nil {
			log.Println("Warning: Failed to start cron jobs:", err)
			// Don't fail the app, just log the warning
			cronManager = nil
		}
	}

	// Defer stopping cron jobs and closing the cache connection
	defer func() {
		if cronManager != nil {
			cronManager.Stop()
		}
		if redisCache != nil {
			redisCache.Close()
		}
	}()

	// Get the PORT & Start the Server
	return server.Run()
}

// loadCatalog builds the configured catalog source and loads the
// records. The postgres source closes its connection as soon as the
// catalog is in memory; the serving path never queries the database.
func loadCatalog(getEnv *config.EnvironmentVariable) (*catalog.Catalog, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch getEnv.CATALOG_SOURCE {
	case "static":
		return catalog.FromSource(ctx, catalog.StaticSource{})

	case "postgres":
		store, err := database.StartGORM()
		if err != nil {
			print("Check whether the Postgres is running or not\n")
			return nil, err
		}
		defer store.Close()

		db, ok := store.GetDB().(*gorm.DB)
		if !ok {
			return nil, fmt.Errorf("failed to get GORM DB instance")
		}
		return catalog.FromSource(ctx, catalog.NewGORMSource(db))

	case "spaces":
		src, err := catalog.NewSpacesSource(catalog.SpacesConfig{
			AccessKey: getEnv.SPACES_ACCESS_KEY,
			SecretKey: getEnv.SPACES_SECRET_KEY,
			Bucket:    getEnv.SPACES_BUCKET,
			Region:    getEnv.SPACES_REGION,
			Endpoint:  getEnv.SPACES_ENDPOINT,
			Key:       getEnv.SPACES_KEY,
		})
		if err != nil {
			return nil, err
		}
		return catalog.FromSource(ctx, src)

	default:
		return nil, fmt.Errorf("unknown CATALOG_SOURCE %q (want static, postgres or spaces)", getEnv.CATALOG_SOURCE)
	}
}
