package cron

import (
	"log"

	"github.com/robfig/cron/v3"
	"github.com/unicompare/unicompare-api/services"
	"github.com/unicompare/unicompare-api/utils/cache"
)

// CronManager manages the scheduled background jobs. With an immutable
// catalog the only recurring work is keeping the response cache warm.
type CronManager struct {
	cron    *cron.Cron
	service *services.UniversityService
	cache   *cache.RedisCache
}

// NewCronManager creates a new cron manager
func NewCronManager(service *services.UniversityService, redisCache *cache.RedisCache) *CronManager {
	// Create cron with seconds precision
	c := cron.New(cron.WithSeconds())

	return &CronManager{
		cron:    c,
		service: service,
		cache:   redisCache,
	}
}

// Start starts all cron jobs
func (m *CronManager) Start() error {
	log.Println("Starting cron jobs...")

	// Register all jobs
	if err := m.registerJobs(); err != nil {
		return err
	}

	// Start the cron scheduler
	m.cron.Start()

	log.Println("Cron jobs started successfully")
	return nil
}

// Stop stops all cron jobs
func (m *CronManager) Stop() {
	log.Println("Stopping cron jobs...")
	ctx := m.cron.Stop()
	<-ctx.Done()
	log.Println("Cron jobs stopped")
}

// registerJobs registers all cron jobs with their schedules
func (m *CronManager) registerJobs() error {
	// Every minute: re-prime the default listing cache entry so it
	// stays inside the advertised stale-while-revalidate window
	_, err := m.cron.AddFunc("0 * * * * *", func() {
		m.logJobStart("revalidate_list_cache")
		m.RevalidateListCache()
	})
	if err != nil {
		return err
	}

	log.Println("All cron jobs registered successfully")
	return nil
}

// logJobStart logs the start of a cron job
func (m *CronManager) logJobStart(jobName string) {
	log.Printf("[CRON] Starting job: %s", jobName)
}

// logJobComplete logs successful completion of a cron job
func (m *CronManager) logJobComplete(jobName string, message string) {
	log.Printf("[CRON] Completed job: %s - %s", jobName, message)
}

// logJobError logs a cron job error
func (m *CronManager) logJobError(jobName string, err error) {
	log.Printf("[CRON] Error in job: %s - %v", jobName, err)
}
