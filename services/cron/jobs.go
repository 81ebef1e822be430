package cron

import (
	"context"
	"time"

	"github.com/unicompare/unicompare-api/handlers/university"
)

// RevalidateListCache recomputes the default first-page listing and
// writes it back to Redis before the cached entry expires
func (m *CronManager) RevalidateListCache() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := university.PrimeListCache(ctx, m.service, m.cache); err != nil {
		m.logJobError("revalidate_list_cache", err)
		return
	}
	m.logJobComplete("revalidate_list_cache", "default listing re-primed")
}
