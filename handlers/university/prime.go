package university

import (
	"context"

	"github.com/unicompare/unicompare-api/model"
	"github.com/unicompare/unicompare-api/services"
	"github.com/unicompare/unicompare-api/utils/cache"
	"github.com/unicompare/unicompare-api/utils/response"
)

// PrimeListCache recomputes and stores the default first-page listing so
// the hottest cache entry never goes cold between client revalidations.
// The key matches what ListUniversities uses for a query with no
// parameters.
func PrimeListCache(ctx context.Context, service *services.UniversityService, redisCache *cache.RedisCache) error {
	if redisCache == nil {
		return nil
	}

	result := service.ListUniversities(model.NewFilterRequest())

	payload := response.ListResponse{
		Data: result.Data,
		Pagination: response.PaginationMeta{
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
		Filters: result.Facets,
	}

	return redisCache.SetJSON(ctx, listCacheKeyPrefix, payload, ResponseCacheTTL)
}
