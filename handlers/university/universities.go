package university

import (
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/unicompare/unicompare-api/model"
	"github.com/unicompare/unicompare-api/services"
	"github.com/unicompare/unicompare-api/utils/cache"
	"github.com/unicompare/unicompare-api/utils/response"
	"github.com/unicompare/unicompare-api/utils/validation"
)

const (
	// CacheControlValue is the caching policy both read endpoints
	// advertise: short public lifetime with a revalidation window.
	CacheControlValue = "public, max-age=60, stale-while-revalidate=300"

	listCacheKeyPrefix    = "unicompare:list:"
	compareCacheKeyPrefix = "unicompare:compare:"

	// ResponseCacheTTL matches the advertised max-age
	ResponseCacheTTL = 60 * time.Second
)

// UniversityHandler handles university list, detail and comparison requests
type UniversityHandler struct {
	service   *services.UniversityService
	validator *validation.Validator
	cache     *cache.RedisCache // nil disables the response cache
}

// NewUniversityHandler creates a new university handler. redisCache may
// be nil; every request then computes fresh.
func NewUniversityHandler(service *services.UniversityService, redisCache *cache.RedisCache) *UniversityHandler {
	return &UniversityHandler{
		service:   service,
		validator: validation.NewValidator(),
		cache:     redisCache,
	}
}

// ListUniversities handles GET /api/v1/universities
func (h *UniversityHandler) ListUniversities(c *fiber.Ctx) error {
	req, err := parseFilterRequest(c)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	c.Set(fiber.HeaderCacheControl, CacheControlValue)

	cacheKey := listCacheKeyPrefix + string(c.Request().URI().QueryString())
	if body, ok := h.cachedResponse(c, cacheKey); ok {
		return c.Type("json").Send(body)
	}

	result := h.service.ListUniversities(req)

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

	h.storeResponse(c, cacheKey, payload)
	return c.Status(fiber.StatusOK).JSON(payload)
}

// GetUniversity handles GET /api/v1/universities/:id
func (h *UniversityHandler) GetUniversity(c *fiber.Ctx) error {
	id := c.Params("id")

	u, err := h.service.GetUniversity(id)
	if err != nil {
		if errors.Is(err, services.ErrUniversityNotFound) {
			return response.NotFound(c, "University not found")
		}
		log.Printf("get university %s: %v", id, err)
		return response.InternalServerError(c, "")
	}

	c.Set(fiber.HeaderCacheControl, CacheControlValue)
	return response.Success(c, u)
}

// CompareUniversities handles GET /api/v1/universities/compare?ids=a,b
func (h *UniversityHandler) CompareUniversities(c *fiber.Ctx) error {
	raw := c.Query("ids")
	if raw == "" {
		return response.InvalidArgument(c, "ids parameter is required, e.g. ids=mit,oxford")
	}

	ids := splitCSV(raw)
	if len(ids) != 2 {
		return response.InvalidArgument(c, "exactly two university ids must be supplied")
	}

	c.Set(fiber.HeaderCacheControl, CacheControlValue)

	cacheKey := compareCacheKeyPrefix + ids[0] + "," + ids[1]
	if body, ok := h.cachedResponse(c, cacheKey); ok {
		return c.Type("json").Send(body)
	}

	result, err := h.service.CompareUniversities(ids)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidComparison):
			return response.InvalidArgument(c, err.Error())
		case errors.Is(err, services.ErrUniversityNotFound):
			return response.NotFound(c, err.Error())
		default:
			log.Printf("compare universities %v: %v", ids, err)
			return response.InternalServerError(c, "")
		}
	}

	h.storeResponse(c, cacheKey, result)
	return c.Status(fiber.StatusOK).JSON(result)
}

// cachedResponse looks up a previously serialized payload. Cache
// failures only mean computing fresh.
func (h *UniversityHandler) cachedResponse(c *fiber.Ctx, key string) ([]byte, bool) {
	if h.cache == nil {
		return nil, false
	}
	body, err := h.cache.Get(c.Context(), key)
	if err != nil {
		if !errors.Is(err, cache.ErrNotFound) {
			log.Printf("response cache get %s: %v", key, err)
		}
		return nil, false
	}
	return []byte(body), true
}

func (h *UniversityHandler) storeResponse(c *fiber.Ctx, key string, payload interface{}) {
	if h.cache == nil {
		return
	}
	if err := h.cache.SetJSON(c.Context(), key, payload, ResponseCacheTTL); err != nil {
		log.Printf("response cache set %s: %v", key, err)
	}
}

// parseFilterRequest coerces the query string into a typed request.
// Malformed values fail here; range checks happen in struct validation.
func parseFilterRequest(c *fiber.Ctx) (model.FilterRequest, error) {
	req := model.NewFilterRequest()

	req.Search = validation.SanitizeString(c.Query("search"))
	req.Countries = splitCSV(c.Query("countries"))
	req.Cities = splitCSV(c.Query("cities"))
	req.Programs = splitCSV(c.Query("programs"))

	for _, v := range splitCSV(c.Query("campusTypes")) {
		req.CampusTypes = append(req.CampusTypes, model.CampusType(v))
	}
	for _, v := range splitCSV(c.Query("researchOutputs")) {
		req.ResearchOutputs = append(req.ResearchOutputs, model.ResearchOutput(v))
	}

	var err error
	if req.MinTuition, err = queryFloat(c, "minTuition"); err != nil {
		return req, err
	}
	if req.MaxTuition, err = queryFloat(c, "maxTuition"); err != nil {
		return req, err
	}
	if req.MinRanking, err = queryInt(c, "minRanking"); err != nil {
		return req, err
	}
	if req.MaxRanking, err = queryInt(c, "maxRanking"); err != nil {
		return req, err
	}
	if req.MinEstablishedYear, err = queryInt(c, "minYear"); err != nil {
		return req, err
	}
	if req.MaxEstablishedYear, err = queryInt(c, "maxYear"); err != nil {
		return req, err
	}
	if req.MinAcceptanceRate, err = queryFloat(c, "minAcceptance"); err != nil {
		return req, err
	}
	if req.MaxAcceptanceRate, err = queryFloat(c, "maxAcceptance"); err != nil {
		return req, err
	}
	if req.MinEmploymentRate, err = queryFloat(c, "minEmployment"); err != nil {
		return req, err
	}

	req.ScholarshipOnly = c.Query("scholarshipOnly") == "true"

	if v := c.Query("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil {
			return req, errors.New("page must be an integer")
		}
		req.Page = page
	}
	if v := c.Query("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return req, errors.New("limit must be an integer")
		}
		req.Limit = limit
	}

	req.SortBy = model.SortField(c.Query("sortBy"))
	if v := c.Query("sortOrder"); v != "" {
		req.SortOrder = model.SortOrder(v)
	}

	return req, nil
}

func queryFloat(c *fiber.Ctx, name string) (*float64, error) {
	v := c.Query(name)
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, errors.New(name + " must be a number")
	}
	return &f, nil
}

func queryInt(c *fiber.Ctx, name string) (*int, error) {
	v := c.Query(name)
	if v == "" {
		return nil, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return nil, errors.New(name + " must be an integer")
	}
	return &i, nil
}

// splitCSV splits a comma-separated parameter, dropping empty entries
func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
