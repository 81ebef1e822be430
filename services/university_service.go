package services

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/unicompare/unicompare-api/catalog"
	"github.com/unicompare/unicompare-api/model"
)

// UniversityService answers list, detail and comparison queries over the
// immutable catalog. Every operation is a pure computation over the
// snapshot taken at construction, so concurrent requests need no locking.
type UniversityService struct {
	catalog *catalog.Catalog
	facets  model.Facets
}

// NewUniversityService creates the service and precomputes the facet
// lists. The catalog never mutates, so computing them once is
// indistinguishable from computing them per request.
func NewUniversityService(cat *catalog.Catalog) *UniversityService {
	return &UniversityService{
		catalog: cat,
		facets:  computeFacets(cat),
	}
}

// ListResult is one page of filtered, ordered universities plus the
// metadata the list endpoint serializes.
type ListResult struct {
	Data       []model.University
	Total      int
	Page       int
	Limit      int
	TotalPages int
	Facets     model.Facets
}

// ListUniversities applies the request's filters conjunctively, orders
// the matches, and slices out the requested page. An empty result is a
// valid outcome, not an error.
func (s *UniversityService) ListUniversities(req model.FilterRequest) *ListResult {
	matched := s.filter(&req)
	sortUniversities(matched, req.SortBy, req.SortOrder)
	page, total, totalPages := paginate(matched, req.Page, req.Limit)

	return &ListResult{
		Data:       page,
		Total:      total,
		Page:       req.Page,
		Limit:      req.Limit,
		TotalPages: totalPages,
		Facets:     s.facets,
	}
}

// GetUniversity fetches a single record by identifier
func (s *UniversityService) GetUniversity(id string) (model.University, error) {
	u, ok := s.catalog.ByID(id)
	if !ok {
		return model.University{}, fmt.Errorf("%w: %s", ErrUniversityNotFound, id)
	}
	return u, nil
}

// Facets returns the distinct countries, cities and programs across the
// full catalog.
func (s *UniversityService) Facets() model.Facets {
	return s.facets
}

// CompareUniversities resolves exactly two distinct identifiers and
// computes their absolute difference metrics. The metrics are symmetric:
// swapping the ids changes only which record is labeled first.
func (s *UniversityService) CompareUniversities(ids []string) (*model.ComparisonResult, error) {
	if len(ids) != 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidComparison, len(ids))
	}
	if ids[0] == ids[1] {
		return nil, fmt.Errorf("%w: %q supplied twice", ErrInvalidComparison, ids[0])
	}

	a, ok := s.catalog.ByID(ids[0])
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUniversityNotFound, ids[0])
	}
	b, ok := s.catalog.ByID(ids[1])
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUniversityNotFound, ids[1])
	}

	diffs := model.ComparisonDifferences{
		TuitionFee:     math.Abs(a.TuitionFee - b.TuitionFee),
		AcceptanceRate: math.Abs(a.AcceptanceRate - b.AcceptanceRate),
		EmploymentRate: math.Abs(a.EmploymentRate - b.EmploymentRate),
	}
	if a.Ranking != nil && b.Ranking != nil {
		d := *a.Ranking - *b.Ranking
		if d < 0 {
			d = -d
		}
		diffs.Ranking = &d
	}

	return &model.ComparisonResult{
		Universities: [2]model.University{a, b},
		Differences:  diffs,
	}, nil
}

// filter returns the records satisfying every active predicate, in
// catalog order.
func (s *UniversityService) filter(req *model.FilterRequest) []model.University {
	search := strings.ToLower(strings.TrimSpace(req.Search))

	matched := make([]model.University, 0, s.catalog.Len())
	for _, u := range s.catalog.All() {
		if !matchesSearch(&u, search) {
			continue
		}
		if len(req.Countries) > 0 && !containsString(req.Countries, u.Country) {
			continue
		}
		if len(req.Cities) > 0 && !containsString(req.Cities, u.City) {
			continue
		}
		if len(req.Programs) > 0 && !offersAnyProgram(&u, req.Programs) {
			continue
		}
		if len(req.CampusTypes) > 0 && !containsCampusType(req.CampusTypes, u.CampusType) {
			continue
		}
		if len(req.ResearchOutputs) > 0 && !containsResearchOutput(req.ResearchOutputs, u.ResearchOutput) {
			continue
		}
		if req.MinTuition != nil && u.TuitionFee < *req.MinTuition {
			continue
		}
		if req.MaxTuition != nil && u.TuitionFee > *req.MaxTuition {
			continue
		}
		if !matchesRankingBounds(&u, req) {
			continue
		}
		if req.MinEstablishedYear != nil && u.EstablishedYear < *req.MinEstablishedYear {
			continue
		}
		if req.MaxEstablishedYear != nil && u.EstablishedYear > *req.MaxEstablishedYear {
			continue
		}
		if req.MinAcceptanceRate != nil && u.AcceptanceRate < *req.MinAcceptanceRate {
			continue
		}
		if req.MaxAcceptanceRate != nil && u.AcceptanceRate > *req.MaxAcceptanceRate {
			continue
		}
		if req.MinEmploymentRate != nil && u.EmploymentRate < *req.MinEmploymentRate {
			continue
		}
		if req.ScholarshipOnly && !u.ScholarshipAvailable {
			continue
		}
		matched = append(matched, u)
	}
	return matched
}

// matchesSearch checks the case-insensitive substring search over name,
// city, country and description. An empty term matches everything.
func matchesSearch(u *model.University, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(u.Name), term) ||
		strings.Contains(strings.ToLower(u.City), term) ||
		strings.Contains(strings.ToLower(u.Country), term) ||
		strings.Contains(strings.ToLower(u.Description), term)
}

// matchesRankingBounds applies the inclusive ranking range. A bounded
// ranking query excludes unranked records: a record without a ranking
// cannot satisfy either bound.
func matchesRankingBounds(u *model.University, req *model.FilterRequest) bool {
	if !req.HasRankingBound() {
		return true
	}
	if u.Ranking == nil {
		return false
	}
	if req.MinRanking != nil && *u.Ranking < *req.MinRanking {
		return false
	}
	if req.MaxRanking != nil && *u.Ranking > *req.MaxRanking {
		return false
	}
	return true
}

// offersAnyProgram is the one disjunctive dimension: a record matches if
// it offers at least one of the requested programs.
func offersAnyProgram(u *model.University, programs []string) bool {
	for _, p := range programs {
		if u.HasProgram(p) {
			return true
		}
	}
	return false
}

func containsString(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func containsCampusType(list []model.CampusType, v model.CampusType) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func containsResearchOutput(list []model.ResearchOutput, v model.ResearchOutput) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// sortUniversities orders records in place. The sort is stable so that
// identical requests against the unchanged catalog return identical
// orderings. Unranked records sort after every ranked record regardless
// of direction.
func sortUniversities(records []model.University, field model.SortField, order model.SortOrder) {
	if field == "" {
		return
	}
	desc := order == model.SortOrderDesc

	sort.SliceStable(records, func(i, j int) bool {
		a, b := &records[i], &records[j]

		if field == model.SortFieldRanking {
			switch {
			case a.Ranking == nil && b.Ranking == nil:
				return false
			case a.Ranking == nil:
				return false
			case b.Ranking == nil:
				return true
			}
			if desc {
				return *a.Ranking > *b.Ranking
			}
			return *a.Ranking < *b.Ranking
		}

		if field == model.SortFieldName {
			an, bn := strings.ToLower(a.Name), strings.ToLower(b.Name)
			if desc {
				return an > bn
			}
			return an < bn
		}

		av, bv := numericSortKey(a, field), numericSortKey(b, field)
		if desc {
			return av > bv
		}
		return av < bv
	})
}

func numericSortKey(u *model.University, field model.SortField) float64 {
	switch field {
	case model.SortFieldTuitionFee:
		return u.TuitionFee
	case model.SortFieldEstablishedYear:
		return float64(u.EstablishedYear)
	case model.SortFieldAcceptanceRate:
		return u.AcceptanceRate
	case model.SortFieldEmploymentRate:
		return u.EmploymentRate
	}
	return 0
}

// paginate slices out the requested window. A page past the end yields
// an empty slice, not an error.
func paginate(records []model.University, page, limit int) ([]model.University, int, int) {
	total := len(records)
	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}

	start := (page - 1) * limit
	if start >= total {
		return []model.University{}, total, totalPages
	}
	end := start + limit
	if end > total {
		end = total
	}
	return records[start:end], total, totalPages
}

// computeFacets walks the full catalog once, collecting distinct values
// sorted alphabetically for stable payloads.
func computeFacets(cat *catalog.Catalog) model.Facets {
	countries := map[string]struct{}{}
	cities := map[string]struct{}{}
	programs := map[string]struct{}{}

	for _, u := range cat.All() {
		countries[u.Country] = struct{}{}
		cities[u.City] = struct{}{}
		for _, p := range u.Programs {
			programs[p] = struct{}{}
		}
	}

	return model.Facets{
		Countries: sortedKeys(countries),
		Cities:    sortedKeys(cities),
		Programs:  sortedKeys(programs),
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
