package services

import (
	"errors"
	"reflect"
	"testing"

	"github.com/unicompare/unicompare-api/catalog"
	"github.com/unicompare/unicompare-api/model"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

// fixtureService builds a service over four controlled records. The
// ranking sequence [nil, 5, 1, nil] exercises the unranked-last rules.
func fixtureService(t *testing.T) *UniversityService {
	t.Helper()

	records := []model.University{
		{
			ID: "alpha", Name: "alpha institute", Country: "Norway", City: "Oslo",
			TuitionFee: 18000, Currency: "EUR", Ranking: nil, EstablishedYear: 1900,
			AcceptanceRate: 30, GraduationRate: 85, EmploymentRate: 90,
			Programs:       []string{"Computer Science", "Mathematics"},
			ResearchOutput: model.ResearchOutputHigh, ScholarshipAvailable: true,
			CampusType: model.CampusTypeUrban, Description: "A fjord campus for the sciences.",
		},
		{
			ID: "beta", Name: "Beta College", Country: "Norway", City: "Bergen",
			TuitionFee: 18000, Currency: "EUR", Ranking: intPtr(5), EstablishedYear: 1850,
			AcceptanceRate: 50, GraduationRate: 75, EmploymentRate: 70,
			Programs:       []string{"Law"},
			ResearchOutput: model.ResearchOutputLow, ScholarshipAvailable: false,
			CampusType: model.CampusTypeRural, Description: "A small coastal college.",
		},
		{
			ID: "gamma", Name: "Gamma University", Country: "Chile", City: "Santiago",
			TuitionFee: 30000, Currency: "USD", Ranking: intPtr(1), EstablishedYear: 1990,
			AcceptanceRate: 10, GraduationRate: 95, EmploymentRate: 95,
			Programs:       []string{"Computer Science", "Law"},
			ResearchOutput: model.ResearchOutputVeryHigh, ScholarshipAvailable: true,
			CampusType: model.CampusTypeSuburban, Description: "A selective research university.",
		},
		{
			ID: "delta", Name: "delta academy", Country: "Chile", City: "Valdivia",
			TuitionFee: 5000, Currency: "USD", Ranking: nil, EstablishedYear: 1960,
			AcceptanceRate: 80, GraduationRate: 65, EmploymentRate: 60,
			Programs:       []string{"Biology"},
			ResearchOutput: model.ResearchOutputMedium, ScholarshipAvailable: false,
			CampusType: model.CampusTypeRural, Description: "A regional teaching academy.",
		},
	}

	cat, err := catalog.New(records)
	if err != nil {
		t.Fatalf("fixture catalog: %v", err)
	}
	return NewUniversityService(cat)
}

func resultIDs(result *ListResult) []string {
	ids := make([]string, 0, len(result.Data))
	for _, u := range result.Data {
		ids = append(ids, u.ID)
	}
	return ids
}

func TestListNoFiltersReturnsWholeCatalog(t *testing.T) {
	s := fixtureService(t)

	result := s.ListUniversities(model.NewFilterRequest())

	if result.Total != 4 {
		t.Errorf("total = %d, want 4", result.Total)
	}
	if len(result.Data) != 4 {
		t.Errorf("data length = %d, want 4", len(result.Data))
	}
	if result.TotalPages != 1 {
		t.Errorf("totalPages = %d, want 1", result.TotalPages)
	}
	if got := resultIDs(result); !reflect.DeepEqual(got, []string{"alpha", "beta", "gamma", "delta"}) {
		t.Errorf("default order should be catalog order, got %v", got)
	}
}

func TestPaginationWindows(t *testing.T) {
	s := fixtureService(t)

	req := model.NewFilterRequest()
	req.Limit = 3

	result := s.ListUniversities(req)
	if result.Total != 4 || result.TotalPages != 2 || len(result.Data) != 3 {
		t.Errorf("page 1: total=%d totalPages=%d len=%d", result.Total, result.TotalPages, len(result.Data))
	}

	req.Page = 2
	result = s.ListUniversities(req)
	if len(result.Data) != 1 || result.Data[0].ID != "delta" {
		t.Errorf("page 2 = %v, want [delta]", resultIDs(result))
	}

	// A page past the end is a valid, empty result
	req.Page = 9
	result = s.ListUniversities(req)
	if len(result.Data) != 0 {
		t.Errorf("page 9 should be empty, got %v", resultIDs(result))
	}
	if result.Total != 4 || result.TotalPages != 2 {
		t.Errorf("metadata must describe the full match set: total=%d totalPages=%d", result.Total, result.TotalPages)
	}
}

func TestTuitionRangeWithScholarshipOnly(t *testing.T) {
	s := fixtureService(t)

	// alpha and beta both cost 18000; only alpha has scholarships.
	// delta is in range too but has none.
	req := model.NewFilterRequest()
	req.MinTuition = floatPtr(0)
	req.MaxTuition = floatPtr(20000)
	req.ScholarshipOnly = true

	result := s.ListUniversities(req)
	if got := resultIDs(result); !reflect.DeepEqual(got, []string{"alpha"}) {
		t.Errorf("got %v, want [alpha]", got)
	}
}

func TestFilteringIsConjunctiveAcrossDimensions(t *testing.T) {
	s := fixtureService(t)

	countriesOnly := model.NewFilterRequest()
	countriesOnly.Countries = []string{"Chile"}

	scholarshipOnly := model.NewFilterRequest()
	scholarshipOnly.ScholarshipOnly = true

	both := model.NewFilterRequest()
	both.Countries = []string{"Chile"}
	both.ScholarshipOnly = true

	inCountries := map[string]bool{}
	for _, id := range resultIDs(s.ListUniversities(countriesOnly)) {
		inCountries[id] = true
	}

	intersection := []string{}
	for _, id := range resultIDs(s.ListUniversities(scholarshipOnly)) {
		if inCountries[id] {
			intersection = append(intersection, id)
		}
	}

	if got := resultIDs(s.ListUniversities(both)); !reflect.DeepEqual(got, intersection) {
		t.Errorf("combined filter %v != intersection of single filters %v", got, intersection)
	}
}

func TestSearchIsCaseInsensitiveAcrossFields(t *testing.T) {
	s := fixtureService(t)

	cases := map[string][]string{
		"FJORD":   {"alpha"}, // description
		"bergen":  {"beta"},  // city
		"cHiLe":   {"gamma", "delta"},
		"college": {"beta"}, // name
		"":        {"alpha", "beta", "gamma", "delta"},
	}

	for term, want := range cases {
		req := model.NewFilterRequest()
		req.Search = term
		if got := resultIDs(s.ListUniversities(req)); !reflect.DeepEqual(got, want) {
			t.Errorf("search %q = %v, want %v", term, got, want)
		}
	}
}

func TestProgramsFilterIsDisjunctiveWithinDimension(t *testing.T) {
	s := fixtureService(t)

	req := model.NewFilterRequest()
	req.Programs = []string{"Mathematics", "Law"}

	// Any requested program qualifies; delta offers neither
	if got := resultIDs(s.ListUniversities(req)); !reflect.DeepEqual(got, []string{"alpha", "beta", "gamma"}) {
		t.Errorf("got %v, want [alpha beta gamma]", got)
	}
}

func TestRankingBoundsExcludeUnranked(t *testing.T) {
	s := fixtureService(t)

	req := model.NewFilterRequest()
	req.MinRanking = intPtr(1)

	if got := resultIDs(s.ListUniversities(req)); !reflect.DeepEqual(got, []string{"beta", "gamma"}) {
		t.Errorf("minRanking=1 got %v, want [beta gamma]", got)
	}

	req = model.NewFilterRequest()
	req.MaxRanking = intPtr(3)
	if got := resultIDs(s.ListUniversities(req)); !reflect.DeepEqual(got, []string{"gamma"}) {
		t.Errorf("maxRanking=3 got %v, want [gamma]", got)
	}
}

func TestMinEmploymentRateInclusive(t *testing.T) {
	s := fixtureService(t)

	req := model.NewFilterRequest()
	req.MinEmploymentRate = floatPtr(90)

	if got := resultIDs(s.ListUniversities(req)); !reflect.DeepEqual(got, []string{"alpha", "gamma"}) {
		t.Errorf("got %v, want [alpha gamma]", got)
	}
}

func TestCampusTypeAndResearchOutputFilters(t *testing.T) {
	s := fixtureService(t)

	req := model.NewFilterRequest()
	req.CampusTypes = []model.CampusType{model.CampusTypeRural}
	if got := resultIDs(s.ListUniversities(req)); !reflect.DeepEqual(got, []string{"beta", "delta"}) {
		t.Errorf("campusTypes got %v, want [beta delta]", got)
	}

	req = model.NewFilterRequest()
	req.ResearchOutputs = []model.ResearchOutput{model.ResearchOutputVeryHigh, model.ResearchOutputHigh}
	if got := resultIDs(s.ListUniversities(req)); !reflect.DeepEqual(got, []string{"alpha", "gamma"}) {
		t.Errorf("researchOutputs got %v, want [alpha gamma]", got)
	}
}

func TestSortNumericAscDescAreReverses(t *testing.T) {
	s := fixtureService(t)

	// Established years are all distinct, so desc must be the exact
	// reverse of asc
	req := model.NewFilterRequest()
	req.SortBy = model.SortFieldEstablishedYear

	asc := resultIDs(s.ListUniversities(req))

	req.SortOrder = model.SortOrderDesc
	desc := resultIDs(s.ListUniversities(req))

	if !reflect.DeepEqual(asc, []string{"beta", "alpha", "delta", "gamma"}) {
		t.Errorf("asc = %v", asc)
	}
	for i := range asc {
		if asc[i] != desc[len(desc)-1-i] {
			t.Fatalf("desc %v is not the reverse of asc %v", desc, asc)
		}
	}
}

func TestSortByNameIsCaseInsensitive(t *testing.T) {
	s := fixtureService(t)

	// Names are "alpha institute", "Beta College", "Gamma University",
	// "delta academy"; case-sensitive ordering would sink lowercase names
	req := model.NewFilterRequest()
	req.SortBy = model.SortFieldName

	if got := resultIDs(s.ListUniversities(req)); !reflect.DeepEqual(got, []string{"alpha", "beta", "delta", "gamma"}) {
		t.Errorf("name asc = %v, want [alpha beta delta gamma]", got)
	}
}

func TestSortRankingUnrankedAlwaysLast(t *testing.T) {
	s := fixtureService(t)

	req := model.NewFilterRequest()
	req.SortBy = model.SortFieldRanking

	// Rankings are [nil, 5, 1, nil]; ascending puts rank 1 first and
	// keeps the two unranked records in their original relative order
	if got := resultIDs(s.ListUniversities(req)); !reflect.DeepEqual(got, []string{"gamma", "beta", "alpha", "delta"}) {
		t.Errorf("ranking asc = %v, want [gamma beta alpha delta]", got)
	}

	req.SortOrder = model.SortOrderDesc
	if got := resultIDs(s.ListUniversities(req)); !reflect.DeepEqual(got, []string{"beta", "gamma", "alpha", "delta"}) {
		t.Errorf("ranking desc = %v, want [beta gamma alpha delta]", got)
	}
}

func TestListIsIdempotent(t *testing.T) {
	s := fixtureService(t)

	req := model.NewFilterRequest()
	req.SortBy = model.SortFieldTuitionFee
	req.Countries = []string{"Norway", "Chile"}

	first := s.ListUniversities(req)
	second := s.ListUniversities(req)

	if !reflect.DeepEqual(first, second) {
		t.Error("identical requests against the unchanged catalog must return identical results")
	}
}

func TestFacetsDescribeFullCatalog(t *testing.T) {
	s := fixtureService(t)

	// Facets never shrink to the filtered subset
	req := model.NewFilterRequest()
	req.Countries = []string{"Chile"}

	result := s.ListUniversities(req)
	if !reflect.DeepEqual(result.Facets.Countries, []string{"Chile", "Norway"}) {
		t.Errorf("countries facet = %v", result.Facets.Countries)
	}
	if !reflect.DeepEqual(result.Facets.Cities, []string{"Bergen", "Oslo", "Santiago", "Valdivia"}) {
		t.Errorf("cities facet = %v", result.Facets.Cities)
	}
	if !reflect.DeepEqual(result.Facets.Programs, []string{"Biology", "Computer Science", "Law", "Mathematics"}) {
		t.Errorf("programs facet = %v", result.Facets.Programs)
	}
}

func TestGetUniversity(t *testing.T) {
	s := fixtureService(t)

	u, err := s.GetUniversity("gamma")
	if err != nil || u.Name != "Gamma University" {
		t.Errorf("GetUniversity(gamma) = %v, %v", u.Name, err)
	}

	_, err = s.GetUniversity("omega")
	if !errors.Is(err, ErrUniversityNotFound) {
		t.Errorf("expected ErrUniversityNotFound, got %v", err)
	}
}

func TestCompareDifferences(t *testing.T) {
	s := fixtureService(t)

	result, err := s.CompareUniversities([]string{"beta", "gamma"})
	if err != nil {
		t.Fatal(err)
	}

	if result.Differences.TuitionFee != 12000 {
		t.Errorf("tuition diff = %v, want 12000", result.Differences.TuitionFee)
	}
	if result.Differences.AcceptanceRate != 40 {
		t.Errorf("acceptance diff = %v, want 40", result.Differences.AcceptanceRate)
	}
	if result.Differences.EmploymentRate != 25 {
		t.Errorf("employment diff = %v, want 25", result.Differences.EmploymentRate)
	}
	if result.Differences.Ranking == nil || *result.Differences.Ranking != 4 {
		t.Errorf("ranking diff = %v, want 4", result.Differences.Ranking)
	}
}

func TestCompareIsSymmetricInMagnitude(t *testing.T) {
	s := fixtureService(t)

	ab, err := s.CompareUniversities([]string{"alpha", "gamma"})
	if err != nil {
		t.Fatal(err)
	}
	ba, err := s.CompareUniversities([]string{"gamma", "alpha"})
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(ab.Differences, ba.Differences) {
		t.Errorf("differences must not depend on pair order: %+v vs %+v", ab.Differences, ba.Differences)
	}
	if ab.Universities[0].ID != "alpha" || ba.Universities[0].ID != "gamma" {
		t.Error("pair order decides only which record is labeled first")
	}
}

func TestCompareRankingAbsentWhenEitherUnranked(t *testing.T) {
	s := fixtureService(t)

	result, err := s.CompareUniversities([]string{"alpha", "gamma"})
	if err != nil {
		t.Fatal(err)
	}
	if result.Differences.Ranking != nil {
		t.Errorf("ranking diff = %v, want nil when one side is unranked", result.Differences.Ranking)
	}
}

func TestCompareValidation(t *testing.T) {
	s := fixtureService(t)

	if _, err := s.CompareUniversities([]string{"alpha"}); !errors.Is(err, ErrInvalidComparison) {
		t.Errorf("one id: got %v", err)
	}
	if _, err := s.CompareUniversities([]string{"alpha", "beta", "gamma"}); !errors.Is(err, ErrInvalidComparison) {
		t.Errorf("three ids: got %v", err)
	}
	if _, err := s.CompareUniversities([]string{"alpha", "alpha"}); !errors.Is(err, ErrInvalidComparison) {
		t.Errorf("repeated id: got %v", err)
	}
	if _, err := s.CompareUniversities([]string{"alpha", "omega"}); !errors.Is(err, ErrUniversityNotFound) {
		t.Errorf("unknown id: got %v", err)
	}
}
