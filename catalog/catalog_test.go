package catalog

import (
	"context"
	"testing"

	"github.com/unicompare/unicompare-api/model"
)

func validRecord(id string) model.University {
	return model.University{
		ID:              id,
		Name:            "Test University " + id,
		Country:         "Testland",
		City:            "Testville",
		TuitionFee:      1000,
		Currency:        "USD",
		EstablishedYear: 1900,
		AcceptanceRate:  50,
		GraduationRate:  80,
		EmploymentRate:  85,
		ResearchOutput:  model.ResearchOutputMedium,
		CampusType:      model.CampusTypeUrban,
	}
}

func TestNewRejectsDuplicateIDs(t *testing.T) {
	_, err := New([]model.University{validRecord("a"), validRecord("a")})
	if err == nil {
		t.Fatal("expected error for duplicate ids")
	}
}

func TestNewRejectsInvalidRecords(t *testing.T) {
	cases := map[string]func(*model.University){
		"missing id":         func(u *model.University) { u.ID = "" },
		"negative tuition":   func(u *model.University) { u.TuitionFee = -1 },
		"zero ranking":       func(u *model.University) { u.Ranking = new(int) },
		"year too early":     func(u *model.University) { u.EstablishedYear = 999 },
		"year in future":     func(u *model.University) { u.EstablishedYear = 3000 },
		"rate over 100":      func(u *model.University) { u.AcceptanceRate = 101 },
		"negative rate":      func(u *model.University) { u.EmploymentRate = -0.5 },
		"bad research":       func(u *model.University) { u.ResearchOutput = "extreme" },
		"bad campus type":    func(u *model.University) { u.CampusType = "floating" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			rec := validRecord("x")
			mutate(&rec)
			if _, err := New([]model.University{rec}); err == nil {
				t.Errorf("expected error for %s", name)
			}
		})
	}
}

func TestByID(t *testing.T) {
	cat, err := New([]model.University{validRecord("a"), validRecord("b")})
	if err != nil {
		t.Fatal(err)
	}

	if u, ok := cat.ByID("b"); !ok || u.ID != "b" {
		t.Errorf("ByID(b) = %v, %v", u.ID, ok)
	}
	if _, ok := cat.ByID("missing"); ok {
		t.Error("ByID(missing) should not resolve")
	}
}

func TestStaticCatalogLoads(t *testing.T) {
	cat, err := New(Static())
	if err != nil {
		t.Fatalf("static catalog must validate: %v", err)
	}

	if cat.Len() != 26 {
		t.Errorf("expected 26 records, got %d", cat.Len())
	}

	// Catalog order is the default listing order
	first := cat.All()[0]
	if first.ID != "mit" {
		t.Errorf("expected mit first, got %s", first.ID)
	}

	unranked := 0
	for _, u := range cat.All() {
		if u.Ranking == nil {
			unranked++
		}
	}
	if unranked == 0 {
		t.Error("static catalog should contain unranked universities")
	}
}

func TestStaticReturnsFreshCopy(t *testing.T) {
	a := Static()
	a[0].Name = "mutated"
	b := Static()
	if b[0].Name == "mutated" {
		t.Error("Static() must not share backing storage between calls")
	}
}

func TestFromSourceRejectsEmpty(t *testing.T) {
	_, err := FromSource(context.Background(), emptySource{})
	if err == nil {
		t.Fatal("expected error for empty source")
	}
}

type emptySource struct{}

func (emptySource) Name() string { return "empty" }
func (emptySource) Load(_ context.Context) ([]model.University, error) {
	return nil, nil
}
