package catalog

import (
	"fmt"
	"time"

	"github.com/unicompare/unicompare-api/model"
)

// Catalog is the immutable in-memory collection of university records.
// It is built once at process start and never mutated afterwards, so
// concurrent readers need no coordination.
type Catalog struct {
	records []model.University
	byID    map[string]int
}

// New builds a catalog from the given records, validating every record
// on the way in. Records are kept in the order supplied; that order is
// the default listing order.
func New(records []model.University) (*Catalog, error) {
	byID := make(map[string]int, len(records))
	for i := range records {
		if err := validateRecord(&records[i]); err != nil {
			return nil, fmt.Errorf("catalog record %d: %w", i, err)
		}
		if _, exists := byID[records[i].ID]; exists {
			return nil, fmt.Errorf("catalog record %d: duplicate id %q", i, records[i].ID)
		}
		byID[records[i].ID] = i
	}

	return &Catalog{
		records: records,
		byID:    byID,
	}, nil
}

// All returns the catalog records in catalog order. The slice is shared;
// callers must treat it as read-only.
func (c *Catalog) All() []model.University {
	return c.records
}

// ByID looks up a single record by its identifier
func (c *Catalog) ByID(id string) (model.University, bool) {
	i, ok := c.byID[id]
	if !ok {
		return model.University{}, false
	}
	return c.records[i], true
}

// Len returns the number of records in the catalog
func (c *Catalog) Len() int {
	return len(c.records)
}

func validateRecord(u *model.University) error {
	if u.ID == "" {
		return fmt.Errorf("missing id")
	}
	if u.Name == "" {
		return fmt.Errorf("%s: missing name", u.ID)
	}
	if u.TuitionFee < 0 {
		return fmt.Errorf("%s: negative tuition fee", u.ID)
	}
	if u.Ranking != nil && *u.Ranking < 1 {
		return fmt.Errorf("%s: ranking must be positive", u.ID)
	}
	if u.EstablishedYear < 1000 || u.EstablishedYear > time.Now().Year() {
		return fmt.Errorf("%s: established year %d out of range", u.ID, u.EstablishedYear)
	}
	if u.StudentPopulation < 0 {
		return fmt.Errorf("%s: negative student population", u.ID)
	}
	for name, pct := range map[string]float64{
		"internationalStudents": u.InternationalStudents,
		"acceptanceRate":        u.AcceptanceRate,
		"graduationRate":        u.GraduationRate,
		"employmentRate":        u.EmploymentRate,
	} {
		if pct < 0 || pct > 100 {
			return fmt.Errorf("%s: %s %.2f outside [0,100]", u.ID, name, pct)
		}
	}
	if !u.ResearchOutput.Valid() {
		return fmt.Errorf("%s: unknown research output %q", u.ID, u.ResearchOutput)
	}
	if !u.CampusType.Valid() {
		return fmt.Errorf("%s: unknown campus type %q", u.ID, u.CampusType)
	}
	return nil
}
