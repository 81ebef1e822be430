package model

// ResearchOutput classifies a university's research volume
type ResearchOutput string

const (
	ResearchOutputLow      ResearchOutput = "low"
	ResearchOutputMedium   ResearchOutput = "medium"
	ResearchOutputHigh     ResearchOutput = "high"
	ResearchOutputVeryHigh ResearchOutput = "very-high"
)

// Valid reports whether the value is one of the known research output levels
func (r ResearchOutput) Valid() bool {
	switch r {
	case ResearchOutputLow, ResearchOutputMedium, ResearchOutputHigh, ResearchOutputVeryHigh:
		return true
	}
	return false
}

// CampusType classifies the campus setting
type CampusType string

const (
	CampusTypeUrban    CampusType = "urban"
	CampusTypeSuburban CampusType = "suburban"
	CampusTypeRural    CampusType = "rural"
)

// Valid reports whether the value is one of the known campus types
func (c CampusType) Valid() bool {
	switch c {
	case CampusTypeUrban, CampusTypeSuburban, CampusTypeRural:
		return true
	}
	return false
}

// University represents a single institution in the catalog.
// Records are immutable once loaded; Ranking is nil for unranked
// universities (no global ranking assigned).
type University struct {
	ID                    string         `json:"id"`
	Name                  string         `json:"name"`
	Country               string         `json:"country"`
	City                  string         `json:"city"`
	Region                string         `json:"region,omitempty"`
	TuitionFee            float64        `json:"tuitionFee"`
	Currency              string         `json:"currency"`
	Ranking               *int           `json:"ranking"`
	EstablishedYear       int            `json:"establishedYear"`
	StudentPopulation     int            `json:"studentPopulation"`
	InternationalStudents float64        `json:"internationalStudents"`
	AcceptanceRate        float64        `json:"acceptanceRate"`
	GraduationRate        float64        `json:"graduationRate"`
	EmploymentRate        float64        `json:"employmentRate"`
	Programs              []string       `json:"programs"`
	ResearchOutput        ResearchOutput `json:"researchOutput"`
	ScholarshipAvailable  bool           `json:"scholarshipAvailable"`
	AvgScholarshipAmount  *float64       `json:"avgScholarshipAmount,omitempty"`
	CampusType            CampusType     `json:"campusType"`
	HousingAvailable      bool           `json:"housingAvailable"`
	AvgStartingSalary     *float64       `json:"avgStartingSalary,omitempty"`
	Website               string         `json:"website"`
	Description           string         `json:"description"`
}

// HasProgram reports whether the university offers the given program
func (u *University) HasProgram(program string) bool {
	for _, p := range u.Programs {
		if p == program {
			return true
		}
	}
	return false
}
