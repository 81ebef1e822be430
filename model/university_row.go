package model

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// UniversityRow is the persisted form of a catalog record. The serving
// path never writes this table; it is populated by cmd/seed and read once
// at startup when CATALOG_SOURCE=postgres.
type UniversityRow struct {
	ID                    string         `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Name                  string         `gorm:"not null;uniqueIndex;type:varchar(255)" json:"name"`
	Country               string         `gorm:"not null;type:varchar(120);index" json:"country"`
	City                  string         `gorm:"not null;type:varchar(120)" json:"city"`
	Region                string         `gorm:"type:varchar(120)" json:"region"`
	TuitionFee            float64        `gorm:"not null" json:"tuition_fee"`
	Currency              string         `gorm:"type:varchar(8)" json:"currency"`
	Ranking               *int           `json:"ranking"`
	EstablishedYear       int            `gorm:"not null" json:"established_year"`
	StudentPopulation     int            `json:"student_population"`
	InternationalStudents float64        `json:"international_students"`
	AcceptanceRate        float64        `json:"acceptance_rate"`
	GraduationRate        float64        `json:"graduation_rate"`
	EmploymentRate        float64        `json:"employment_rate"`
	Programs              datatypes.JSON `gorm:"type:jsonb" json:"programs"`
	ResearchOutput        string         `gorm:"type:varchar(16)" json:"research_output"`
	ScholarshipAvailable  bool           `json:"scholarship_available"`
	AvgScholarshipAmount  *float64       `json:"avg_scholarship_amount"`
	CampusType            string         `gorm:"type:varchar(16)" json:"campus_type"`
	HousingAvailable      bool           `json:"housing_available"`
	AvgStartingSalary     *float64       `json:"avg_starting_salary"`
	Website               string         `gorm:"type:varchar(255)" json:"website"`
	Description           string         `gorm:"type:text" json:"description"`
	CreatedAt             time.Time      `json:"created_at"`
	UpdatedAt             time.Time      `json:"updated_at"`
}

// TableName keeps the table name in line with the catalog terminology
func (UniversityRow) TableName() string {
	return "universities"
}

// ToUniversity converts a persisted row back into the in-memory record
func (r *UniversityRow) ToUniversity() (University, error) {
	var programs []string
	if len(r.Programs) > 0 {
		if err := json.Unmarshal(r.Programs, &programs); err != nil {
			return University{}, err
		}
	}

	return University{
		ID:                    r.ID,
		Name:                  r.Name,
		Country:               r.Country,
		City:                  r.City,
		Region:                r.Region,
		TuitionFee:            r.TuitionFee,
		Currency:              r.Currency,
		Ranking:               r.Ranking,
		EstablishedYear:       r.EstablishedYear,
		StudentPopulation:     r.StudentPopulation,
		InternationalStudents: r.InternationalStudents,
		AcceptanceRate:        r.AcceptanceRate,
		GraduationRate:        r.GraduationRate,
		EmploymentRate:        r.EmploymentRate,
		Programs:              programs,
		ResearchOutput:        ResearchOutput(r.ResearchOutput),
		ScholarshipAvailable:  r.ScholarshipAvailable,
		AvgScholarshipAmount:  r.AvgScholarshipAmount,
		CampusType:            CampusType(r.CampusType),
		HousingAvailable:      r.HousingAvailable,
		AvgStartingSalary:     r.AvgStartingSalary,
		Website:               r.Website,
		Description:           r.Description,
	}, nil
}

// NewUniversityRow converts an in-memory record into its persisted form
func NewUniversityRow(u University) (UniversityRow, error) {
	programs, err := json.Marshal(u.Programs)
	if err != nil {
		return UniversityRow{}, err
	}

	return UniversityRow{
		ID:                    u.ID,
		Name:                  u.Name,
		Country:               u.Country,
		City:                  u.City,
		Region:                u.Region,
		TuitionFee:            u.TuitionFee,
		Currency:              u.Currency,
		Ranking:               u.Ranking,
		EstablishedYear:       u.EstablishedYear,
		StudentPopulation:     u.StudentPopulation,
		InternationalStudents: u.InternationalStudents,
		AcceptanceRate:        u.AcceptanceRate,
		GraduationRate:        u.GraduationRate,
		EmploymentRate:        u.EmploymentRate,
		Programs:              datatypes.JSON(programs),
		ResearchOutput:        string(u.ResearchOutput),
		ScholarshipAvailable:  u.ScholarshipAvailable,
		AvgScholarshipAmount:  u.AvgScholarshipAmount,
		CampusType:            string(u.CampusType),
		HousingAvailable:      u.HousingAvailable,
		AvgStartingSalary:     u.AvgStartingSalary,
		Website:               u.Website,
		Description:           u.Description,
	}, nil
}
