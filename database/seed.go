package database

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/unicompare/unicompare-api/catalog"
	"github.com/unicompare/unicompare-api/model"
	"gorm.io/gorm"
)

// Seeder populates the universities table from the embedded catalog so
// that CATALOG_SOURCE=postgres has data to serve. Seeding is an offline
// operation (cmd/seed); the API itself never writes.
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// RunSeeds migrates the schema and runs all seed functions
func RunSeeds(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.UniversityRow{}); err != nil {
		return fmt.Errorf("failed to migrate universities table: %w", err)
	}
	return NewSeeder(db).SeedUniversities()
}

// SeedUniversities inserts the embedded catalog records. Records whose
// table entry already exists are left untouched.
func (s *Seeder) SeedUniversities() error {
	var count int64
	if err := s.db.Model(&model.UniversityRow{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("Universities already exist, skipping...")
		return nil
	}

	records := catalog.Static()
	rows := make([]model.UniversityRow, 0, len(records))
	for _, u := range records {
		if u.ID == "" {
			// Static records always carry slugs; external catalogs may not
			u.ID = uuid.NewString()
		}
		row, err := model.NewUniversityRow(u)
		if err != nil {
			return fmt.Errorf("failed to encode university %s: %w", u.Name, err)
		}
		rows = append(rows, row)
	}

	if err := s.db.Create(&rows).Error; err != nil {
		return err
	}

	log.Printf("Seeded %d universities\n", len(rows))
	return nil
}
