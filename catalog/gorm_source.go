package catalog

import (
	"context"
	"fmt"

	"github.com/unicompare/unicompare-api/model"
	"gorm.io/gorm"
)

// GORMSource reads the catalog from the universities table. The table is
// read exactly once at startup; the serving path never touches the
// database again.
type GORMSource struct {
	db *gorm.DB
}

// NewGORMSource creates a catalog source backed by the given connection
func NewGORMSource(db *gorm.DB) *GORMSource {
	return &GORMSource{db: db}
}

func (s *GORMSource) Name() string { return "postgres" }

func (s *GORMSource) Load(ctx context.Context) ([]model.University, error) {
	var rows []model.UniversityRow
	if err := s.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("querying universities: %w", err)
	}

	records := make([]model.University, 0, len(rows))
	for i := range rows {
		u, err := rows[i].ToUniversity()
		if err != nil {
			return nil, fmt.Errorf("decoding university %s: %w", rows[i].ID, err)
		}
		records = append(records, u)
	}
	return records, nil
}
