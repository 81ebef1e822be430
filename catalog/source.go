package catalog

import (
	"context"
	"fmt"

	"github.com/unicompare/unicompare-api/model"
)

// Source supplies the catalog records exactly once at process start.
// A source failure is fatal; the service never runs with a partial or
// degraded catalog.
type Source interface {
	// Name identifies the source in logs
	Name() string
	// Load fetches the full record set
	Load(ctx context.Context) ([]model.University, error)
}

// StaticSource serves the records embedded in the binary. It is the
// default source and needs no external infrastructure.
type StaticSource struct{}

func (StaticSource) Name() string { return "static" }

func (StaticSource) Load(_ context.Context) ([]model.University, error) {
	return Static(), nil
}

// FromSource loads records from the given source and builds the catalog
func FromSource(ctx context.Context, src Source) (*Catalog, error) {
	records, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading catalog from %s source: %w", src.Name(), err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("catalog source %s returned no records", src.Name())
	}
	return New(records)
}
