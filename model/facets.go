package model

// Facets are the distinct values present across the entire catalog,
// used by clients to populate selectable filter options. They always
// describe the full catalog, never the filtered subset.
type Facets struct {
	Countries []string `json:"countries"`
	Cities    []string `json:"cities"`
	Programs  []string `json:"programs"`
}
