package model

// SortOrder is the direction applied to a sort field
type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

// SortField enumerates the fields a university listing can be ordered by.
// An empty field keeps catalog order.
type SortField string

const (
	SortFieldName            SortField = "name"
	SortFieldRanking         SortField = "ranking"
	SortFieldTuitionFee      SortField = "tuitionFee"
	SortFieldEstablishedYear SortField = "establishedYear"
	SortFieldAcceptanceRate  SortField = "acceptanceRate"
	SortFieldEmploymentRate  SortField = "employmentRate"
)

// DefaultLimit is the page size used when the client does not supply one
const DefaultLimit = 12

// FilterRequest carries one validated list query. Set filters are
// conjunctive across dimensions; Programs is disjunctive within its own
// dimension (a record matches if it offers any requested program).
// Nil range bounds leave that side unconstrained.
type FilterRequest struct {
	Search string `json:"search" validate:"omitempty,max=255"`

	Countries       []string         `json:"countries" validate:"omitempty,dive,min=1"`
	Cities          []string         `json:"cities" validate:"omitempty,dive,min=1"`
	Programs        []string         `json:"programs" validate:"omitempty,dive,min=1"`
	CampusTypes     []CampusType     `json:"campusTypes" validate:"omitempty,dive,oneof=urban suburban rural"`
	ResearchOutputs []ResearchOutput `json:"researchOutputs" validate:"omitempty,dive,oneof=low medium high very-high"`

	MinTuition         *float64 `json:"minTuition" validate:"omitempty,gte=0"`
	MaxTuition         *float64 `json:"maxTuition" validate:"omitempty,gte=0"`
	MinRanking         *int     `json:"minRanking" validate:"omitempty,gte=1"`
	MaxRanking         *int     `json:"maxRanking" validate:"omitempty,gte=1"`
	MinEstablishedYear *int     `json:"minEstablishedYear" validate:"omitempty,gte=1000"`
	MaxEstablishedYear *int     `json:"maxEstablishedYear" validate:"omitempty,gte=1000"`
	MinAcceptanceRate  *float64 `json:"minAcceptanceRate" validate:"omitempty,gte=0,lte=100"`
	MaxAcceptanceRate  *float64 `json:"maxAcceptanceRate" validate:"omitempty,gte=0,lte=100"`
	MinEmploymentRate  *float64 `json:"minEmploymentRate" validate:"omitempty,gte=0,lte=100"`

	ScholarshipOnly bool `json:"scholarshipOnly"`

	Page  int `json:"page" validate:"gte=1"`
	Limit int `json:"limit" validate:"gte=1,lte=100"`

	SortBy    SortField `json:"sortBy" validate:"omitempty,oneof=name ranking tuitionFee establishedYear acceptanceRate employmentRate"`
	SortOrder SortOrder `json:"sortOrder" validate:"omitempty,oneof=asc desc"`
}

// NewFilterRequest returns a request with pagination and ordering defaults
func NewFilterRequest() FilterRequest {
	return FilterRequest{
		Page:      1,
		Limit:     DefaultLimit,
		SortOrder: SortOrderAsc,
	}
}

// HasRankingBound reports whether either ranking bound is set. A bounded
// ranking query excludes unranked records entirely.
func (f *FilterRequest) HasRankingBound() bool {
	return f.MinRanking != nil || f.MaxRanking != nil
}
