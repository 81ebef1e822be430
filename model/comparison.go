package model

// ComparisonDifferences holds the absolute differences between the two
// compared universities. Ranking is nil unless both records are ranked.
type ComparisonDifferences struct {
	TuitionFee     float64 `json:"tuitionFee"`
	Ranking        *int    `json:"ranking"`
	AcceptanceRate float64 `json:"acceptanceRate"`
	EmploymentRate float64 `json:"employmentRate"`
}

// ComparisonResult pairs two universities with their difference metrics
type ComparisonResult struct {
	Universities [2]University         `json:"universities"`
	Differences  ComparisonDifferences `json:"differences"`
}
