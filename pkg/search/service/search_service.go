package service

import "agridev/entities"

// Criteria carries every filter of the farmer search endpoint. Zero values
// mean "not active"; unrecognized enum values are dropped, not rejected.
type Criteria struct {
	Query     string
	Page      int
	Limit     int
	Ownership []string
	Crops     []string
	Nearby    []string
	MinSize   *float64
	MaxSize   *float64
}

type Result struct {
	Farmers      []entities.Farmer `json:"farmers"`
	TotalFarmers int               `json:"totalFarmers"`
	CurrentPage  int               `json:"currentPage"`
	TotalPages   int               `json:"totalPages"`
}

type SearchService interface {
	SearchFarmers(c Criteria) (*Result, error)
}
