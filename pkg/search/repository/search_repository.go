package repository

import "agridev/entities"

type SearchRepository interface {
	// AllFarmers loads every farmer with lands and locations preloaded.
	// Filtering happens in the service so that independent land predicates
	// are applied to the same physical land row.
	AllFarmers() ([]entities.Farmer, error)
}
