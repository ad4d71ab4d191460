package repository

import "agridev/entities"

// ProjectFilter optionally narrows the project export. Zero means "all".
type ProjectFilter struct {
	ProjectID  uint `json:"projectId" query:"projectId"`
	PracticeID uint `json:"practiceId" query:"practiceId"`
	ActivityID uint `json:"activityId" query:"activityId"`
}

type ExportRepository interface {
	// FarmersWithHousehold loads every farmer with partner, children, lands
	// and locations for the farmer export.
	FarmersWithHousehold() ([]entities.Farmer, error)
	// ProjectsWithGraph loads projects with owner, practices, activities and
	// practice-land assignments (lands with their locations).
	ProjectsWithGraph(f ProjectFilter) ([]entities.Project, error)
	// EnrolledFarmerNames maps project id to the names of enrolled farmers.
	EnrolledFarmerNames() (map[uint][]string, error)
}
