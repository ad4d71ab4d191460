package repository

import (
	"time"

	"agridev/entities"
)

// SearchFilters are the store-level project search criteria. Nil/empty
// values are inactive.
type SearchFilters struct {
	StartAfter     *time.Time
	EndBefore      *time.Time
	Query          string
	TargetPractice string
}

// PracticeWithActivities pairs a practice row with the activities created
// under it.
type PracticeWithActivities struct {
	Practice   entities.TargetPractice
	Activities []entities.Activity
}

type ProjectRepository interface {
	UserWithCompany(id uint) (*entities.User, error)
	// CreateAggregate writes project, practices and activities atomically.
	CreateAggregate(p *entities.Project, practices []PracticeWithActivities) error
	All() ([]entities.Project, error)
	ByID(id uint) (*entities.Project, error)
	PracticesOf(projectID uint) ([]entities.TargetPractice, error)
	PracticeExists(id uint) (bool, error)
	ActivitiesOf(practiceID uint) ([]entities.Activity, error)
	CreateActivity(a *entities.Activity) error
	Search(f SearchFilters, page, limit int) ([]entities.Project, int64, error)
	ByOwner(ownerID uint) ([]entities.Project, error)
}
