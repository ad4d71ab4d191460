package repositoryImp

import (
	"gorm.io/gorm"

	"agridev/entities"
	"agridev/pkg/export/repository"
)

type exportRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ExportRepository { return &exportRepo{db} }

func (r *exportRepo) FarmersWithHousehold() ([]entities.Farmer, error) {
	var out []entities.Farmer
	err := r.db.
		Preload("Partner").
		Preload("Children").
		Preload("Lands").
		Preload("Lands.Locations").
		Preload("Lands.Locations.Location").
		Preload("Locations").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *exportRepo) ProjectsWithGraph(f repository.ProjectFilter) ([]entities.Project, error) {
	q := r.db.
		Preload("Owner").
		Preload("Owner.Company").
		Preload("TargetPractices", func(tx *gorm.DB) *gorm.DB {
			if f.PracticeID != 0 {
				tx = tx.Where("id = ?", f.PracticeID)
			}
			return tx
		}).
		Preload("TargetPractices.Activities", func(tx *gorm.DB) *gorm.DB {
			if f.ActivityID != 0 {
				tx = tx.Where("id = ?", f.ActivityID)
			}
			return tx
		}).
		Preload("TargetPractices.Lands").
		Preload("TargetPractices.Lands.Land").
		Preload("TargetPractices.Lands.Land.Locations").
		Preload("TargetPractices.Lands.Land.Locations.Location")
	if f.ProjectID != 0 {
		q = q.Where("id = ?", f.ProjectID)
	}

	var out []entities.Project
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *exportRepo) EnrolledFarmerNames() (map[uint][]string, error) {
	var enrollments []entities.ProjectEnrollment
	if err := r.db.Preload("Farmer").Find(&enrollments).Error; err != nil {
		return nil, err
	}
	names := make(map[uint][]string)
	for _, e := range enrollments {
		names[e.ProjectID] = append(names[e.ProjectID], e.Farmer.Names)
	}
	return names, nil
}
