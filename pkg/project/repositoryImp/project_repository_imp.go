package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"agridev/entities"
	"agridev/pkg/project/repository"
)

type projectRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ProjectRepository { return &projectRepo{db} }

func (r *projectRepo) UserWithCompany(id uint) (*entities.User, error) {
	var u entities.User
	err := r.db.Preload("Company").First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *projectRepo) CreateAggregate(p *entities.Project, practices []repository.PracticeWithActivities) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}
		for i := range practices {
			pw := &practices[i]
			pw.Practice.ProjectID = p.ID
			if err := tx.Create(&pw.Practice).Error; err != nil {
				return err
			}
			if len(pw.Activities) > 0 {
				for j := range pw.Activities {
					pw.Activities[j].TargetPracticeID = pw.Practice.ID
				}
				if err := tx.Create(&pw.Activities).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func (r *projectRepo) All() ([]entities.Project, error) {
	var out []entities.Project
	err := r.db.
		Preload("Owner").
		Preload("Owner.Company").
		Preload("TargetPractices").
		Preload("TargetPractices.Activities").
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *projectRepo) ByID(id uint) (*entities.Project, error) {
	var p entities.Project
	err := r.db.
		Preload("Owner").
		Preload("Owner.Company").
		Preload("Enrollments").
		Preload("Enrollments.Farmer").
		Preload("Enrollments.Farmer.Locations").
		Preload("TargetPractices").
		Preload("TargetPractices.Activities").
		Preload("TargetPractices.Lands").
		Preload("TargetPractices.Lands.Land").
		Preload("TargetPractices.Lands.Land.Locations").
		Preload("TargetPractices.Lands.Land.Locations.Location").
		First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *projectRepo) PracticesOf(projectID uint) ([]entities.TargetPractice, error) {
	var out []entities.TargetPractice
	err := r.db.Where("project_id = ?", projectID).Preload("Activities").Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *projectRepo) PracticeExists(id uint) (bool, error) {
	var n int64
	if err := r.db.Model(&entities.TargetPractice{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *projectRepo) ActivitiesOf(practiceID uint) ([]entities.Activity, error) {
	var out []entities.Activity
	if err := r.db.Where("target_practice_id = ?", practiceID).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *projectRepo) CreateActivity(a *entities.Activity) error { return r.db.Create(a).Error }

func (r *projectRepo) Search(f repository.SearchFilters, page, limit int) ([]entities.Project, int64, error) {
	q := r.db.Model(&entities.Project{})
	if f.StartAfter != nil {
		q = q.Where("start_date >= ?", *f.StartAfter)
	}
	if f.EndBefore != nil {
		q = q.Where("end_date <= ?", *f.EndBefore)
	}
	if f.Query != "" {
		like := "%" + f.Query + "%"
		q = q.Where("title LIKE ? OR description LIKE ? OR objectives LIKE ?", like, like, like)
	}
	if f.TargetPractice != "" {
		q = q.Where("id IN (?)", r.db.Model(&entities.TargetPractice{}).
			Select("project_id").
			Where("title LIKE ?", "%"+f.TargetPractice+"%"))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []entities.Project
	err := q.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Preload("TargetPractices").
		Preload("TargetPractices.Activities").
		Find(&out).Error
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *projectRepo) ByOwner(ownerID uint) ([]entities.Project, error) {
	var out []entities.Project
	err := r.db.Where("owner_id = ?", ownerID).
		Preload("TargetPractices").
		Preload("TargetPractices.Activities").
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
