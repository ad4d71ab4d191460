package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"agridev/entities"
	"agridev/pkg/enrollment/repository"
)

type enrollRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.EnrollmentRepository { return &enrollRepo{db} }

func (r *enrollRepo) FindEnrollment(farmerID, projectID uint) (*entities.ProjectEnrollment, error) {
	var e entities.ProjectEnrollment
	err := r.db.Where("farmer_id = ? AND project_id = ?", farmerID, projectID).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *enrollRepo) FarmerExists(farmerID uint) (bool, error) {
	var n int64
	if err := r.db.Model(&entities.Farmer{}).Where("id = ?", farmerID).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *enrollRepo) ProjectExists(projectID uint) (bool, error) {
	var n int64
	if err := r.db.Model(&entities.Project{}).Where("id = ?", projectID).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *enrollRepo) PracticeIDs(projectID uint) ([]uint, error) {
	var ids []uint
	if err := r.db.Model(&entities.TargetPractice{}).Where("project_id = ?", projectID).Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *enrollRepo) LandIDs(farmerID uint) ([]uint, error) {
	var ids []uint
	if err := r.db.Model(&entities.Land{}).Where("farmer_id = ?", farmerID).Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *enrollRepo) CreateWithAssignments(e *entities.ProjectEnrollment, joins []entities.TargetPracticeLand) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(e).Error; err != nil {
			return err
		}
		if len(joins) > 0 {
			if err := tx.Create(&joins).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *enrollRepo) PracticeWithProject(practiceID uint) (*entities.TargetPractice, *entities.Project, error) {
	var p entities.TargetPractice
	if err := r.db.First(&p, practiceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil
		}
		return nil, nil, err
	}
	var proj entities.Project
	if err := r.db.First(&proj, p.ProjectID).Error; err != nil {
		return nil, nil, err
	}
	return &p, &proj, nil
}

func (r *enrollRepo) EnrollmentsByProject(projectID uint) ([]entities.ProjectEnrollment, error) {
	var out []entities.ProjectEnrollment
	err := r.db.Where("project_id = ?", projectID).
		Preload("Farmer").
		Preload("Farmer.Locations").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *enrollRepo) Stats() (repository.StatsCounts, error) {
	var s repository.StatsCounts
	if err := r.db.Model(&entities.Project{}).Count(&s.TotalProjects).Error; err != nil {
		return s, err
	}
	if err := r.db.Model(&entities.TargetPractice{}).Count(&s.TotalPractices).Error; err != nil {
		return s, err
	}
	if err := r.db.Model(&entities.Activity{}).Count(&s.TotalActivities).Error; err != nil {
		return s, err
	}
	if err := r.db.Model(&entities.ProjectEnrollment{}).Distinct("farmer_id").Count(&s.TotalEnrolledFarmers).Error; err != nil {
		return s, err
	}
	if err := r.db.Model(&entities.Attendance{}).Distinct("farmer_id").Count(&s.TotalAttendance).Error; err != nil {
		return s, err
	}
	return s, nil
}
