package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"agridev/entities"
	"agridev/pkg/attendance/repository"
)

type attRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.AttendanceRepository { return &attRepo{db} }

func (r *attRepo) FindAttendance(farmerID, activityID uint) (*entities.Attendance, error) {
	var a entities.Attendance
	err := r.db.Where("farmer_id = ? AND activity_id = ?", farmerID, activityID).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *attRepo) ActivityWithContext(activityID uint) (*entities.Activity, *entities.TargetPractice, *entities.Project, error) {
	var act entities.Activity
	if err := r.db.First(&act, activityID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil, nil
		}
		return nil, nil, nil, err
	}
	var practice entities.TargetPractice
	if err := r.db.First(&practice, act.TargetPracticeID).Error; err != nil {
		return nil, nil, nil, err
	}
	var project entities.Project
	if err := r.db.First(&project, practice.ProjectID).Error; err != nil {
		return nil, nil, nil, err
	}
	return &act, &practice, &project, nil
}

func (r *attRepo) IsEnrolled(farmerID, projectID uint) (bool, error) {
	var n int64
	err := r.db.Model(&entities.ProjectEnrollment{}).
		Where("farmer_id = ? AND project_id = ?", farmerID, projectID).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *attRepo) EnrolledFarmerIDs(projectID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&entities.ProjectEnrollment{}).
		Where("project_id = ?", projectID).
		Pluck("farmer_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *attRepo) Create(a *entities.Attendance) error { return r.db.Create(a).Error }

func (r *attRepo) ByActivity(activityID uint) ([]entities.Attendance, error) {
	var out []entities.Attendance
	err := r.db.Where("activity_id = ?", activityID).
		Preload("Farmer").
		Preload("Farmer.Locations").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *attRepo) ByFarmer(farmerID uint) ([]entities.Attendance, error) {
	var out []entities.Attendance
	err := r.db.Where("farmer_id = ?", farmerID).
		Order("created_at DESC").
		Preload("Farmer").
		Preload("Activity").
		Preload("Activity.TargetPractice").
		Preload("Activity.TargetPractice.Project").
		Preload("Activity.TargetPractice.Project.Owner").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
