package repository

import "agridev/entities"

type AttendanceRepository interface {
	FindAttendance(farmerID, activityID uint) (*entities.Attendance, error)
	// ActivityWithContext resolves the activity plus its owning practice and
	// project, nil if the activity does not exist.
	ActivityWithContext(activityID uint) (*entities.Activity, *entities.TargetPractice, *entities.Project, error)
	IsEnrolled(farmerID, projectID uint) (bool, error)
	EnrolledFarmerIDs(projectID uint) ([]uint, error)
	Create(a *entities.Attendance) error
	ByActivity(activityID uint) ([]entities.Attendance, error)
	// ByFarmer returns attendance newest first with full activity, practice,
	// project and owner context preloaded.
	ByFarmer(farmerID uint) ([]entities.Attendance, error)
}
