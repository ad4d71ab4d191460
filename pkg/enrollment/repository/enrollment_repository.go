package repository

import "agridev/entities"

type EnrollmentRepository interface {
	FindEnrollment(farmerID, projectID uint) (*entities.ProjectEnrollment, error)
	FarmerExists(farmerID uint) (bool, error)
	ProjectExists(projectID uint) (bool, error)
	PracticeIDs(projectID uint) ([]uint, error)
	LandIDs(farmerID uint) ([]uint, error)
	// CreateWithAssignments persists the enrollment and every join row in
	// one transaction; a mid-sequence failure leaves nothing behind.
	CreateWithAssignments(e *entities.ProjectEnrollment, joins []entities.TargetPracticeLand) error

	PracticeWithProject(practiceID uint) (*entities.TargetPractice, *entities.Project, error)
	EnrollmentsByProject(projectID uint) ([]entities.ProjectEnrollment, error)

	Stats() (StatsCounts, error)
}

type StatsCounts struct {
	TotalProjects        int64 `json:"totalProjects"`
	TotalPractices       int64 `json:"totalPractices"`
	TotalActivities      int64 `json:"totalActivities"`
	TotalEnrolledFarmers int64 `json:"totalEnrolledFarmers"`
	TotalAttendance      int64 `json:"totalAttendance"`
}
