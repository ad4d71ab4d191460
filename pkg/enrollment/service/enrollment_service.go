package service

import (
	"agridev/entities"
	"agridev/pkg/enrollment/repository"
)

// Assignment maps one target practice to the land parcels the farmer
// commits to it.
type Assignment struct {
	TargetPracticeID uint   `json:"targetPracticeId"`
	LandIDs          []uint `json:"landIds"`
}

// PracticeEnrollments is the per-practice enrollment view: the practice,
// its parent project title and every farmer enrolled in that project.
type PracticeEnrollments struct {
	PracticeID    uint              `json:"practice_id"`
	PracticeTitle string            `json:"practice_title"`
	ProjectID     uint              `json:"project_id"`
	ProjectTitle  string            `json:"project_title"`
	Farmers       []entities.Farmer `json:"farmers"`
}

type EnrollmentService interface {
	Enroll(farmerID, projectID uint, assignments []Assignment) (*entities.ProjectEnrollment, error)
	ByPractice(practiceID uint) (*PracticeEnrollments, error)
	Stats() (repository.StatsCounts, error)
}
