package entities

import "time"

type Project struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	OwnerID     uint      `gorm:"index" json:"owner_id"` // user id of the owning company
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Objectives  string    `json:"objectives"`

	Owner           User                `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	TargetPractices []TargetPractice    `json:"target_practices,omitempty"`
	Enrollments     []ProjectEnrollment `gorm:"foreignKey:ProjectID" json:"farmers,omitempty"`

	CreatedAt time.Time
}

type TargetPractice struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	ProjectID        uint   `gorm:"index" json:"project_id"`
	Title            string `json:"title"`
	InitialSituation string `json:"initial_situation"`

	Project    *Project             `json:"project,omitempty"`
	Activities []Activity           `json:"activities,omitempty"`
	Lands      []TargetPracticeLand `json:"lands,omitempty"`

	CreatedAt time.Time
}

type Activity struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	TargetPracticeID uint      `gorm:"index" json:"target_practice_id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	StartDate        time.Time `json:"start_date"`
	EndDate          time.Time `json:"end_date"`

	TargetPractice *TargetPractice `json:"target_practice,omitempty"`

	CreatedAt time.Time
}
