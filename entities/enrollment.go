package entities

import "time"

// ProjectEnrollment records a farmer's participation in a project.
// At most one row per (farmer, project) pair.
type ProjectEnrollment struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	FarmerID  uint `gorm:"index;uniqueIndex:idx_enrollment_farmer_project" json:"farmer_id"`
	ProjectID uint `gorm:"index;uniqueIndex:idx_enrollment_farmer_project" json:"project_id"`

	Farmer Farmer `json:"farmer,omitempty"`

	CreatedAt time.Time
}

// TargetPracticeLand assigns one of the enrolled farmer's land parcels
// to a target practice of the project.
type TargetPracticeLand struct {
	ID               uint `gorm:"primaryKey" json:"id"`
	TargetPracticeID uint `gorm:"index" json:"target_practice_id"`
	LandID           uint `gorm:"index" json:"land_id"`

	Land Land `json:"land,omitempty"`
}

// Attendance records that a farmer took part in an activity.
// At most one row per (farmer, activity) pair.
type Attendance struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	FarmerID   uint     `gorm:"index;uniqueIndex:idx_attendance_farmer_activity" json:"farmer_id"`
	ActivityID uint     `gorm:"index;uniqueIndex:idx_attendance_farmer_activity" json:"activity_id"`
	Notes      string   `json:"notes"`
	Photos     []string `gorm:"serializer:json" json:"photos"`

	Farmer   Farmer   `json:"farmer,omitempty"`
	Activity Activity `json:"activity,omitempty"`

	CreatedAt time.Time
}
