package service

import "agridev/entities"

// ActivityAttendance is the per-activity view: the activity's context plus
// the attendance rows of farmers still enrolled in its project.
type ActivityAttendance struct {
	Activity   RefTitle              `json:"activity"`
	Practice   RefTitle              `json:"practice"`
	Project    RefTitle              `json:"project"`
	Attendance []entities.Attendance `json:"attendance"`
}

type RefTitle struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

type AttendanceService interface {
	Register(farmerID, activityID uint, notes string, photoRefs []string) (*entities.Attendance, error)
	ByActivity(activityID uint) (*ActivityAttendance, error)
	ByFarmer(farmerID uint) ([]entities.Attendance, error)
}
