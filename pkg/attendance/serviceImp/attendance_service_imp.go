package serviceImp

import (
	"sort"

	"agridev/entities"
	"agridev/pkg/attendance/repository"
	"agridev/pkg/attendance/service"
	"agridev/pkg/errs"
)

type attSvc struct{ r repository.AttendanceRepository }

func New(r repository.AttendanceRepository) service.AttendanceService { return &attSvc{r} }

// Register checks, in order: input, duplicate record, activity existence,
// then enrollment in the activity's project. Photo references are opaque
// strings supplied by the upload collaborator.
func (s *attSvc) Register(farmerID, activityID uint, notes string, photoRefs []string) (*entities.Attendance, error) {
	if farmerID == 0 || activityID == 0 {
		return nil, errs.Invalid("Missing required fields")
	}

	existing, err := s.r.FindAttendance(farmerID, activityID)
	if err != nil {
		return nil, errs.Internal("Error registering attendance", err)
	}
	if existing != nil {
		return nil, errs.Conflict("Attendance already recorded for this activity")
	}

	activity, practice, _, err := s.r.ActivityWithContext(activityID)
	if err != nil {
		return nil, errs.Internal("Error registering attendance", err)
	}
	if activity == nil {
		return nil, errs.NotFound("Activity not found")
	}

	enrolled, err := s.r.IsEnrolled(farmerID, practice.ProjectID)
	if err != nil {
		return nil, errs.Internal("Error registering attendance", err)
	}
	if !enrolled {
		return nil, errs.Forbidden("Farmer is not enrolled in this project")
	}

	if photoRefs == nil {
		photoRefs = []string{}
	}
	a := &entities.Attendance{
		FarmerID:   farmerID,
		ActivityID: activityID,
		Notes:      notes,
		Photos:     photoRefs,
	}
	if err := s.r.Create(a); err != nil {
		return nil, errs.Internal("Error registering attendance", err)
	}
	return a, nil
}

// ByActivity drops attendance rows whose farmer is no longer enrolled in
// the activity's project, so revoked enrollments never resurface here.
func (s *attSvc) ByActivity(activityID uint) (*service.ActivityAttendance, error) {
	activity, practice, project, err := s.r.ActivityWithContext(activityID)
	if err != nil {
		return nil, errs.Internal("Error fetching attendance", err)
	}
	if activity == nil {
		return nil, errs.NotFound("Activity, practice, or project not found")
	}

	enrolledIDs, err := s.r.EnrolledFarmerIDs(practice.ProjectID)
	if err != nil {
		return nil, errs.Internal("Error fetching attendance", err)
	}
	enrolled := make(map[uint]struct{}, len(enrolledIDs))
	for _, id := range enrolledIDs {
		enrolled[id] = struct{}{}
	}

	records, err := s.r.ByActivity(activityID)
	if err != nil {
		return nil, errs.Internal("Error fetching attendance", err)
	}

	valid := make([]entities.Attendance, 0, len(records))
	for _, rec := range records {
		if _, ok := enrolled[rec.FarmerID]; ok {
			valid = append(valid, rec)
		}
	}
	sort.Slice(valid, func(i, j int) bool { return valid[i].Farmer.Names < valid[j].Farmer.Names })

	return &service.ActivityAttendance{
		Activity:   service.RefTitle{ID: activity.ID, Title: activity.Title},
		Practice:   service.RefTitle{ID: practice.ID, Title: practice.Title},
		Project:    service.RefTitle{ID: project.ID, Title: project.Title},
		Attendance: valid,
	}, nil
}

func (s *attSvc) ByFarmer(farmerID uint) ([]entities.Attendance, error) {
	if farmerID == 0 {
		return nil, errs.Invalid("Missing farmerId parameter")
	}
	records, err := s.r.ByFarmer(farmerID)
	if err != nil {
		return nil, errs.Internal("Error fetching attendance records", err)
	}
	if len(records) == 0 {
		return nil, errs.NotFound("No attendance records found for this farmer")
	}
	return records, nil
}
