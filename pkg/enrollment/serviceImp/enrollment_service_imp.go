package serviceImp

import (
	"fmt"
	"sort"

	"agridev/entities"
	"agridev/pkg/enrollment/repository"
	"agridev/pkg/enrollment/service"
	"agridev/pkg/errs"
)

type enrollSvc struct{ r repository.EnrollmentRepository }

func New(r repository.EnrollmentRepository) service.EnrollmentService { return &enrollSvc{r} }

// Enroll validates everything before the first write. Membership checks run
// against precomputed id sets instead of one lookup per assignment, and the
// enrollment row plus all practice-land joins go through the store in a
// single transaction.
func (s *enrollSvc) Enroll(farmerID, projectID uint, assignments []service.Assignment) (*entities.ProjectEnrollment, error) {
	if farmerID == 0 || projectID == 0 || assignments == nil {
		return nil, errs.Invalid("Missing or invalid data")
	}

	existing, err := s.r.FindEnrollment(farmerID, projectID)
	if err != nil {
		return nil, errs.Internal("Failed to enroll farmer", err)
	}
	if existing != nil {
		return nil, errs.Conflict("Farmer is already enrolled in this project.")
	}

	ok, err := s.r.FarmerExists(farmerID)
	if err != nil {
		return nil, errs.Internal("Failed to enroll farmer", err)
	}
	if !ok {
		return nil, errs.NotFound("Farmer not found")
	}

	ok, err = s.r.ProjectExists(projectID)
	if err != nil {
		return nil, errs.Internal("Failed to enroll farmer", err)
	}
	if !ok {
		return nil, errs.NotFound("Project not found")
	}

	practiceIDs, err := s.r.PracticeIDs(projectID)
	if err != nil {
		return nil, errs.Internal("Failed to enroll farmer", err)
	}
	validPractices := make(map[uint]struct{}, len(practiceIDs))
	for _, id := range practiceIDs {
		validPractices[id] = struct{}{}
	}

	landIDs, err := s.r.LandIDs(farmerID)
	if err != nil {
		return nil, errs.Internal("Failed to enroll farmer", err)
	}
	validLands := make(map[uint]struct{}, len(landIDs))
	for _, id := range landIDs {
		validLands[id] = struct{}{}
	}

	var joins []entities.TargetPracticeLand
	for _, a := range assignments {
		if _, ok := validPractices[a.TargetPracticeID]; !ok {
			return nil, errs.Invalid(fmt.Sprintf("TargetPractice %d is invalid or not part of the project.", a.TargetPracticeID))
		}
		for _, landID := range a.LandIDs {
			if _, ok := validLands[landID]; !ok {
				return nil, errs.Invalid(fmt.Sprintf("Land %d does not belong to the specified farmer.", landID))
			}
			joins = append(joins, entities.TargetPracticeLand{
				TargetPracticeID: a.TargetPracticeID,
				LandID:           landID,
			})
		}
	}

	e := &entities.ProjectEnrollment{FarmerID: farmerID, ProjectID: projectID}
	if err := s.r.CreateWithAssignments(e, joins); err != nil {
		return nil, errs.Internal("Failed to enroll farmer", err)
	}
	return e, nil
}

// ByPractice lists every farmer enrolled in the practice's parent project,
// name-sorted. The list is deliberately project-wide rather than narrowed
// to farmers with land assigned under this specific practice.
func (s *enrollSvc) ByPractice(practiceID uint) (*service.PracticeEnrollments, error) {
	practice, project, err := s.r.PracticeWithProject(practiceID)
	if err != nil {
		return nil, errs.Internal("Failed to fetch enrollments", err)
	}
	if practice == nil {
		return nil, errs.NotFound("Target Practice not found")
	}

	enrollments, err := s.r.EnrollmentsByProject(practice.ProjectID)
	if err != nil {
		return nil, errs.Internal("Failed to fetch enrollments", err)
	}

	farmers := make([]entities.Farmer, 0, len(enrollments))
	for _, e := range enrollments {
		farmers = append(farmers, e.Farmer)
	}
	sort.Slice(farmers, func(i, j int) bool { return farmers[i].Names < farmers[j].Names })

	return &service.PracticeEnrollments{
		PracticeID:    practice.ID,
		PracticeTitle: practice.Title,
		ProjectID:     project.ID,
		ProjectTitle:  project.Title,
		Farmers:       farmers,
	}, nil
}

func (s *enrollSvc) Stats() (repository.StatsCounts, error) {
	counts, err := s.r.Stats()
	if err != nil {
		return counts, errs.Internal("Failed to retrieve statistics", err)
	}
	return counts, nil
}
