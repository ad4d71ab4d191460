package serviceImp

import (
	"time"

	"agridev/entities"
	"agridev/pkg/errs"
	"agridev/pkg/project/repository"
	"agridev/pkg/project/service"
)

type projectSvc struct{ r repository.ProjectRepository }

func New(r repository.ProjectRepository) service.ProjectService { return &projectSvc{r} }

func (s *projectSvc) Create(in service.CreateProjectInput) (*entities.Project, error) {
	if in.Title == "" || in.UserID == 0 || in.StartDate == "" || in.EndDate == "" || in.TargetPractices == nil {
		return nil, errs.Invalid("Missing required fields")
	}

	owner, err := s.r.UserWithCompany(in.UserID)
	if err != nil {
		return nil, errs.Internal("Error creating project with activities", err)
	}
	if owner == nil || owner.Type != entities.UserTypeCompany || owner.Company == nil {
		return nil, errs.Forbidden("Selected user is not a valid company.")
	}

	start, err := parseDate(in.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate(in.EndDate)
	if err != nil {
		return nil, err
	}

	p := &entities.Project{
		Title:       in.Title,
		Description: in.Description,
		OwnerID:     in.UserID,
		StartDate:   start,
		EndDate:     end,
		Objectives:  in.Objectives,
	}

	practices := make([]repository.PracticeWithActivities, 0, len(in.TargetPractices))
	for _, tp := range in.TargetPractices {
		pw := repository.PracticeWithActivities{
			Practice: entities.TargetPractice{
				Title:            tp.Title,
				InitialSituation: tp.InitialSituation,
			},
		}
		for _, a := range tp.Activities {
			aStart, err := parseDate(a.StartDate)
			if err != nil {
				return nil, err
			}
			aEnd, err := parseDate(a.EndDate)
			if err != nil {
				return nil, err
			}
			pw.Activities = append(pw.Activities, entities.Activity{
				Title:       a.Title,
				Description: a.Description,
				StartDate:   aStart,
				EndDate:     aEnd,
			})
		}
		practices = append(practices, pw)
	}

	if err := s.r.CreateAggregate(p, practices); err != nil {
		return nil, errs.Internal("Error creating project with activities", err)
	}
	return p, nil
}

func (s *projectSvc) All() ([]entities.Project, error) {
	out, err := s.r.All()
	if err != nil {
		return nil, errs.Internal("Error retrieving projects", err)
	}
	return out, nil
}

func (s *projectSvc) ByID(id uint) (*entities.Project, error) {
	if id == 0 {
		return nil, errs.Invalid("Project ID is required")
	}
	p, err := s.r.ByID(id)
	if err != nil {
		return nil, errs.Internal("Error fetching project details", err)
	}
	if p == nil {
		return nil, errs.NotFound("Project not found")
	}
	return p, nil
}

func (s *projectSvc) Practices(projectID uint) ([]entities.TargetPractice, error) {
	if projectID == 0 {
		return nil, errs.Invalid("Project ID is required")
	}
	out, err := s.r.PracticesOf(projectID)
	if err != nil {
		return nil, errs.Internal("Error retrieving project practices", err)
	}
	return out, nil
}

func (s *projectSvc) Activities(practiceID uint) ([]entities.Activity, error) {
	if practiceID == 0 {
		return nil, errs.Invalid("Practice ID is required")
	}
	out, err := s.r.ActivitiesOf(practiceID)
	if err != nil {
		return nil, errs.Internal("Error retrieving activities", err)
	}
	return out, nil
}

func (s *projectSvc) CreateActivity(in service.CreateActivityInput) (*entities.Activity, error) {
	if in.Title == "" || in.Description == "" || in.StartDate == "" || in.EndDate == "" || in.TargetPracticeID == 0 {
		return nil, errs.Invalid("All fields are required.")
	}
	ok, err := s.r.PracticeExists(in.TargetPracticeID)
	if err != nil {
		return nil, errs.Internal("Error creating activity", err)
	}
	if !ok {
		return nil, errs.NotFound("Target Practice not found.")
	}

	start, err := parseDate(in.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate(in.EndDate)
	if err != nil {
		return nil, err
	}

	a := &entities.Activity{
		Title:            in.Title,
		Description:      in.Description,
		StartDate:        start,
		EndDate:          end,
		TargetPracticeID: in.TargetPracticeID,
	}
	if err := s.r.CreateActivity(a); err != nil {
		return nil, errs.Internal("Error creating activity", err)
	}
	return a, nil
}

func (s *projectSvc) Search(c service.SearchCriteria) (*service.ProjectPage, error) {
	if c.Page < 1 {
		c.Page = 1
	}
	if c.Limit < 1 {
		c.Limit = 10
	}

	var filters repository.SearchFilters
	if c.StartDate != "" {
		t, err := parseDate(c.StartDate)
		if err != nil {
			return nil, err
		}
		filters.StartAfter = &t
	}
	if c.EndDate != "" {
		t, err := parseDate(c.EndDate)
		if err != nil {
			return nil, err
		}
		filters.EndBefore = &t
	}
	filters.Query = c.Query
	filters.TargetPractice = c.TargetPractice

	projects, total, err := s.r.Search(filters, c.Page, c.Limit)
	if err != nil {
		return nil, errs.Internal("Error searching projects", err)
	}
	totalPages := (total + int64(c.Limit) - 1) / int64(c.Limit)
	return &service.ProjectPage{
		Data:       projects,
		Total:      total,
		Page:       c.Page,
		Limit:      c.Limit,
		TotalPages: totalPages,
	}, nil
}

func (s *projectSvc) ByOwner(ownerID uint) ([]entities.Project, error) {
	if ownerID == 0 {
		return nil, errs.Invalid("User ID is required")
	}
	out, err := s.r.ByOwner(ownerID)
	if err != nil {
		return nil, errs.Internal("Error retrieving projects", err)
	}
	if len(out) == 0 {
		return nil, errs.NotFound("No projects found for this user")
	}
	return out, nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, errs.Invalid("Invalid date: " + v)
	}
	return t, nil
}
