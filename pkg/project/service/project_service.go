package service

import "agridev/entities"

type NewActivity struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	StartDate   string `json:"startDate"` // YYYY-MM-DD
	EndDate     string `json:"endDate"`
}

type NewPractice struct {
	Title            string        `json:"title"`
	InitialSituation string        `json:"initialSituation"`
	Activities       []NewActivity `json:"activities,omitempty"`
}

// CreateProjectInput is the project aggregate: the project row plus its
// target practices, each with its activities.
type CreateProjectInput struct {
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	UserID          uint          `json:"userId"` // owning company's user id
	StartDate       string        `json:"startDate"`
	EndDate         string        `json:"endDate"`
	Objectives      string        `json:"objectives"`
	TargetPractices []NewPractice `json:"targetPractices"`
}

type CreateActivityInput struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	StartDate        string `json:"startDate"`
	EndDate          string `json:"endDate"`
	TargetPracticeID uint   `json:"targetPracticeId"`
}

type SearchCriteria struct {
	StartDate      string
	EndDate        string
	TargetPractice string
	Query          string
	Page           int
	Limit          int
}

type ProjectPage struct {
	Data       []entities.Project `json:"data"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int64              `json:"totalPages"`
}

type ProjectService interface {
	Create(in CreateProjectInput) (*entities.Project, error)
	All() ([]entities.Project, error)
	ByID(id uint) (*entities.Project, error)
	Practices(projectID uint) ([]entities.TargetPractice, error)
	Activities(practiceID uint) ([]entities.Activity, error)
	CreateActivity(in CreateActivityInput) (*entities.Activity, error)
	Search(c SearchCriteria) (*ProjectPage, error)
	ByOwner(ownerID uint) ([]entities.Project, error)
}
