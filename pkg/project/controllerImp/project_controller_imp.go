package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"agridev/pkg/errs"
	"agridev/pkg/project/service"
)

type ProjectCtrl struct{ svc service.ProjectService }

func New(svc service.ProjectService) *ProjectCtrl { return &ProjectCtrl{svc} }

func (h *ProjectCtrl) Create(c echo.Context) error {
	var in service.CreateProjectInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Missing required fields"})
	}
	p, err := h.svc.Create(in)
	if err != nil {
		return c.JSON(errs.Status(err), map[string]string{"message": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"message": "Project with activities created successfully",
		"data":    p,
	})
}

func (h *ProjectCtrl) List(c echo.Context) error {
	out, err := h.svc.All()
	if err != nil {
		return c.JSON(errs.Status(err), map[string]string{"message": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "Projects retrieved successfully", "data": out})
}

func (h *ProjectCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("projectId"))
	p, err := h.svc.ByID(uint(id))
	if err != nil {
		return c.JSON(errs.Status(err), map[string]string{"message": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "Project details retrieved", "data": p})
}

func (h *ProjectCtrl) Practices(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("projectId"))
	out, err := h.svc.Practices(uint(id))
	if err != nil {
		return c.JSON(errs.Status(err), map[string]string{"message": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "Project practices retrieved successfully", "data": out})
}

func (h *ProjectCtrl) Activities(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("practiceId"))
	out, err := h.svc.Activities(uint(id))
	if err != nil {
		return c.JSON(errs.Status(err), map[string]string{"message": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "Activities retrieved successfully", "data": out})
}

func (h *ProjectCtrl) CreateActivity(c echo.Context) error {
	var in service.CreateActivityInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "All fields are required."})
	}
	a, err := h.svc.CreateActivity(in)
	if err != nil {
		return c.JSON(errs.Status(err), map[string]string{"message": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{"message": "Activity created successfully", "data": a})
}

func (h *ProjectCtrl) Search(c echo.Context) error {
	crit := service.SearchCriteria{
		StartDate:      c.QueryParam("startDate"),
		EndDate:        c.QueryParam("endDate"),
		TargetPractice: c.QueryParam("targetPractice"),
		Query:          c.QueryParam("query"),
	}
	if v := c.QueryParam("page"); v != "" {
		crit.Page, _ = strconv.Atoi(v)
	}
	if v := c.QueryParam("limit"); v != "" {
		crit.Limit, _ = strconv.Atoi(v)
	}
	out, err := h.svc.Search(crit)
	if err != nil {
		return c.JSON(errs.Status(err), map[string]string{"message": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"data": out.Data,
		"pagination": map[string]any{
			"total":      out.Total,
			"page":       out.Page,
			"limit":      out.Limit,
			"totalPages": out.TotalPages,
		},
	})
}

// Mine lists the authenticated company user's own projects.
func (h *ProjectCtrl) Mine(c echo.Context) error {
	uid, _ := c.Get("uid").(uint)
	out, err := h.svc.ByOwner(uid)
	if err != nil {
		return c.JSON(errs.Status(err), map[string]string{"message": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "Projects retrieved successfully", "data": out})
}
