package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"agridev/pkg/enrollment/service"
	"agridev/pkg/errs"
)

type EnrollCtrl struct{ svc service.EnrollmentService }

func New(svc service.EnrollmentService) *EnrollCtrl { return &EnrollCtrl{svc} }

type enrollReq struct {
	FarmerID    uint                 `json:"farmerId"`
	ProjectID   uint                 `json:"projectId"`
	Assignments []service.Assignment `json:"assignments"`
}

func (h *EnrollCtrl) Enroll(c echo.Context) error {
	var req enrollReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Missing or invalid data"})
	}
	e, err := h.svc.Enroll(req.FarmerID, req.ProjectID, req.Assignments)
	if err != nil {
		return c.JSON(errs.Status(err), map[string]string{"message": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"message":    "Farmer enrolled successfully with validated land assignments",
		"enrollment": e,
	})
}

func (h *EnrollCtrl) ByPractice(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("practiceId"))
	out, err := h.svc.ByPractice(uint(id))
	if err != nil {
		return c.JSON(errs.Status(err), map[string]string{"message": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *EnrollCtrl) Stats(c echo.Context) error {
	counts, err := h.svc.Stats()
	if err != nil {
		return c.JSON(errs.Status(err), map[string]string{"message": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"message": "Statistics retrieved successfully",
		"data":    counts,
	})
}
