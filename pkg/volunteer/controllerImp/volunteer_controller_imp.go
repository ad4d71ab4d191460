package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"agridev/pkg/errs"
	"agridev/pkg/volunteer/service"
)

type VolunteerCtrl struct {
	svc service.VolunteerService
}

func New(svc service.VolunteerService) *VolunteerCtrl {
	return &VolunteerCtrl{svc: svc}
}

func (h *VolunteerCtrl) Create(c echo.Context) error {
	var in service.CreateVolunteerInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
	}
	sess, err := h.svc.Create(in)
	if err != nil {
		return c.JSON(errs.Status(err), map[string]string{"message": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"message": "Volunteer created successfully",
		"user":    sess.User,
		"token":   sess.Token,
	})
}

func (h *VolunteerCtrl) List(c echo.Context) error {
	out, err := h.svc.All()
	if err != nil {
		return c.JSON(errs.Status(err), map[string]string{"message": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "Volunteers retrieved successfully", "data": out})
}

func (h *VolunteerCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	u, err := h.svc.ByID(uint(id))
	if err != nil {
		return c.JSON(errs.Status(err), map[string]string{"message": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"volunteer": u})
}

func (h *VolunteerCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.svc.Delete(uint(id)); err != nil {
		return c.JSON(errs.Status(err), map[string]string{"message": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Volunteer deleted successfully"})
}
