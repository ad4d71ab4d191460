package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"agridev/pkg/attendance/service"
	"agridev/pkg/errs"
	"agridev/pkg/upload"
)

type AttendanceCtrl struct {
	svc   service.AttendanceService
	store *upload.Store
}

func New(svc service.AttendanceService, store *upload.Store) *AttendanceCtrl {
	return &AttendanceCtrl{svc: svc, store: store}
}

// Register accepts multipart form data: farmerId, activityId, notes and any
// number of photo files under the "photos" field.
func (h *AttendanceCtrl) Register(c echo.Context) error {
	farmerID, _ := strconv.Atoi(c.FormValue("farmerId"))
	activityID, _ := strconv.Atoi(c.FormValue("activityId"))
	notes := c.FormValue("notes")

	var refs []string
	if form, err := c.MultipartForm(); err == nil && form != nil {
		saved, err := h.store.SaveAll("attendance", form.File["photos"])
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": err.Error()})
		}
		refs = saved
	}

	a, err := h.svc.Register(uint(farmerID), uint(activityID), notes, refs)
	if err != nil {
		return c.JSON(errs.Status(err), map[string]string{"message": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{"message": "Attendance recorded", "data": a})
}

func (h *AttendanceCtrl) ByActivity(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("activityId"))
	out, err := h.svc.ByActivity(uint(id))
	if err != nil {
		return c.JSON(errs.Status(err), map[string]string{"message": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AttendanceCtrl) ByFarmer(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("farmerId"))
	records, err := h.svc.ByFarmer(uint(id))
	if err != nil {
		return c.JSON(errs.Status(err), map[string]string{"message": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"message": "Attendance records retrieved successfully",
		"data":    records,
	})
}
