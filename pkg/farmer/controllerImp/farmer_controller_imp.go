package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"agridev/pkg/errs"
	"agridev/pkg/farmer/service"
)

type FarmerCtrl struct{ svc service.FarmerService }

func New(svc service.FarmerService) *FarmerCtrl { return &FarmerCtrl{svc} }

func (h *FarmerCtrl) Create(c echo.Context) error {
	var in service.CreateFarmerInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Missing or invalid data"})
	}
	f, err := h.svc.Create(in)
	if err != nil {
		return c.JSON(errs.Status(err), map[string]string{"message": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"message": "Farmer created successfully",
		"farmer":  f,
	})
}

func (h *FarmerCtrl) List(c echo.Context) error {
	page, limit := 1, 10
	if v := c.QueryParam("page"); v != "" {
		page, _ = strconv.Atoi(v)
	}
	if v := c.QueryParam("limit"); v != "" {
		limit, _ = strconv.Atoi(v)
	}
	out, err := h.svc.List(page, limit)
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

func (h *FarmerCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("farmerId"))
	f, err := h.svc.ByID(uint(id))
	if err != nil {
		return c.JSON(errs.Status(err), map[string]string{"message": err.Error()})
	}
	return c.JSON(http.StatusOK, f)
}

func (h *FarmerCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("farmerId"))
	if id == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Farmer ID is missing"})
	}
	if err := h.svc.Delete(uint(id)); err != nil {
		return c.JSON(errs.Status(err), map[string]string{"message": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Farmer and associated data deleted successfully"})
}
