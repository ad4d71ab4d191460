package controllerImp

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"agridev/pkg/company/service"
	"agridev/pkg/errs"
	farmerSvc "agridev/pkg/farmer/service"
	"agridev/pkg/upload"
)

type CompanyCtrl struct {
	svc   service.CompanyService
	store *upload.Store
}

func New(svc service.CompanyService, store *upload.Store) *CompanyCtrl {
	return &CompanyCtrl{svc: svc, store: store}
}

// Create accepts multipart form data with an optional "logo" file and a
// JSON-encoded "locations" field.
func (h *CompanyCtrl) Create(c echo.Context) error {
	in := service.CreateCompanyInput{
		Name:     c.FormValue("name"),
		Email:    c.FormValue("email"),
		Password: c.FormValue("password"),
		TIN:      c.FormValue("tin"),
	}

	if raw := c.FormValue("locations"); raw != "" {
		var locs []farmerSvc.NewLocation
		if err := json.Unmarshal([]byte(raw), &locs); err == nil {
			in.Locations = locs
		}
	}

	if fh, err := c.FormFile("logo"); err == nil && fh != nil {
		ref, err := h.store.Save("logos", fh)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": err.Error()})
		}
		in.LogoRef = ref
	}

	user, comp, err := h.svc.Create(in)
	if err != nil {
		return c.JSON(errs.Status(err), map[string]string{"message": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"message": "Company created successfully",
		"usercompany": map[string]any{
			"user":    user,
			"company": comp,
		},
	})
}

func (h *CompanyCtrl) List(c echo.Context) error {
	out, err := h.svc.All()
	if err != nil {
		return c.JSON(errs.Status(err), map[string]string{"message": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "Companies retrieved successfully", "data": out})
}

func (h *CompanyCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	comp, err := h.svc.ByID(uint(id))
	if err != nil {
		return c.JSON(errs.Status(err), map[string]string{"message": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"company": comp})
}

func (h *CompanyCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.svc.Delete(uint(id)); err != nil {
		return c.JSON(errs.Status(err), map[string]string{"message": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Company and associated user deleted successfully"})
}
