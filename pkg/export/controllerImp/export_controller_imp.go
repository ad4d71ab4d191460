package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"agridev/pkg/export"
	"agridev/pkg/export/repository"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportCtrl struct{ repo repository.ExportRepository }

func New(repo repository.ExportRepository) *ExportCtrl { return &ExportCtrl{repo} }

func (h *ExportCtrl) Farmers(c echo.Context) error {
	farmers, err := h.repo.FarmersWithHousehold()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Internal Server Error"})
	}

	buf, err := export.WriteWorkbook("Farmers", export.FarmerColumns(), export.FlattenFarmers(farmers))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Internal Server Error"})
	}

	c.Response().Header().Set("Content-Disposition", "attachment; filename=farmers.xlsx")
	return c.Blob(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (h *ExportCtrl) Projects(c echo.Context) error {
	var filter repository.ProjectFilter
	if err := c.Bind(&filter); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Missing or invalid data"})
	}

	projects, err := h.repo.ProjectsWithGraph(filter)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Internal Server Error"})
	}
	names, err := h.repo.EnrolledFarmerNames()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Internal Server Error"})
	}

	buf, err := export.WriteWorkbook("Projects", export.ProjectColumns(), export.FlattenProjects(projects, names))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Internal Server Error"})
	}

	c.Response().Header().Set("Content-Disposition", "attachment; filename=projects.xlsx")
	return c.Blob(http.StatusOK, xlsxContentType, buf.Bytes())
}
