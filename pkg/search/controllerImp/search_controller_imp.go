package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"agridev/pkg/errs"
	"agridev/pkg/search/service"
)

type SearchCtrl struct{ svc service.SearchService }

func New(svc service.SearchService) *SearchCtrl { return &SearchCtrl{svc} }

func (h *SearchCtrl) SearchFarmers(c echo.Context) error {
	crit := service.Criteria{
		Query:     c.QueryParam("query"),
		Ownership: queryValues(c, "ownership"),
		Crops:     queryValues(c, "crops"),
		Nearby:    queryValues(c, "nearby"),
	}
	if v := c.QueryParam("page"); v != "" {
		crit.Page, _ = strconv.Atoi(v)
	}
	if v := c.QueryParam("limit"); v != "" {
		crit.Limit, _ = strconv.Atoi(v)
	}
	if v := c.QueryParam("minSize"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			crit.MinSize = &f
		}
	}
	if v := c.QueryParam("maxSize"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			crit.MaxSize = &f
		}
	}

	res, err := h.svc.SearchFarmers(crit)
	if err != nil {
		return c.JSON(errs.Status(err), map[string]string{"message": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"message":      "Farmers and lands fetched successfully",
		"farmers":      res.Farmers,
		"totalFarmers": res.TotalFarmers,
		"currentPage":  res.CurrentPage,
		"totalPages":   res.TotalPages,
	})
}

// queryValues collects repeated query params (?ownership=a&ownership=b).
func queryValues(c echo.Context, key string) []string {
	return c.QueryParams()[key]
}
