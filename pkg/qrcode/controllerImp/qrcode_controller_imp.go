package controllerImp

import (
	"encoding/base64"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	qrcode "github.com/skip2/go-qrcode"

	"agridev/pkg/errs"
	"agridev/pkg/farmer/service"
)

type QrCtrl struct{ farmers service.FarmerService }

func New(farmers service.FarmerService) *QrCtrl { return &QrCtrl{farmers} }

// Generate renders the farmer's stored QR payload as a PNG data URL.
func (h *QrCtrl) Generate(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("farmerId"))
	f, err := h.farmers.ByID(uint(id))
	if err != nil {
		return c.JSON(errs.Status(err), map[string]string{"message": err.Error()})
	}

	png, err := qrcode.Encode(f.QRCode, qrcode.Medium, 256)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Internal Server Error"})
	}
	dataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
	return c.JSON(http.StatusOK, map[string]string{"qrCode": dataURL})
}

// Resolve looks a farmer up by scanned QR payload.
func (h *QrCtrl) Resolve(c echo.Context) error {
	f, err := h.farmers.ByQRCode(c.Param("qrCode"))
	if err != nil {
		return c.JSON(errs.Status(err), map[string]string{"message": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"farmer": map[string]any{"id": f.ID, "names": f.Names},
	})
}
