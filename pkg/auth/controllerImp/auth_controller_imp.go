package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"agridev/pkg/auth/service"
	"agridev/pkg/errs"
)

type AuthCtrl struct{ svc service.AuthService }

func NewAuthController(svc service.AuthService) *AuthCtrl { return &AuthCtrl{svc} }

func (h *AuthCtrl) Register(c echo.Context) error {
	var in service.RegisterInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Missing or invalid data"})
	}
	sess, err := h.svc.Register(in)
	if err != nil {
		return c.JSON(errs.Status(err), map[string]string{"message": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"message": "User registered successfully",
		"token":   sess.Token,
		"id":      sess.User.ID,
		"name":    sess.User.Name,
		"email":   sess.User.Email,
		"role":    sess.User.Role,
		"type":    sess.User.Type,
	})
}

func (h *AuthCtrl) Login(c echo.Context) error {
	var in service.LoginInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Missing or invalid data"})
	}
	sess, err := h.svc.Login(in)
	if err != nil {
		return c.JSON(errs.Status(err), map[string]string{"message": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"message": "User logged in successfully",
		"token":   sess.Token,
		"id":      sess.User.ID,
		"name":    sess.User.Name,
		"email":   sess.User.Email,
		"type":    sess.User.Type,
		"role":    sess.User.Role,
		"company": sess.User.Company,
	})
}

func (h *AuthCtrl) Profile(c echo.Context) error {
	uid, _ := c.Get("uid").(uint)
	u, err := h.svc.Profile(uid)
	if err != nil {
		return c.JSON(errs.Status(err), map[string]string{"message": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "User profile fetched successfully", "user": u})
}
