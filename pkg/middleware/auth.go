package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"agridev/entities"
)

// Verify checks the Bearer token, loads the user and puts the verified
// (uid, role, type) triple on the context. Everything downstream trusts
// these values and never re-checks credentials.
func Verify(db *gorm.DB, secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, map[string]string{"message": "No token, authorization denied"})
			}
			raw := strings.TrimPrefix(authHeader, "Bearer ")

			token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Token is not valid"})
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Token is not valid"})
			}
			idf, ok := claims["id"].(float64)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Token is not valid"})
			}

			var user entities.User
			if err := db.First(&user, uint(idf)).Error; err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"message": "User not found"})
			}

			c.Set("uid", user.ID)
			if user.Role != nil {
				c.Set("role", *user.Role)
			} else {
				c.Set("role", "")
			}
			c.Set("userType", user.Type)
			return next(c)
		}
	}
}

// RequireRole gates a route to one role. Runs after Verify.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if r, _ := c.Get("role").(string); r == role {
				return next(c)
			}
			return c.JSON(http.StatusForbidden, map[string]string{"message": "Access denied. Insufficient permissions."})
		}
	}
}

// RequireType gates a route to a user type (plain vs company).
func RequireType(userType string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if t, _ := c.Get("userType").(string); t == userType {
				return next(c)
			}
			return c.JSON(http.StatusForbidden, map[string]string{"message": "Access denied. Insufficient permissions."})
		}
	}
}
