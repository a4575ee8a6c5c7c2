package middleware

import (
	"fmt"
	"strings"

	"github.com/anandbhardwaj456/E-commerce-webapp/pkg/errs"
	"github.com/anandbhardwaj456/E-commerce-webapp/pkg/response"
	"github.com/anandbhardwaj456/E-commerce-webapp/pkg/utils"
	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
)

// Authenticated validates the bearer token and stores the parsed token
// under the "user" context key for the handlers downstream.
func Authenticated(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, "Bearer ") {
				return response.WriteErrorResponse(c, errs.ErrNotLoggedIn, nil)
			}

			tokenString := strings.TrimPrefix(header, "Bearer ")

			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !token.Valid {
				return response.WriteErrorResponse(c, errs.ErrNotLoggedIn, nil)
			}

			c.Set("user", token)

			return next(c)
		}
	}
}

// AdminOnly requires a token issued with the admin role. It must run
// after Authenticated.
func AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			_, _, role := utils.ExtractTokenUser(c)
			if role != "admin" {
				return response.WriteErrorResponse(c, errs.ErrForbidden, nil)
			}

			return next(c)
		}
	}
}
