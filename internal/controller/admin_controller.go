package controller

import (
	"github.com/anandbhardwaj456/E-commerce-webapp/internal/dto"
	"github.com/anandbhardwaj456/E-commerce-webapp/internal/service"
	"github.com/anandbhardwaj456/E-commerce-webapp/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type AdminController struct {
	service service.AdminService
}

func CreateAdminController(e *echo.Group, service service.AdminService, isLoggedIn echo.MiddlewareFunc, isAdmin echo.MiddlewareFunc) {
	c := AdminController{
		service: service,
	}

	admin := e.Group("/admin", isLoggedIn, isAdmin)
	admin.GET("/stats", c.GetStats)
	admin.GET("/users", c.GetUsers)
	admin.PUT("/users/:id/block", c.SetUserBlocked)
}

func (c *AdminController) GetStats(e echo.Context) error {
	data, err := c.service.GetStats(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", data)
}

func (c *AdminController) GetUsers(e echo.Context) error {
	data, err := c.service.GetUsers(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", data)
}

func (c *AdminController) SetUserBlocked(e echo.Context) error {
	payload := dto.BlockUserRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "SetUserBlocked").Msg("")
	}
	payload.UserID = e.Param("id")

	err := c.service.SetUserBlocked(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", nil)
}
