package controller

import (
	"github.com/anandbhardwaj456/E-commerce-webapp/internal/dto"
	"github.com/anandbhardwaj456/E-commerce-webapp/internal/service"
	"github.com/anandbhardwaj456/E-commerce-webapp/pkg/response"
	"github.com/anandbhardwaj456/E-commerce-webapp/pkg/utils"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type UserController struct {
	service service.UserService
}

func CreateUserController(e *echo.Group, service service.UserService, isLoggedIn echo.MiddlewareFunc) {
	c := UserController{
		service: service,
	}

	users := e.Group("/users", isLoggedIn)
	users.GET("/profile", c.GetProfile)
	users.PUT("/profile", c.UpdateProfile)
	users.GET("/addresses", c.GetAddresses)
	users.POST("/addresses", c.AddAddress)
	users.PUT("/addresses/:id", c.UpdateAddress)
	users.DELETE("/addresses/:id", c.DeleteAddress)
}

func (c *UserController) GetProfile(e echo.Context) error {
	userID, _, _ := utils.ExtractTokenUser(e)

	data, err := c.service.GetProfile(e.Request().Context(), userID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", data)
}

func (c *UserController) UpdateProfile(e echo.Context) error {
	payload := dto.ProfileRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "UpdateProfile").Msg("")
	}

	userID, _, _ := utils.ExtractTokenUser(e)
	payload.UserID = userID

	data, err := c.service.UpdateProfile(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", data)
}

func (c *UserController) GetAddresses(e echo.Context) error {
	userID, _, _ := utils.ExtractTokenUser(e)

	data, err := c.service.GetAddresses(e.Request().Context(), userID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", data)
}

func (c *UserController) AddAddress(e echo.Context) error {
	payload := dto.AddressRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "AddAddress").Msg("")
	}

	userID, _, _ := utils.ExtractTokenUser(e)

	data, err := c.service.AddAddress(e.Request().Context(), userID, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "", data)
}

func (c *UserController) UpdateAddress(e echo.Context) error {
	payload := dto.AddressRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "UpdateAddress").Msg("")
	}

	userID, _, _ := utils.ExtractTokenUser(e)

	data, err := c.service.UpdateAddress(e.Request().Context(), userID, e.Param("id"), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", data)
}

func (c *UserController) DeleteAddress(e echo.Context) error {
	userID, _, _ := utils.ExtractTokenUser(e)

	err := c.service.DeleteAddress(e.Request().Context(), userID, e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", nil)
}
