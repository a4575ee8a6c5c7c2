package controller

import (
	"github.com/anandbhardwaj456/E-commerce-webapp/internal/dto"
	"github.com/anandbhardwaj456/E-commerce-webapp/internal/service"
	"github.com/anandbhardwaj456/E-commerce-webapp/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type AdvertisementController struct {
	service   service.AdvertisementService
	uploadDir string
}

func CreateAdvertisementController(e *echo.Group, service service.AdvertisementService, uploadDir string, isLoggedIn echo.MiddlewareFunc, isAdmin echo.MiddlewareFunc) {
	c := AdvertisementController{
		service:   service,
		uploadDir: uploadDir,
	}

	e.GET("/advertisements", c.GetAdvertisements)
	e.GET("/advertisements/all", c.GetAllAdvertisements, isLoggedIn, isAdmin)
	e.POST("/advertisements", c.AddAdvertisement, isLoggedIn, isAdmin)
	e.PUT("/advertisements/:id", c.UpdateAdvertisement, isLoggedIn, isAdmin)
	e.DELETE("/advertisements/:id", c.DeleteAdvertisement, isLoggedIn, isAdmin)
}

func (c *AdvertisementController) GetAdvertisements(e echo.Context) error {
	data, err := c.service.GetAdvertisements(e.Request().Context(), e.QueryParam("type"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", data)
}

func (c *AdvertisementController) GetAllAdvertisements(e echo.Context) error {
	data, err := c.service.GetAllAdvertisements(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", data)
}

func (c *AdvertisementController) AddAdvertisement(e echo.Context) error {
	payload := dto.AdvertisementRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "AddAdvertisement").Msg("")
	}

	uploaded, err := saveUploadedFiles(e, "image", c.uploadDir)
	if err != nil {
		log.Error().Err(err).Str("component", "AddAdvertisement").Msg("")
		return response.WriteErrorResponse(e, err, nil)
	}
	if len(uploaded) > 0 {
		payload.Image = uploaded[0]
	}

	data, err := c.service.AddAdvertisement(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "", data)
}

func (c *AdvertisementController) UpdateAdvertisement(e echo.Context) error {
	payload := dto.AdvertisementRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "UpdateAdvertisement").Msg("")
	}
	payload.ID = e.Param("id")

	uploaded, err := saveUploadedFiles(e, "image", c.uploadDir)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateAdvertisement").Msg("")
		return response.WriteErrorResponse(e, err, nil)
	}
	if len(uploaded) > 0 {
		payload.Image = uploaded[0]
	}

	data, err := c.service.UpdateAdvertisement(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", data)
}

func (c *AdvertisementController) DeleteAdvertisement(e echo.Context) error {
	err := c.service.DeleteAdvertisement(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", nil)
}
