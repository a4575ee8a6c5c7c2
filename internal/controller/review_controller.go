package controller

import (
	"github.com/anandbhardwaj456/E-commerce-webapp/internal/dto"
	"github.com/anandbhardwaj456/E-commerce-webapp/internal/service"
	"github.com/anandbhardwaj456/E-commerce-webapp/pkg/response"
	"github.com/anandbhardwaj456/E-commerce-webapp/pkg/utils"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type ReviewController struct {
	service service.ReviewService
}

func CreateReviewController(e *echo.Group, service service.ReviewService, isLoggedIn echo.MiddlewareFunc) {
	c := ReviewController{
		service: service,
	}

	e.GET("/reviews/product/:id", c.GetProductReviews)
	e.POST("/reviews", c.AddReview, isLoggedIn)
	e.PUT("/reviews/:id", c.UpdateReview, isLoggedIn)
	e.DELETE("/reviews/:id", c.DeleteReview, isLoggedIn)
}

func (c *ReviewController) GetProductReviews(e echo.Context) error {
	data, err := c.service.GetProductReviews(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", data)
}

func (c *ReviewController) AddReview(e echo.Context) error {
	payload := dto.ReviewRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "AddReview").Msg("")
	}

	userID, name, _ := utils.ExtractTokenUser(e)
	payload.UserID = userID
	payload.UserName = name

	data, err := c.service.AddReview(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "", data)
}

func (c *ReviewController) UpdateReview(e echo.Context) error {
	payload := dto.ReviewRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "UpdateReview").Msg("")
	}

	userID, _, _ := utils.ExtractTokenUser(e)
	payload.ID = e.Param("id")
	payload.UserID = userID

	data, err := c.service.UpdateReview(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", data)
}

func (c *ReviewController) DeleteReview(e echo.Context) error {
	userID, _, _ := utils.ExtractTokenUser(e)

	err := c.service.DeleteReview(e.Request().Context(), e.Param("id"), userID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", nil)
}
