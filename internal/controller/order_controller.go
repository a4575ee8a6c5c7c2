package controller

import (
	"github.com/anandbhardwaj456/E-commerce-webapp/internal/dto"
	"github.com/anandbhardwaj456/E-commerce-webapp/internal/service"
	"github.com/anandbhardwaj456/E-commerce-webapp/pkg/response"
	"github.com/anandbhardwaj456/E-commerce-webapp/pkg/utils"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type OrderController struct {
	service service.OrderService
}

func CreateOrderController(e *echo.Group, service service.OrderService, isLoggedIn echo.MiddlewareFunc, isAdmin echo.MiddlewareFunc) {
	c := OrderController{
		service: service,
	}

	e.POST("/orders", c.AddOrder, isLoggedIn)
	e.GET("/orders", c.GetUserOrders, isLoggedIn)
	e.GET("/orders/:id", c.GetOrderByID, isLoggedIn)
	e.POST("/payment/create-order", c.CreatePayment, isLoggedIn)
	e.POST("/payment/verify", c.VerifyPayment, isLoggedIn)

	admin := e.Group("/admin", isLoggedIn, isAdmin)
	admin.GET("/orders", c.GetOrders)
	admin.PUT("/orders/:id/status", c.UpdateOrderStatus)
}

func (c *OrderController) AddOrder(e echo.Context) error {
	payload := dto.OrderRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "AddOrder").Msg("")
	}

	userID, _, _ := utils.ExtractTokenUser(e)
	payload.UserID = userID

	data, err := c.service.AddOrder(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "", data)
}

func (c *OrderController) GetUserOrders(e echo.Context) error {
	userID, _, _ := utils.ExtractTokenUser(e)

	data, err := c.service.GetUserOrders(e.Request().Context(), userID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", data)
}

func (c *OrderController) GetOrderByID(e echo.Context) error {
	userID, _, role := utils.ExtractTokenUser(e)

	data, err := c.service.GetOrderByID(e.Request().Context(), e.Param("id"), userID, role)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", data)
}

func (c *OrderController) GetOrders(e echo.Context) error {
	data, err := c.service.GetOrders(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", data)
}

func (c *OrderController) UpdateOrderStatus(e echo.Context) error {
	payload := dto.OrderStatusRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "UpdateOrderStatus").Msg("")
	}
	payload.OrderID = e.Param("id")

	data, err := c.service.UpdateOrderStatus(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", data)
}

func (c *OrderController) CreatePayment(e echo.Context) error {
	payload := dto.CreatePaymentRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "CreatePayment").Msg("")
	}

	userID, _, _ := utils.ExtractTokenUser(e)
	payload.UserID = userID

	data, err := c.service.CreatePayment(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", data)
}

func (c *OrderController) VerifyPayment(e echo.Context) error {
	payload := dto.VerifyPaymentRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "VerifyPayment").Msg("")
	}

	userID, _, _ := utils.ExtractTokenUser(e)
	payload.UserID = userID

	data, err := c.service.VerifyPayment(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", data)
}
