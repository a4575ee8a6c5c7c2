package controller

import (
	"net/http"

	"github.com/anandbhardwaj456/E-commerce-webapp/internal/dto"
	"github.com/anandbhardwaj456/E-commerce-webapp/internal/service"
	"github.com/anandbhardwaj456/E-commerce-webapp/pkg/response"
	"github.com/anandbhardwaj456/E-commerce-webapp/pkg/utils"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type AuthController struct {
	authService service.AuthService
	userService service.UserService
}

func CreateAuthController(e *echo.Group, authService service.AuthService, userService service.UserService, isLoggedIn echo.MiddlewareFunc) {
	c := AuthController{
		authService: authService,
		userService: userService,
	}

	e.POST("/auth/register", c.Register)
	e.POST("/auth/login", c.Login)
	e.POST("/auth/send-otp", c.SendOTP)
	e.POST("/auth/verify-otp", c.VerifyOTP)
	e.GET("/auth/google", c.GoogleLogin)
	e.GET("/auth/google/callback", c.GoogleCallback)
	e.GET("/auth/me", c.Me, isLoggedIn)
}

func (c *AuthController) Register(e echo.Context) error {
	payload := dto.RegisterRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "Register").Msg("")
	}

	data, err := c.authService.Register(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "", data)
}

func (c *AuthController) Login(e echo.Context) error {
	payload := dto.LoginRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "Login").Msg("")
	}

	data, err := c.authService.Login(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", data)
}

func (c *AuthController) SendOTP(e echo.Context) error {
	payload := dto.SendOTPRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "SendOTP").Msg("")
	}

	data, err := c.authService.SendOTP(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", data)
}

func (c *AuthController) VerifyOTP(e echo.Context) error {
	payload := dto.VerifyOTPRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "VerifyOTP").Msg("")
	}

	data, err := c.authService.VerifyOTP(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", data)
}

func (c *AuthController) GoogleLogin(e echo.Context) error {
	return e.Redirect(http.StatusTemporaryRedirect, c.authService.GoogleLoginURL())
}

func (c *AuthController) GoogleCallback(e echo.Context) error {
	redirectURL, err := c.authService.GoogleCallback(e.Request().Context(), e.QueryParam("code"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return e.Redirect(http.StatusTemporaryRedirect, redirectURL)
}

func (c *AuthController) Me(e echo.Context) error {
	userID, _, _ := utils.ExtractTokenUser(e)

	data, err := c.userService.GetProfile(e.Request().Context(), userID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", data)
}
