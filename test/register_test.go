package test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/anandbhardwaj456/E-commerce-webapp/internal/dto"
	"github.com/labstack/echo/v4"
)

func (s *IntegrationTestSuite) Test_Register() {
	type TestCase struct {
		Name           string
		Request        dto.RegisterRequest
		ExpectedStatus int
	}

	testCases := []TestCase{
		{
			Name: "Valid request",
			Request: dto.RegisterRequest{
				Name:     "test",
				Email:    fmt.Sprintf("register-%d@example.com", time.Now().UnixNano()),
				Password: "123456",
			},
			ExpectedStatus: http.StatusCreated,
		},
		{
			Name: "Missing email",
			Request: dto.RegisterRequest{
				Name:     "test",
				Password: "123456",
			},
			ExpectedStatus: http.StatusBadRequest,
		},
		{
			Name: "Short password",
			Request: dto.RegisterRequest{
				Name:     "test",
				Email:    "short@example.com",
				Password: "12345",
			},
			ExpectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.Name, func() {
			reqBody, err := json.Marshal(tc.Request)
			s.NoError(err)

			req, err := http.NewRequest(http.MethodPost,
				fmt.Sprintf("http://localhost:%s/api/v1/auth/register", s.app.Config.ServicePort),
				bytes.NewBuffer(reqBody),
			)
			s.NoError(err)

			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

			client := http.Client{}
			resp, err := client.Do(req)
			s.NoError(err)

			s.Equal(tc.ExpectedStatus, resp.StatusCode)
		})
	}
}

func (s *IntegrationTestSuite) Test_GetProducts() {
	resp, err := http.Get(fmt.Sprintf("http://localhost:%s/api/v1/products", s.app.Config.ServicePort))
	s.NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *IntegrationTestSuite) Test_ProtectedRouteRequiresToken() {
	resp, err := http.Get(fmt.Sprintf("http://localhost:%s/api/v1/users/profile", s.app.Config.ServicePort))
	s.NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}
