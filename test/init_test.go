package test

import (
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/anandbhardwaj456/E-commerce-webapp/config"
	"github.com/anandbhardwaj456/E-commerce-webapp/internal/app"
	"github.com/anandbhardwaj456/E-commerce-webapp/internal/infrastructure/database/mongodb"
	"github.com/stretchr/testify/suite"
)

type IntegrationTestSuite struct {
	suite.Suite
	app app.App
}

func setupTestConfig() *config.Config {
	config := config.CreateNewConfig()
	config.ServicePort = "8080"
	config.MetricsPort = "9090"
	config.Environment = "test"
	config.MongoDBConfig.DBHost = os.Getenv("TEST_DB_HOST")
	config.MongoDBConfig.DBPort = os.Getenv("TEST_DB_PORT")
	config.MongoDBConfig.DBName = "storefront_test"
	return config
}

func (s *IntegrationTestSuite) initializeServer(config *config.Config) {
	uri := fmt.Sprintf("mongodb://%s:%s", config.MongoDBConfig.DBHost, config.MongoDBConfig.DBPort)
	db, err := mongodb.ConnectToMongoDB(uri, config.MongoDBConfig.DBName)
	if err != nil {
		s.T().Fatal(err.Error())
	}

	s.app.DB = db
	go s.app.Start()
}

func (s *IntegrationTestSuite) checkServerHealth(config *config.Config) {
	pingURL := fmt.Sprintf("http://localhost:%s/api/v1/ping", config.ServicePort)
	timeout := time.After(30 * time.Second)
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-timeout:
			s.T().Fatal("Timeout waiting for server to start")
		case <-ticker.C:
			resp, err := http.Get(pingURL)
			if err == nil && resp.StatusCode == http.StatusOK {
				resp.Body.Close()
				return
			}
		}
	}
}

func (s *IntegrationTestSuite) SetupSuite() {
	if os.Getenv("TEST_DB_HOST") == "" {
		s.T().Skip("TEST_DB_HOST not set, skipping integration tests")
	}

	s.app.Config = setupTestConfig()

	s.initializeServer(s.app.Config)

	s.checkServerHealth(s.app.Config)
}

func (s *IntegrationTestSuite) TearDownSuite() {
	err := s.app.StopServer()

	s.Require().NoError(err)
}

func TestIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(IntegrationTestSuite))
}
