package main

import (
	"fmt"

	_ "time/tzdata"

	"github.com/anandbhardwaj456/E-commerce-webapp/config"
	"github.com/anandbhardwaj456/E-commerce-webapp/internal/app"
	"github.com/anandbhardwaj456/E-commerce-webapp/internal/infrastructure/database/mongodb"
	"github.com/rs/zerolog/log"
)

func main() {
	conf := config.CreateNewConfig()

	uri := fmt.Sprintf("mongodb://%s:%s", conf.MongoDBConfig.DBHost, conf.MongoDBConfig.DBPort)
	db, err := mongodb.ConnectToMongoDB(uri, conf.MongoDBConfig.DBName)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}

	application := app.App{
		DB:     db,
		Config: conf,
	}

	application.Start()
}
