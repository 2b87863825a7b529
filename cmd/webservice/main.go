package main

import (
	"github.com/reusemart/consignment-service/config"
	"github.com/reusemart/consignment-service/internal/app"
	"github.com/rs/zerolog/log"

	mysqlDriver "github.com/reusemart/consignment-service/internal/infrastructure/database/mysql"
)

func main() {
	config := config.CreateNewConfig()
	db, err := mysqlDriver.GetDBInstance(config.MySQLConfig.DBUsername, config.MySQLConfig.DBPassword, config.MySQLConfig.DBHost, config.MySQLConfig.DBPort, config.MySQLConfig.DBName)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to the database")
	}

	server := app.App{
		DB:     db,
		Config: config,
	}

	server.Start()
}
