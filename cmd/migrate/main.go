package main

import (
	"github.com/azhuravlev/diplomdocs/internal/config"
	"github.com/azhuravlev/diplomdocs/internal/database"
	"github.com/azhuravlev/diplomdocs/internal/env"
	"github.com/azhuravlev/diplomdocs/internal/model"
	"go.uber.org/zap"
)

func init() {
	env.LoadEnv()
}

func main() {
	logger := zap.Must(zap.NewDevelopment()).Sugar()
	defer logger.Sync()
	cfg := config.GetConfig()

	logger.Infof("Database configuration: %+v", cfg.DB)

	db, err := database.ConnectReturnGormDB(cfg.DB)
	if err != nil {
		logger.Panic(err)
	}

	db.Exec(`CREATE EXTENSION IF NOT EXISTS citext`)

	migrateErr := db.AutoMigrate(
		&model.User{},
		&model.File{},
		&model.Group{},
		&model.Student{},
		&model.Supervisor{},
		&model.DiplomaProject{},
		&model.DiplomaAIAnalysis{},
		&model.GroupOrder{},
		&model.OrderTemplate{},
		&model.TemplateSection{},
		&model.GeneratedDocument{},
		&model.DocumentCollaborator{},
		&model.DocumentHistory{},
	)
	if migrateErr != nil {
		logger.Panic(migrateErr)
	}
}
