package main

import (
	"habitrack/config"
	"habitrack/di"
	"habitrack/helper"
	"habitrack/shared/logger"
)

// @title Habit Tracker API
// @version 1.0
// @description Habits, daily check-ins and weekly/monthly completion stats.
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)
	logger.AttachFile(cfg)

	helper.AutoMigrate(cfg)

	http := di.InitializeService()
	http.Serve()
}
