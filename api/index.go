package handler

import (
	"habitrack/config"
	"habitrack/di"
	"habitrack/helper"
	"habitrack/shared/logger"
	"net/http"
	"sync"
)

var (
	server     http.Handler
	serverOnce sync.Once
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	serverOnce.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		helper.AutoMigrate(cfg)

		server = di.InitializeService()
	})

	server.ServeHTTP(w, r)
}
