// Package server boots the dashboard HTTP server: config, database, report
// cache, export storage, middleware stack, routes and the live snapshot
// broadcaster.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Gurpreet0022/sales-dashboard/app/controllers"
	"github.com/Gurpreet0022/sales-dashboard/app/repositories"
	"github.com/Gurpreet0022/sales-dashboard/app/routes"
	"github.com/Gurpreet0022/sales-dashboard/app/services"
	"github.com/Gurpreet0022/sales-dashboard/config"
	"github.com/Gurpreet0022/sales-dashboard/pkg/cache"
	"github.com/Gurpreet0022/sales-dashboard/pkg/database"
	"github.com/Gurpreet0022/sales-dashboard/pkg/live"
	"github.com/Gurpreet0022/sales-dashboard/pkg/logger"
	"github.com/Gurpreet0022/sales-dashboard/pkg/metrics"
	"github.com/Gurpreet0022/sales-dashboard/pkg/middleware"
	"github.com/Gurpreet0022/sales-dashboard/pkg/reqid"
	"github.com/Gurpreet0022/sales-dashboard/pkg/router"
	"github.com/Gurpreet0022/sales-dashboard/pkg/storage"
)

// Start boots every component and blocks serving HTTP.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	if err := database.Connect(); err != nil {
		return err
	}

	storage.Connect()

	if config.LogMongoURI() != "" {
		closeSink, err := logger.EnableMongoSink()
		if err != nil {
			logger.Warn("mongo log sink disabled", "error", err)
		} else {
			defer closeSink()
		}
	}

	svc := services.NewReportService(
		repositories.NewReportRepository(database.DB),
		cache.FromConfig(),
		config.CacheTTL(),
	)

	hub := live.NewHub()
	go hub.Run()
	go broadcastLoop(hub, svc, config.LiveInterval())

	r := router.New()
	r.Use(
		metrics.Middleware(),
		reqid.Middleware(),
		middleware.Recovery,
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions()),
	)
	routes.RegisterAPI(r, controllers.NewReportController(svc, hub))

	addr := ":" + config.AppPort()
	logger.Info("salesdash listening", "addr", addr, "env", config.AppEnv(), "driver", config.DatabaseDriver())
	return http.ListenAndServe(addr, r.Handler())
}

// broadcastLoop pushes a fresh all-time snapshot to live clients on every
// tick. Nothing is computed while nobody is connected.
func broadcastLoop(hub *live.Hub, svc *services.ReportService, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		if hub.ClientCount() == 0 {
			continue
		}

		snap, err := svc.Snapshot(repositories.RangeAll)
		if err != nil {
			logger.Error("live snapshot failed", "error", err)
			continue
		}

		data, err := json.Marshal(snap)
		if err != nil {
			logger.Error("live snapshot marshal failed", "error", err)
			continue
		}

		hub.Broadcast <- data
	}
}
