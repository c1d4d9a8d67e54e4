package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"gorm.io/gorm/logger"

	"github.com/pravin157/Flight-Schedule-Optimization/internal/database"
	"github.com/pravin157/Flight-Schedule-Optimization/internal/events"
	"github.com/pravin157/Flight-Schedule-Optimization/internal/handlers"
	"github.com/pravin157/Flight-Schedule-Optimization/internal/history"
	"github.com/pravin157/Flight-Schedule-Optimization/internal/monitor"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long:  "serve starts the HTTP API exposing POST /ask, the query history and dataset health.",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		cfg := a.cfg
		gin.SetMode(cfg.GinMode)

		var store handlers.HistoryStore
		if cfg.Database.Driver != database.DriverNone {
			logLevel := logger.Warn
			if cfg.GinMode == gin.DebugMode {
				logLevel = logger.Info
			}
			db, err := database.Open(cfg.Database.Driver, cfg.Database.DSN, logLevel)
			if err != nil {
				return err
			}
			defer database.Close(db)
			store = history.NewStore(db)
		} else {
			log.Println("[Main] Query history disabled")
		}

		var publisher events.Publisher = events.Nop{}
		if cfg.NATS.URL != "" {
			p, err := events.Connect(cfg.NATS.URL, cfg.NATS.Subject)
			if err != nil {
				return err
			}
			publisher = p
		}
		defer publisher.Close()

		files := a.paths.All()
		mon := monitor.New(files, []string{"primary", "cascading_delays"}, cfg.MonitorSchedule)
		if err := mon.Start(); err != nil {
			return err
		}
		defer mon.Stop()

		api := handlers.NewAPI(a.dispatcher, store, publisher, mon)
		srv := &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           handlers.NewRouter(api),
			ReadHeaderTimeout: 10 * time.Second,
		}

		go func() {
			log.Printf("[Main] Flight assistant listening on :%s", cfg.Port)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatalf("Server failed: %v", err)
			}
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("[Main] Shutdown signal received, stopping server...")

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("[Main] Server shutdown failed: %v", err)
		}
		log.Println("[Main] Flight assistant stopped.")
		return nil
	},
}
