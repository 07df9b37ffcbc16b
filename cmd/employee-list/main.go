package main

import (
	"fmt"
	"os"
	"runtime"

	"employee-list/internal/app"
	"employee-list/internal/config"
	"employee-list/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration: %v\n", err)
		os.Exit(1)
	}

	var log *logger.ZerologAdapter
	if cfg.JSONLogs {
		log = logger.NewZerolog(os.Stderr, logger.ParseLevel(cfg.LogLevel))
	} else {
		log = logger.NewConsoleLogger(logger.ParseLevel(cfg.LogLevel))
	}

	log.Info("Main", "starting", map[string]interface{}{
		"version":    app.AppVersion,
		"go_version": runtime.Version(),
		"log_level":  cfg.LogLevel,
	})

	app.NewApplication(cfg, log).Run()

	log.Info("Main", "terminated", nil)
}
