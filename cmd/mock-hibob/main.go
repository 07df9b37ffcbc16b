// Command mock-hibob serves a fixed roster on /v1/people so the desktop app
// can be exercised without a HiBob account. Point the app at it with an
// EMPLOYEE_LIST_CONFIG file containing api_url: http://localhost:8089/v1/people.
package main

import (
	"flag"
	"net/http"
	"os"

	"employee-list/internal/logger"
	"employee-list/internal/mockapi"
)

func main() {
	addr := flag.String("addr", "localhost:8089", "listen address")
	token := flag.String("token", "abc123", "accepted Authorization value")
	flag.Parse()

	log := logger.NewConsoleLogger(logger.ParseLevel(os.Getenv("LOG_LEVEL")))

	server := &mockapi.Server{
		Token:     *token,
		Employees: mockapi.Fixture(),
		Compress:  true,
	}

	log.Info("MockHiBob", "listening", map[string]interface{}{
		"addr": *addr,
		"path": mockapi.PeoplePath,
	})
	if err := http.ListenAndServe(*addr, server.Router()); err != nil {
		log.Error("MockHiBob", err, nil)
		os.Exit(1)
	}
}
