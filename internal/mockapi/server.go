// Package mockapi serves a stand-in for the HiBob people endpoint. Tests run it
// under httptest and cmd/mock-hibob exposes it for manual runs.
package mockapi

import (
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync/atomic"

	"employee-list/internal/models"

	"github.com/andybalholm/brotli"
	"github.com/gorilla/mux"
)

const PeoplePath = "/v1/people"

// Server answers GET /v1/people for a single accepted token.
type Server struct {
	Token     string
	Employees []models.Employee

	// RawBody, when set, is written verbatim instead of the envelope.
	RawBody []byte

	// Compress enables gzip or br responses when the client accepts them.
	Compress bool

	hits atomic.Int64
}

// Hits counts requests that reached the people handler.
func (s *Server) Hits() int64 {
	return s.hits.Load()
}

func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc(PeoplePath, s.people).Methods(http.MethodGet)
	return router
}

func (s *Server) people(w http.ResponseWriter, r *http.Request) {
	s.hits.Add(1)

	if r.Header.Get("Authorization") != s.Token {
		writeJSON(w, r, false, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return
	}

	if s.RawBody != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(s.RawBody)
		return
	}

	employees := s.Employees
	if employees == nil {
		employees = []models.Employee{}
	}
	writeJSON(w, r, s.Compress, http.StatusOK, models.EmployeeListResponse{Employees: employees})
}

func writeJSON(w http.ResponseWriter, r *http.Request, compress bool, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")

	var out io.Writer = w
	if compress {
		accept := r.Header.Get("Accept-Encoding")
		switch {
		case strings.Contains(accept, "br"):
			w.Header().Set("Content-Encoding", "br")
			bw := brotli.NewWriter(w)
			defer bw.Close()
			out = bw
		case strings.Contains(accept, "gzip"):
			w.Header().Set("Content-Encoding", "gzip")
			gw := gzip.NewWriter(w)
			defer gw.Close()
			out = gw
		}
	}

	w.WriteHeader(status)
	json.NewEncoder(out).Encode(v)
}

// Fixture is the roster cmd/mock-hibob serves by default.
func Fixture() []models.Employee {
	return []models.Employee{
		{Email: "maria.jansen@example.com", FirstName: "Maria", Surname: "Jansen"},
		{Email: "bram.devries@example.com", FirstName: "Bram", Surname: "de Vries"},
		{Email: "anouk.bakker@example.com", FirstName: "Anouk", Surname: "Bakker"},
		{Email: "Pieter.Smit@example.com", FirstName: "Pieter", Surname: "Smit"},
	}
}
