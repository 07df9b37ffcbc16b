package mockapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"employee-list/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeopleRequiresToken(t *testing.T) {
	s := &Server{Token: "abc123", Employees: Fixture()}
	router := s.Router()

	req := httptest.NewRequest(http.MethodGet, PeoplePath, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, int64(1), s.Hits())
}

func TestPeopleServesEnvelope(t *testing.T) {
	s := &Server{Token: "abc123", Employees: Fixture()}

	req := httptest.NewRequest(http.MethodGet, PeoplePath, nil)
	req.Header.Set("Authorization", "abc123")
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp models.EmployeeListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, Fixture(), resp.Employees)
}

func TestPeopleEmptyRosterIsArray(t *testing.T) {
	s := &Server{Token: "t"}

	req := httptest.NewRequest(http.MethodGet, PeoplePath, nil)
	req.Header.Set("Authorization", "t")
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	assert.JSONEq(t, `{"employees":[]}`, rec.Body.String())
}

func TestPeopleRejectsOtherMethods(t *testing.T) {
	s := &Server{Token: "t"}

	req := httptest.NewRequest(http.MethodPost, PeoplePath, nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Zero(t, s.Hits())
}
