package hibob_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"employee-list/internal/hibob"
	"employee-list/internal/mockapi"
	"employee-list/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, api *mockapi.Server) *hibob.Client {
	t.Helper()
	srv := httptest.NewServer(api.Router())
	t.Cleanup(srv.Close)
	return hibob.NewClient(srv.URL+mockapi.PeoplePath, srv.Client(), nil)
}

func TestFetchEmployeesSendsTokenVerbatim(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"employees":[]}`))
	}))
	defer srv.Close()

	client := hibob.NewClient(srv.URL, srv.Client(), nil)
	body, err := client.FetchEmployees(context.Background(), "abc123")

	require.NoError(t, err)
	assert.Equal(t, "abc123", gotAuth)
	assert.JSONEq(t, `{"employees":[]}`, string(body))
}

func TestFetchEmployeesEmptyTokenSendsNothing(t *testing.T) {
	api := &mockapi.Server{Token: "abc123"}
	client := newServer(t, api)

	_, err := client.FetchEmployees(context.Background(), "")

	assert.ErrorIs(t, err, hibob.ErrMissingToken)
	assert.Zero(t, api.Hits())
}

func TestFetchEmployeesUnauthorized(t *testing.T) {
	api := &mockapi.Server{Token: "abc123"}
	client := newServer(t, api)

	_, err := client.FetchEmployees(context.Background(), "wrong")

	var netErr *hibob.NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.Equal(t, http.StatusUnauthorized, netErr.StatusCode)
	assert.Contains(t, netErr.Error(), "status=401")
}

func TestFetchEmployeesTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := hibob.NewClient(url, nil, nil)
	_, err := client.FetchEmployees(context.Background(), "abc123")

	var netErr *hibob.NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.Zero(t, netErr.StatusCode)
}

func TestFetchEmployeesHonoursContext(t *testing.T) {
	api := &mockapi.Server{Token: "abc123"}
	client := newServer(t, api)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := client.FetchEmployees(ctx, "abc123")

	assert.ErrorIs(t, err, context.Canceled)
}

func TestFetchEmployeesDecompresses(t *testing.T) {
	employees := []models.Employee{{Email: "a@x.com", FirstName: "A", Surname: "Z"}}

	for _, encoding := range []string{"br", "gzip"} {
		t.Run(encoding, func(t *testing.T) {
			seen := make(chan string, 1)
			api := &mockapi.Server{Token: "abc123", Employees: employees, Compress: true}
			router := api.Router()
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				r.Header.Set("Accept-Encoding", encoding)
				router.ServeHTTP(w, r)
				seen <- w.Header().Get("Content-Encoding")
			}))
			defer srv.Close()

			client := hibob.NewClient(srv.URL+mockapi.PeoplePath, srv.Client(), nil)
			body, err := client.FetchEmployees(context.Background(), "abc123")
			require.NoError(t, err)
			assert.Equal(t, encoding, <-seen)

			decoded, err := hibob.Decode(body)
			require.NoError(t, err)
			assert.Equal(t, employees, decoded)
		})
	}
}

func TestFetchEmployeesUnsupportedEncoding(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Encoding", "zstd")
		w.Write([]byte("whatever"))
	}))
	defer srv.Close()

	client := hibob.NewClient(srv.URL, srv.Client(), nil)
	_, err := client.FetchEmployees(context.Background(), "abc123")

	var netErr *hibob.NetworkError
	assert.True(t, errors.As(err, &netErr))
}
