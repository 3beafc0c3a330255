package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := NewClient(Config{BaseURL: srv.URL + "/api", Timeout: time.Second, Retries: 1}, nil)
	require.NoError(t, err)
	c.backoff = time.Millisecond
	return c, srv
}

func TestClientDecodesSuccess(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/employees", r.URL.Path)
		assert.Equal(t, "2024-05-01", r.URL.Query().Get("date"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"ok"}`))
	})

	var out struct{ Name string }
	err := c.Get(context.Background(), "/employees", map[string][]string{"date": {"2024-05-01"}}, &out)
	require.NoError(t, err)
	assert.Equal(t, "ok", out.Name)
}

func TestClientValidationEnvelope(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"errors":{"employee_id":["Employee ID already exists"],"email":"Invalid email"}}`))
	})

	err := c.Post(context.Background(), "/employees", map[string]string{"employee_id": "E1"}, nil)
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))

	fields := FieldsOf(err)
	assert.Equal(t, "Employee ID already exists", fields.First("employee_id"))
	assert.Equal(t, "Invalid email", fields.First("email"))
}

func TestClientConflictKeepsFields(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"errors":{"employee_id":"duplicate"}}`))
	})

	err := c.Post(context.Background(), "/employees", struct{}{}, nil)
	assert.Equal(t, KindConflict, KindOf(err))
	assert.Equal(t, "duplicate", FieldsOf(err).First("employee_id"))
}

func TestClientDetailList(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"detail":[{"loc":["body","email"],"msg":"value is not a valid email address"}]}`))
	})

	err := c.Post(context.Background(), "/employees", struct{}{}, nil)
	assert.Equal(t, KindValidation, KindOf(err))
	assert.Equal(t, "value is not a valid email address", FieldsOf(err).First("email"))
}

func TestClientOpaqueFailure(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail":"Attendance already marked"}`))
	})

	err := c.Post(context.Background(), "/attendance", struct{}{}, nil)
	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, KindServer, e.Kind)
	assert.Equal(t, "Attendance already marked", e.Message)
	assert.Nil(t, e.Fields)
}

func TestClientNotFound(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	err := c.Delete(context.Background(), "/employees/7")
	assert.True(t, IsNotFound(err))
}

func TestClientRetriesIdempotentGetOnce(t *testing.T) {
	var calls int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`[]`))
	})

	var out []int
	require.NoError(t, c.Get(context.Background(), "/employees", nil, &out))
	assert.EqualValues(t, 2, atomic.LoadInt32(&calls))
}

func TestClientDoesNotRetryPost(t *testing.T) {
	var calls int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	err := c.Post(context.Background(), "/attendance", struct{}{}, nil)
	assert.Equal(t, KindServer, KindOf(err))
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestClientNetworkFailure(t *testing.T) {
	c, srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	srv.Close()

	err := c.Get(context.Background(), "/dashboard", nil, nil)
	assert.Equal(t, KindNetwork, KindOf(err))
}

func TestClientTimeout(t *testing.T) {
	release := make(chan struct{})
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)
	c.timeout = 20 * time.Millisecond
	c.retries = 0

	err := c.Get(context.Background(), "/dashboard", nil, nil)
	assert.Equal(t, KindNetwork, KindOf(err))
}

func TestNewClientRejectsRelativeURL(t *testing.T) {
	_, err := NewClient(Config{BaseURL: "localhost:8000"}, nil)
	assert.Error(t, err)
}
