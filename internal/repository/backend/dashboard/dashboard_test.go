package dashboard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"attendance/console/internal/pkg/repository/backend"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummary(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/dashboard", r.URL.Path)
		_, _ = w.Write([]byte(`{"total_employees":10,"today":{"present":6,"absent":3,"not_marked":1},"employee_stats":[{"employee_code":"EMP001","employee_name":"Ada","present_days":12}]}`))
	}))
	defer srv.Close()

	client, err := backend.NewClient(backend.Config{BaseURL: srv.URL, Timeout: time.Second}, nil)
	require.NoError(t, err)

	summary, err := NewRepository(client).Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, summary.TotalEmployees)
	assert.Equal(t, 1, summary.Today.NotMarked)
	assert.Equal(t, 60, summary.AttendanceRate())
	require.Len(t, summary.EmployeeStats, 1)
	assert.Equal(t, 12, summary.EmployeeStats[0].PresentDays)
}

func TestSummaryFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client, err := backend.NewClient(backend.Config{BaseURL: srv.URL, Timeout: time.Second}, nil)
	require.NoError(t, err)

	_, err = NewRepository(client).Summary(context.Background())
	assert.Equal(t, backend.KindServer, backend.KindOf(err))
}
