package session

import (
	"context"
	"testing"
	"time"

	"attendance/console/internal/entity"
	"attendance/console/internal/page"
	"attendance/console/internal/repository/backend/attendance"
	"attendance/console/internal/repository/backend/employee"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopEmployees struct{}

func (nopEmployees) List(ctx context.Context) ([]entity.Employee, error) { return nil, nil }
func (nopEmployees) Create(ctx context.Context, r employee.CreateRequest) (entity.Employee, error) {
	return entity.Employee{}, nil
}
func (nopEmployees) Delete(ctx context.Context, id entity.ID) error { return nil }
func (nopEmployees) History(ctx context.Context, id entity.ID) (entity.EmployeeHistory, error) {
	return entity.EmployeeHistory{}, nil
}

type nopAttendance struct{}

func (nopAttendance) List(ctx context.Context, f attendance.Filter) ([]entity.AttendanceRecord, error) {
	return nil, nil
}
func (nopAttendance) Mark(ctx context.Context, r attendance.MarkRequest) (entity.AttendanceRecord, error) {
	return entity.AttendanceRecord{}, nil
}

func newManager(ttl time.Duration, prefs PreferenceStore) *Manager {
	return NewManager(ttl, prefs, nil, func() *page.Workspace {
		return page.NewWorkspace(page.Deps{Employees: nopEmployees{}, Attendance: nopAttendance{}})
	})
}

func TestManagerIssuesIDsAndReusesWorkspaces(t *testing.T) {
	m := newManager(time.Hour, nil)

	id, ws := m.Get(context.Background(), "")
	_, err := uuid.Parse(id)
	require.NoError(t, err)

	again, ws2 := m.Get(context.Background(), id)
	assert.Equal(t, id, again)
	assert.Same(t, ws, ws2)

	other, ws3 := m.Get(context.Background(), "not-a-uuid")
	assert.NotEqual(t, id, other)
	assert.NotSame(t, ws, ws3)
	assert.Equal(t, 2, m.Len())
}

func TestManagerSweepsIdleSessions(t *testing.T) {
	m := newManager(time.Minute, nil)
	now := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	idle, _ := m.Get(context.Background(), "")
	now = now.Add(50 * time.Second)
	active, _ := m.Get(context.Background(), "")
	now = now.Add(30 * time.Second)

	assert.Equal(t, 1, m.Sweep(context.Background()))
	assert.Equal(t, 1, m.Len())

	again, _ := m.Get(context.Background(), active)
	assert.Equal(t, active, again)
	_, ws := m.Get(context.Background(), idle)
	assert.True(t, ws.SidebarOpen(), "an evicted id gets a fresh workspace")
}

func TestManagerRestoresSidebarPreference(t *testing.T) {
	prefs := NewMemoryStore()
	m := newManager(time.Minute, prefs)

	id := uuid.NewString()
	require.NoError(t, prefs.SetSidebarOpen(context.Background(), id, false))

	_, ws := m.Get(context.Background(), id)
	assert.False(t, ws.SidebarOpen())

	open, err := m.ToggleSidebar(context.Background(), id, ws)
	require.NoError(t, err)
	assert.True(t, open)
	open, err = prefs.SidebarOpen(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, open)
}

func TestManagerSweepForgetsPreferences(t *testing.T) {
	prefs := NewMemoryStore()
	m := newManager(time.Minute, prefs)
	now := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	idle, ws := m.Get(context.Background(), "")
	_, err := m.ToggleSidebar(context.Background(), idle, ws)
	require.NoError(t, err)
	now = now.Add(50 * time.Second)
	active, ws := m.Get(context.Background(), "")
	_, err = m.ToggleSidebar(context.Background(), active, ws)
	require.NoError(t, err)
	require.Equal(t, 2, prefs.Len())

	now = now.Add(30 * time.Second)
	require.Equal(t, 1, m.Sweep(context.Background()))
	assert.Equal(t, 1, prefs.Len())

	open, err := prefs.SidebarOpen(context.Background(), idle)
	require.NoError(t, err)
	assert.True(t, open)
	open, err = prefs.SidebarOpen(context.Background(), active)
	require.NoError(t, err)
	assert.False(t, open)
}

type countingStore struct {
	*MemoryStore
	touched []string
}

func (s *countingStore) Touch(ctx context.Context, id string) error {
	s.touched = append(s.touched, id)
	return nil
}

func TestManagerTouchesPreferencesOfActiveSessions(t *testing.T) {
	prefs := &countingStore{MemoryStore: NewMemoryStore()}
	m := newManager(time.Hour, prefs)
	now := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	id, _ := m.Get(context.Background(), "")
	now = now.Add(10 * time.Minute)
	m.Get(context.Background(), id)
	assert.Empty(t, prefs.touched, "touched at creation")

	now = now.Add(25 * time.Minute)
	m.Get(context.Background(), id)
	now = now.Add(time.Minute)
	m.Get(context.Background(), id)
	assert.Equal(t, []string{id}, prefs.touched)
}

func TestRedisStoreFallsBackWhenUnreachable(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1, DialTimeout: 100 * time.Millisecond})
	defer client.Close()
	s := NewRedisStore(client, time.Minute)

	open, err := s.SidebarOpen(context.Background(), "abc")
	assert.Error(t, err)
	assert.True(t, open)
	assert.Error(t, s.SetSidebarOpen(context.Background(), "abc", false))
	assert.Error(t, s.Touch(context.Background(), "abc"))
	assert.Error(t, s.Forget(context.Background(), "abc"))
}

func TestSidebarKey(t *testing.T) {
	assert.Equal(t, "console:session:abc:sidebar", sidebarKey("abc"))
}
