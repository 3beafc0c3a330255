package page

import (
	"context"
	"sync"
	"time"

	"attendance/console/internal/entity"
	"attendance/console/internal/pkg/config"
	"attendance/console/internal/repository/backend/attendance"
	"attendance/console/internal/repository/backend/employee"
	"attendance/console/internal/service/form"
)

var fixedNow = time.Date(2024, time.May, 10, 9, 30, 0, 0, time.UTC)

type fakeEmployees struct {
	mu         sync.Mutex
	list       []entity.Employee
	listCalls  int
	created    []employee.CreateRequest
	createErr  error
	deleted    []entity.ID
	deleteErr  error
	historyErr error
}

func (f *fakeEmployees) List(ctx context.Context) ([]entity.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	return append([]entity.Employee{}, f.list...), nil
}

func (f *fakeEmployees) Create(ctx context.Context, r employee.CreateRequest) (entity.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return entity.Employee{}, f.createErr
	}
	f.created = append(f.created, r)
	e := entity.Employee{ID: entity.ID(r.EmployeeID), EmployeeID: r.EmployeeID, FullName: r.FullName, Email: r.Email, Department: r.Department}
	f.list = append(f.list, e)
	return e, nil
}

func (f *fakeEmployees) Delete(ctx context.Context, id entity.ID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, id)
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i, e := range f.list {
		if e.ID == id {
			f.list = append(f.list[:i:i], f.list[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeEmployees) History(ctx context.Context, id entity.ID) (entity.EmployeeHistory, error) {
	if f.historyErr != nil {
		return entity.EmployeeHistory{}, f.historyErr
	}
	e, _ := findEmployee(f.list, id)
	return entity.EmployeeHistory{Employee: e, Stats: entity.HistoryStats{TotalDays: 3, PresentDays: 2, AbsentDays: 1}}, nil
}

func (f *fakeEmployees) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls
}

type fakeAttendance struct {
	mu      sync.Mutex
	records []entity.AttendanceRecord
	filters []string
	marked  []attendance.MarkRequest
	markErr error
}

func (f *fakeAttendance) List(ctx context.Context, filter attendance.Filter) ([]entity.AttendanceRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.filters = append(f.filters, filter.Key())
	return append([]entity.AttendanceRecord{}, f.records...), nil
}

func (f *fakeAttendance) Mark(ctx context.Context, r attendance.MarkRequest) (entity.AttendanceRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.markErr != nil {
		return entity.AttendanceRecord{}, f.markErr
	}
	f.marked = append(f.marked, r)
	rec := entity.AttendanceRecord{EmployeeID: r.EmployeeID, EmployeeName: "Ada Lovelace", Date: r.Date, Status: r.Status}
	f.records = append(f.records, rec)
	return rec, nil
}

func (f *fakeAttendance) listCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.filters)
}

type fakeDashboard struct {
	summary entity.DashboardSummary
	err     error

	// employees, when set, derives the summary from the current employee list.
	employees *fakeEmployees
}

func (f *fakeDashboard) Summary(ctx context.Context) (entity.DashboardSummary, error) {
	if f.err != nil || f.employees == nil {
		return f.summary, f.err
	}

	f.employees.mu.Lock()
	defer f.employees.mu.Unlock()
	s := entity.DashboardSummary{TotalEmployees: len(f.employees.list)}
	s.Today.NotMarked = len(f.employees.list)
	for _, e := range f.employees.list {
		s.EmployeeStats = append(s.EmployeeStats, entity.EmployeeStat{EmployeeCode: e.EmployeeID, EmployeeName: e.FullName})
	}
	return s, nil
}

type fakes struct {
	employees  *fakeEmployees
	attendance *fakeAttendance
	dashboard  *fakeDashboard
}

func newFakes() (fakes, Deps) {
	f := fakes{
		employees: &fakeEmployees{list: []entity.Employee{
			{ID: "1", EmployeeID: "EMP001", FullName: "Ada Lovelace", Email: "ada@corp.io", Department: "Engineering"},
			{ID: "2", EmployeeID: "EMP002", FullName: "Grace Hopper", Email: "grace@corp.io", Department: "Engineering"},
			{ID: "3", EmployeeID: "EMP003", FullName: "Joan Clarke", Email: "joan@corp.io", Department: "Finance"},
		}},
		attendance: &fakeAttendance{},
		dashboard:  &fakeDashboard{},
	}
	return f, Deps{
		Employees:  f.employees,
		Attendance: f.attendance,
		Dashboard:  f.dashboard,
		Validator:  form.NewValidator(config.Default().Departments),
		Now:        func() time.Time { return fixedNow },
	}
}
