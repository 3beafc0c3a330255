package hook

import (
	"context"

	"attendance/console/internal/entity"
	"attendance/console/internal/repository/backend/attendance"
	"attendance/console/internal/repository/backend/employee"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/pkg/errors"
)

// EmployeeLister is the read side of the employee repository.
type EmployeeLister interface {
	List(ctx context.Context) ([]entity.Employee, error)
}

// AttendanceLister is the read side of the attendance repository.
type AttendanceLister interface {
	List(ctx context.Context, filter attendance.Filter) ([]entity.AttendanceRecord, error)
}

// DashboardReader reads the dashboard summary.
type DashboardReader interface {
	Summary(ctx context.Context) (entity.DashboardSummary, error)
}

type (
	Employees  = Resource[struct{}, []entity.Employee]
	Attendance = Resource[string, []entity.AttendanceRecord]
	Dashboard  = Resource[struct{}, entity.DashboardSummary]
)

func NewEmployees(src EmployeeLister) *Employees {
	return NewResource(struct{}{}, func(ctx context.Context, _ struct{}) ([]entity.Employee, error) {
		return src.List(ctx)
	})
}

// NewAttendance lists records for day, a YYYY-MM-DD string; "" lists all.
func NewAttendance(src AttendanceLister, day string) *Attendance {
	return NewResource(day, func(ctx context.Context, day string) ([]entity.AttendanceRecord, error) {
		filter, err := DayFilter(day)
		if err != nil {
			return nil, err
		}
		return src.List(ctx, filter)
	})
}

// DayFilter turns a YYYY-MM-DD string into an attendance filter.
func DayFilter(day string) (attendance.Filter, error) {
	if day == "" {
		return attendance.Filter{}, nil
	}
	d, err := date.ParseDate(day)
	if err != nil {
		return attendance.Filter{}, errors.Wrapf(err, "parsing filter date %q", day)
	}
	return attendance.Filter{Date: &d}, nil
}

func NewDashboard(src DashboardReader) *Dashboard {
	return NewResource(struct{}{}, func(ctx context.Context, _ struct{}) (entity.DashboardSummary, error) {
		return src.Summary(ctx)
	})
}

// EmployeeWriter is the write side of the employee repository.
type EmployeeWriter interface {
	Create(ctx context.Context, request employee.CreateRequest) (entity.Employee, error)
	Delete(ctx context.Context, id entity.ID) error
	History(ctx context.Context, id entity.ID) (entity.EmployeeHistory, error)
}

// AttendanceMarker is the write side of the attendance repository.
type AttendanceMarker interface {
	Mark(ctx context.Context, request attendance.MarkRequest) (entity.AttendanceRecord, error)
}

type (
	CreateEmployee = Mutation[employee.CreateRequest, entity.Employee]
	DeleteEmployee = Mutation[entity.ID, struct{}]
	MarkAttendance = Mutation[attendance.MarkRequest, entity.AttendanceRecord]
)

func NewCreateEmployee(w EmployeeWriter, onSuccess func(ctx context.Context, created entity.Employee)) *CreateEmployee {
	return NewMutation(w.Create, onSuccess, WithConflictField("employee_id"))
}

func NewDeleteEmployee(w EmployeeWriter, onSuccess func(ctx context.Context, _ struct{})) *DeleteEmployee {
	return NewMutation(func(ctx context.Context, id entity.ID) (struct{}, error) {
		return struct{}{}, w.Delete(ctx, id)
	}, onSuccess, WithNotFoundAsSuccess())
}

func NewMarkAttendance(m AttendanceMarker, onSuccess func(ctx context.Context, record entity.AttendanceRecord)) *MarkAttendance {
	return NewMutation(m.Mark, onSuccess)
}

func NewEmployeeHistory(w EmployeeWriter) *History {
	return NewHistory(w.History)
}
