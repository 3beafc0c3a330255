// Package page composes the hooks into the three console screens and keeps
// the screen-local state: open dialogs, selections, form fields and the
// errors shown next to them.
package page

import (
	"context"
	"io"
	"log"
	"time"

	"attendance/console/internal/entity"
	"attendance/console/internal/hook"
	"attendance/console/internal/pkg/repository/backend"
	"attendance/console/internal/service/form"

	"github.com/pkg/errors"
)

var (
	// ErrInvalid is returned when a form fails local validation; the
	// messages are in the page view.
	ErrInvalid = errors.New("form has errors")

	// ErrUnknownEmployee is returned when an action names an employee the
	// page does not list.
	ErrUnknownEmployee = errors.New("employee not found")
)

// EmployeeBackend is everything the pages need from the employee resource.
type EmployeeBackend interface {
	hook.EmployeeLister
	hook.EmployeeWriter
}

// AttendanceBackend is everything the pages need from the attendance resource.
type AttendanceBackend interface {
	hook.AttendanceLister
	hook.AttendanceMarker
}

// Deps are shared by every workspace.
type Deps struct {
	Employees  EmployeeBackend
	Attendance AttendanceBackend
	Dashboard  hook.DashboardReader
	Validator  *form.Validator
	Log        *log.Logger
	Now        func() time.Time
}

func (d Deps) withDefaults() Deps {
	if d.Log == nil {
		d.Log = log.New(io.Discard, "", 0)
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	return d
}

type mounter interface {
	Mount(ctx context.Context)
	Unmount()
}

// Describe turns a failure into the sentence shown to the user.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	var e *backend.Error
	if errors.As(err, &e) {
		if e.Message != "" {
			return e.Message
		}
		switch e.Kind {
		case backend.KindNetwork:
			return "Unable to reach the server. Check your connection and try again."
		case backend.KindNotFound:
			return "The requested item no longer exists."
		}
	}
	return "Something went wrong. Please try again."
}

func findEmployee(list []entity.Employee, id entity.ID) (entity.Employee, bool) {
	for _, e := range list {
		if e.ID == id {
			return e, true
		}
	}
	return entity.Employee{}, false
}
