package page

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"attendance/console/internal/entity"
	"attendance/console/internal/hook"
	"attendance/console/internal/repository/backend/attendance"
	"attendance/console/internal/service/form"
	"attendance/console/internal/view"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/pkg/errors"
)

// Attendance is the marking panel, the records table with its date filter
// and the per-employee history modal.
type Attendance struct {
	employees *hook.Employees
	records   *hook.Attendance
	mark      *hook.MarkAttendance
	history   *hook.History
	validator *form.Validator
	log       *log.Logger
	now       func() time.Time

	mu       sync.Mutex
	selected string
	day      string
	local    entity.FieldErrors
	notice   string
}

func NewAttendance(d Deps) *Attendance {
	d = d.withDefaults()
	p := &Attendance{
		employees: hook.NewEmployees(d.Employees),
		records:   hook.NewAttendance(d.Attendance, ""),
		history:   hook.NewEmployeeHistory(d.Employees),
		validator: d.Validator,
		log:       d.Log,
		now:       d.Now,
		local:     entity.FieldErrors{},
	}
	p.mark = hook.NewMarkAttendance(d.Attendance, p.marked)
	p.day = view.Today(p.now())
	return p
}

func (p *Attendance) Mount(ctx context.Context) {
	p.report("listing employees", p.employees.Load(ctx).Err)
	p.report("listing attendance", p.records.Load(ctx).Err)
}

// Unmount forgets the selection, the filter and the history modal.
func (p *Attendance) Unmount() {
	p.employees.Reset()
	p.records.Reset()
	p.history.Close()
	p.mark.ClearErrors()

	p.mu.Lock()
	defer p.mu.Unlock()
	p.selected = ""
	p.day = view.Today(p.now())
	p.local = entity.FieldErrors{}
	p.notice = ""
}

func (p *Attendance) Refetch(ctx context.Context) {
	p.report("listing attendance", p.records.Refetch(ctx).Err)
}

func (p *Attendance) report(action string, err error) {
	if err != nil {
		p.log.Printf("attendance : %s : %v", action, err)
	}
}

// Select records the employee and day the next Mark applies to.
func (p *Attendance) Select(employeeID, day string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if employeeID != p.selected {
		p.local.Clear("employee_id")
	}
	if day != p.day {
		p.local.Clear("date")
	}
	p.selected = employeeID
	p.day = day
	p.notice = ""
}

// Mark records status for the selected employee and day. Success clears
// the selected employee and refetches the records once; failure leaves the
// selection untouched.
func (p *Attendance) Mark(ctx context.Context, status entity.Status) error {
	p.mu.Lock()
	selection := form.Mark{EmployeeID: p.selected, Date: p.day}
	p.local = p.validator.ValidateMark(selection)
	if !status.Valid() {
		p.local.Set("status", "Choose Present or Absent")
	}
	invalid := !p.local.Empty()
	p.mu.Unlock()

	if invalid {
		return ErrInvalid
	}

	day, err := date.ParseDate(selection.Date)
	if err != nil {
		return errors.Wrapf(err, "parsing mark date %q", selection.Date)
	}

	err = p.mark.Submit(ctx, attendance.MarkRequest{
		EmployeeID: entity.ID(selection.EmployeeID),
		Date:       day,
		Status:     status,
	})
	p.report("marking attendance", err)
	return err
}

func (p *Attendance) marked(ctx context.Context, record entity.AttendanceRecord) {
	p.mu.Lock()
	p.selected = ""
	p.local = entity.FieldErrors{}
	name := record.EmployeeName
	if name == "" {
		name = "Employee"
	}
	p.notice = fmt.Sprintf("%s marked %s for %s", name, record.Status, view.FormatDay(record.Date))
	p.mu.Unlock()

	p.Refetch(ctx)
}

// SetFilter lists only day; an empty day lists every record.
func (p *Attendance) SetFilter(ctx context.Context, day string) error {
	if _, err := hook.DayFilter(day); err != nil {
		return err
	}
	p.report("filtering attendance", p.records.SetParams(ctx, day).Err)
	return nil
}

func (p *Attendance) ClearFilter(ctx context.Context) {
	p.report("listing attendance", p.records.SetParams(ctx, "").Err)
}

// OpenHistory opens the history modal for id and loads it.
func (p *Attendance) OpenHistory(ctx context.Context, id entity.ID) {
	p.report("loading history", p.history.Fetch(ctx, id).Err)
}

func (p *Attendance) CloseHistory() {
	p.history.Close()
}

type MarkView struct {
	EmployeeID string             `json:"employee_id"`
	Date       string             `json:"date"`
	Max        string             `json:"max"`
	Errors     entity.FieldErrors `json:"errors"`
	Submitting bool               `json:"submitting"`
	Failure    string             `json:"failure,omitempty"`
	Notice     string             `json:"notice,omitempty"`
}

type HistoryView struct {
	Open       bool                    `json:"open"`
	Loading    bool                    `json:"loading"`
	EmployeeID entity.ID               `json:"employee_id,omitempty"`
	Error      string                  `json:"error,omitempty"`
	Data       *entity.EmployeeHistory `json:"data,omitempty"`
}

type AttendanceView struct {
	Employees []entity.Employee         `json:"employees"`
	Records   []entity.AttendanceRecord `json:"records"`
	Loading   bool                      `json:"loading"`
	Loaded    bool                      `json:"loaded"`
	Error     string                    `json:"error,omitempty"`
	Filter    string                    `json:"filter"`
	Table     view.Table                `json:"-"`
	Mark      MarkView                  `json:"mark"`
	History   HistoryView               `json:"history"`
}

var attendanceColumns = []view.Column{
	{Key: "employee_code", Label: "Employee ID"},
	{Key: "employee_name", Label: "Name"},
	{Key: "date", Label: "Date"},
	{Key: "status", Label: "Status"},
	{Key: "actions", Label: ""},
}

func (p *Attendance) View() AttendanceView {
	records := p.records.Snapshot()
	employees := p.employees.Snapshot()
	history := p.history.Snapshot()

	p.mu.Lock()
	defer p.mu.Unlock()

	v := AttendanceView{
		Employees: employees.Data,
		Records:   records.Data,
		Loading:   records.Loading(),
		Loaded:    records.Loaded,
		Filter:    records.Params,
		Table: view.Table{
			Columns:      attendanceColumns,
			Rows:         len(records.Data),
			Loading:      records.Loading() || records.State == hook.Idle,
			EmptyMessage: "No attendance records found.",
		},
		Mark: MarkView{
			EmployeeID: p.selected,
			Date:       p.day,
			Max:        view.Today(p.now()),
			Errors:     form.Merge(p.local, p.mark.Errors()),
			Submitting: p.mark.Submitting(),
			Failure:    Describe(p.mark.Failure()),
			Notice:     p.notice,
		},
		History: HistoryView{
			Open:       history.Open,
			Loading:    history.Loading(),
			EmployeeID: history.EmployeeID,
			Data:       history.Data,
		},
	}
	if records.State == hook.Failed {
		v.Error = Describe(records.Err)
	} else if employees.State == hook.Failed {
		v.Error = Describe(employees.Err)
	}
	if history.State == hook.Failed {
		v.History.Error = Describe(history.Err)
	}
	return v
}
