package page

import (
	"context"
	"log"
	"sync"

	"attendance/console/internal/entity"
	"attendance/console/internal/hook"
	"attendance/console/internal/repository/backend/employee"
	"attendance/console/internal/service/form"
	"attendance/console/internal/view"
)

// Employees is the directory screen with its add, view and delete dialogs.
type Employees struct {
	list      *hook.Employees
	create    *hook.CreateEmployee
	remove    *hook.DeleteEmployee
	validator *form.Validator
	log       *log.Logger

	mu       sync.Mutex
	addOpen  bool
	form     form.Employee
	local    entity.FieldErrors
	viewing  *entity.Employee
	deleting *entity.Employee
}

func NewEmployees(d Deps) *Employees {
	d = d.withDefaults()
	p := &Employees{
		list:      hook.NewEmployees(d.Employees),
		validator: d.Validator,
		log:       d.Log,
		local:     entity.FieldErrors{},
	}
	p.create = hook.NewCreateEmployee(d.Employees, p.created)
	p.remove = hook.NewDeleteEmployee(d.Employees, p.deleted)
	return p
}

func (p *Employees) Mount(ctx context.Context) {
	p.report("listing employees", p.list.Load(ctx).Err)
}

// Unmount drops the list and every dialog.
func (p *Employees) Unmount() {
	p.list.Reset()
	p.create.ClearErrors()
	p.remove.ClearErrors()

	p.mu.Lock()
	defer p.mu.Unlock()
	p.addOpen = false
	p.form = form.Employee{}
	p.local = entity.FieldErrors{}
	p.viewing = nil
	p.deleting = nil
}

func (p *Employees) Refetch(ctx context.Context) {
	p.report("listing employees", p.list.Refetch(ctx).Err)
}

func (p *Employees) report(action string, err error) {
	if err != nil {
		p.log.Printf("employees : %s : %v", action, err)
	}
}

func (p *Employees) OpenAdd() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.addOpen = true
}

// CloseAdd closes the modal and forgets the form.
func (p *Employees) CloseAdd() {
	p.create.ClearErrors()

	p.mu.Lock()
	defer p.mu.Unlock()
	p.addOpen = false
	p.form = form.Employee{}
	p.local = entity.FieldErrors{}
}

// Submit validates f and creates the employee. Fields that changed since
// the previous attempt lose their old errors first. It returns ErrInvalid
// when local validation fails, or the backend failure.
func (p *Employees) Submit(ctx context.Context, f form.Employee) error {
	p.mu.Lock()
	p.addOpen = true
	for _, name := range f.Changed(p.form) {
		p.local.Clear(name)
		p.create.ClearField(name)
	}
	p.form = f
	p.local = p.validator.Validate(f.Trimmed())
	invalid := !p.local.Empty()
	p.mu.Unlock()

	if invalid {
		return ErrInvalid
	}

	t := f.Trimmed()
	err := p.create.Submit(ctx, employee.CreateRequest{
		EmployeeID: t.EmployeeID,
		FullName:   t.FullName,
		Email:      t.Email,
		Department: t.Department,
	})
	p.report("creating employee", err)
	return err
}

func (p *Employees) created(ctx context.Context, _ entity.Employee) {
	p.mu.Lock()
	p.addOpen = false
	p.form = form.Employee{}
	p.local = entity.FieldErrors{}
	p.mu.Unlock()

	p.Refetch(ctx)
}

// OpenView shows the detail modal for id.
func (p *Employees) OpenView(id entity.ID) error {
	e, ok := findEmployee(p.list.Snapshot().Data, id)
	if !ok {
		return ErrUnknownEmployee
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.viewing = &e
	return nil
}

func (p *Employees) CloseView() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.viewing = nil
}

// OpenDelete asks for confirmation before deleting id.
func (p *Employees) OpenDelete(id entity.ID) error {
	e, ok := findEmployee(p.list.Snapshot().Data, id)
	if !ok {
		return ErrUnknownEmployee
	}
	p.remove.ClearErrors()

	p.mu.Lock()
	defer p.mu.Unlock()
	p.deleting = &e
	return nil
}

func (p *Employees) CloseDelete() {
	p.remove.ClearErrors()

	p.mu.Lock()
	defer p.mu.Unlock()
	p.deleting = nil
}

// ConfirmDelete deletes the employee awaiting confirmation. An employee
// that is already gone counts as deleted.
func (p *Employees) ConfirmDelete(ctx context.Context) error {
	p.mu.Lock()
	target := p.deleting
	p.mu.Unlock()

	if target == nil {
		return ErrUnknownEmployee
	}

	err := p.remove.Submit(ctx, target.ID)
	p.report("deleting employee", err)
	return err
}

func (p *Employees) deleted(ctx context.Context, _ struct{}) {
	p.mu.Lock()
	if p.deleting != nil && p.viewing != nil && p.viewing.ID == p.deleting.ID {
		p.viewing = nil
	}
	p.deleting = nil
	p.mu.Unlock()

	p.Refetch(ctx)
}

// Find returns a listed employee.
func (p *Employees) Find(id entity.ID) (entity.Employee, bool) {
	return findEmployee(p.list.Snapshot().Data, id)
}

type AddView struct {
	Open        bool               `json:"open"`
	Form        form.Employee      `json:"form"`
	Errors      entity.FieldErrors `json:"errors"`
	Fields      []view.Field       `json:"-"`
	Departments []string           `json:"departments"`
	Submitting  bool               `json:"submitting"`
	Failure     string             `json:"failure,omitempty"`
}

type EmployeesView struct {
	Loading         bool              `json:"loading"`
	Loaded          bool              `json:"loaded"`
	Error           string            `json:"error,omitempty"`
	Employees       []entity.Employee `json:"employees"`
	Total           int               `json:"total"`
	DepartmentCount int               `json:"department_count"`
	Table           view.Table        `json:"-"`
	Add             AddView           `json:"add"`
	Viewing         *entity.Employee  `json:"viewing,omitempty"`
	Deleting        *entity.Employee  `json:"deleting,omitempty"`
	DeleteBusy      bool              `json:"delete_busy"`
	DeleteError     string            `json:"delete_error,omitempty"`
}

var employeeColumns = []view.Column{
	{Key: "employee_id", Label: "Employee ID"},
	{Key: "full_name", Label: "Name"},
	{Key: "email", Label: "Email"},
	{Key: "department", Label: "Department"},
	{Key: "created_at", Label: "Joined"},
	{Key: "actions", Label: ""},
}

func (p *Employees) View() EmployeesView {
	snap := p.list.Snapshot()

	p.mu.Lock()
	defer p.mu.Unlock()

	errs := form.Merge(p.local, p.create.Errors())
	departments := map[string]struct{}{}
	for _, e := range snap.Data {
		departments[e.Department] = struct{}{}
	}

	v := EmployeesView{
		Loading:         snap.Loading(),
		Loaded:          snap.Loaded,
		Employees:       snap.Data,
		Total:           len(snap.Data),
		DepartmentCount: len(departments),
		Table: view.Table{
			Columns:      employeeColumns,
			Rows:         len(snap.Data),
			Loading:      snap.Loading() || snap.State == hook.Idle,
			EmptyMessage: "No employees yet. Add your first employee to get started.",
		},
		Add: AddView{
			Open:        p.addOpen,
			Form:        p.form,
			Errors:      errs,
			Fields:      employeeFields(p.form, errs),
			Departments: p.validator.Departments(),
			Submitting:  p.create.Submitting(),
			Failure:     Describe(p.create.Failure()),
		},
		Viewing:     p.viewing,
		Deleting:    p.deleting,
		DeleteBusy:  p.remove.Submitting(),
		DeleteError: Describe(p.remove.Failure()),
	}
	if snap.State == hook.Failed {
		v.Error = Describe(snap.Err)
	}
	return v
}

func employeeFields(f form.Employee, errs entity.FieldErrors) []view.Field {
	return []view.Field{
		{Name: "employee_id", Label: "Employee ID", Type: "text", Value: f.EmployeeID, Error: errs.First("employee_id"), Placeholder: "EMP001", Helper: "Letters and numbers only", Required: true},
		{Name: "full_name", Label: "Full Name", Type: "text", Value: f.FullName, Error: errs.First("full_name"), Placeholder: "Jane Doe", Required: true},
		{Name: "email", Label: "Email", Type: "email", Value: f.Email, Error: errs.First("email"), Placeholder: "jane@company.com", Required: true},
		{Name: "department", Label: "Department", Type: "select", Value: f.Department, Error: errs.First("department"), Required: true},
	}
}
