package page

import (
	"context"
	"sync"

	"github.com/pkg/errors"
)

const (
	NameDashboard  = "dashboard"
	NameEmployees  = "employees"
	NameAttendance = "attendance"
)

// Workspace is one browser session's console: the three screens and the
// layout state around them. Only the active screen is mounted.
type Workspace struct {
	Dashboard  *Dashboard
	Employees  *Employees
	Attendance *Attendance

	mu          sync.Mutex
	active      string
	sidebarOpen bool
}

func NewWorkspace(d Deps) *Workspace {
	return &Workspace{
		Dashboard:   NewDashboard(d),
		Employees:   NewEmployees(d),
		Attendance:  NewAttendance(d),
		sidebarOpen: true,
	}
}

func (w *Workspace) page(name string) (mounter, error) {
	switch name {
	case NameDashboard:
		return w.Dashboard, nil
	case NameEmployees:
		return w.Employees, nil
	case NameAttendance:
		return w.Attendance, nil
	}
	return nil, errors.Errorf("unknown page %q", name)
}

// Enter makes name the active screen. The screen being left is unmounted
// and the new one mounted; entering the active screen again does nothing.
func (w *Workspace) Enter(ctx context.Context, name string) error {
	next, err := w.page(name)
	if err != nil {
		return err
	}

	w.mu.Lock()
	if w.active == name {
		w.mu.Unlock()
		return nil
	}
	leaving := w.active
	w.active = name
	w.mu.Unlock()

	if leaving != "" {
		prev, _ := w.page(leaving)
		prev.Unmount()
	}
	next.Mount(ctx)
	return nil
}

func (w *Workspace) Active() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.active
}

func (w *Workspace) SidebarOpen() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.sidebarOpen
}

func (w *Workspace) SetSidebarOpen(open bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.sidebarOpen = open
}

// ToggleSidebar flips the sidebar and returns the new state.
func (w *Workspace) ToggleSidebar() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.sidebarOpen = !w.sidebarOpen
	return w.sidebarOpen
}
