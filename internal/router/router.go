package router

import (
	"log"
	"time"

	"attendance/console/foundation/web"
	"attendance/console/internal/middleware"
	"attendance/console/internal/page"
	"attendance/console/internal/pkg/config"
	"attendance/console/internal/pkg/repository/backend"
	"attendance/console/internal/repository/backend/attendance"
	"attendance/console/internal/repository/backend/dashboard"
	"attendance/console/internal/repository/backend/employee"
	"attendance/console/internal/service/form"
	"attendance/console/internal/session"
	"attendance/console/internal/view"

	"github.com/pkg/errors"

	attendance_controller "attendance/console/internal/controller/http/v1/attendance"
	dashboard_controller "attendance/console/internal/controller/http/v1/dashboard"
	department_controller "attendance/console/internal/controller/http/v1/department"
	employee_controller "attendance/console/internal/controller/http/v1/employee"
	layout_controller "attendance/console/internal/controller/http/v1/layout"
)

type Router struct {
	*web.App
	client       *backend.Client
	prefs        session.PreferenceStore
	cfg          *config.Config
	log          *log.Logger
	sessionTTL   time.Duration
	secureCookie bool
	corsOrigins  []string
}

func NewRouter(
	app *web.App,
	client *backend.Client,
	prefs session.PreferenceStore,
	cfg *config.Config,
	log *log.Logger,
	sessionTTL time.Duration,
	secureCookie bool,
	corsOrigins []string,
) *Router {
	return &Router{
		app,
		client,
		prefs,
		cfg,
		log,
		sessionTTL,
		secureCookie,
		corsOrigins,
	}
}

// Init wires every route and returns the session manager so the caller can
// sweep idle sessions.
func (r Router) Init() (*session.Manager, error) {
	r.HandleMethodNotAllowed = true
	r.Use(middleware.Logger(r.log))
	r.Use(middleware.CORS("/api/", r.corsOrigins))

	tmpl, err := view.Templates()
	if err != nil {
		return nil, errors.Wrap(err, "loading templates")
	}
	r.SetHTMLTemplate(tmpl)

	// - backend
	employeeBackend := employee.NewRepository(r.client)
	attendanceBackend := attendance.NewRepository(r.client)
	dashboardBackend := dashboard.NewRepository(r.client)

	validator := form.NewValidator(r.cfg.Departments)
	sessions := session.NewManager(r.sessionTTL, r.prefs, r.log, func() *page.Workspace {
		return page.NewWorkspace(page.Deps{
			Employees:  employeeBackend,
			Attendance: attendanceBackend,
			Dashboard:  dashboardBackend,
			Validator:  validator,
			Log:        r.log,
		})
	})
	withSession := middleware.Session(sessions, int(r.sessionTTL.Seconds()), r.secureCookie)

	// controller
	dashboardController := dashboard_controller.NewController(r.cfg)
	employeeController := employee_controller.NewController(employeeBackend, r.cfg)
	attendanceController := attendance_controller.NewController(attendanceBackend, employeeBackend, r.cfg)
	departmentController := department_controller.NewController(validator)
	layoutController := layout_controller.NewController(sessions, r.log)

	r.Get("/healthz", layoutController.Health)
	r.Post("/layout/sidebar", layoutController.ToggleSidebar, withSession)

	// #dashboard
	r.Get("/", dashboardController.Page, withSession)
	r.Post("/dashboard/refresh", dashboardController.Refresh, withSession)

	// #employees
	r.Get("/employees", employeeController.Page, withSession)
	r.Post("/employees", employeeController.Create, withSession)
	r.Post("/employees/refresh", employeeController.Refresh, withSession)
	r.Post("/employees/add/open", employeeController.OpenAdd, withSession)
	r.Post("/employees/add/close", employeeController.CloseAdd, withSession)
	r.Post("/employees/view/close", employeeController.CloseView, withSession)
	r.Post("/employees/delete/close", employeeController.CloseDelete, withSession)
	r.Post("/employees/delete/confirm", employeeController.ConfirmDelete, withSession)
	r.Post("/employees/:id/view", employeeController.OpenView, withSession)
	r.Post("/employees/:id/delete/open", employeeController.OpenDelete, withSession)
	r.Get("/employees/:id/badge.png", employeeController.Badge, withSession)

	// #attendance
	r.Get("/attendance", attendanceController.Page, withSession)
	r.Post("/attendance/mark", attendanceController.Mark, withSession)
	r.Post("/attendance/refresh", attendanceController.Refresh, withSession)
	r.Post("/attendance/filter", attendanceController.Filter, withSession)
	r.Post("/attendance/filter/clear", attendanceController.ClearFilter, withSession)
	r.Post("/attendance/history/close", attendanceController.CloseHistory, withSession)
	r.Post("/attendance/history/:id", attendanceController.OpenHistory, withSession)
	r.Get("/attendance/history/:id/report.pdf", attendanceController.HistoryReport)
	r.Get("/attendance/export.xlsx", attendanceController.Export)

	// #api
	r.Get("/api/v1/dashboard", dashboardController.Get, withSession)
	r.Get("/api/v1/employees", employeeController.GetList, withSession)
	r.Get("/api/v1/attendance", attendanceController.GetList, withSession)
	r.Get("/api/v1/departments", departmentController.GetList)

	return sessions, nil
}
