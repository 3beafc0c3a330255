package attendance

import (
	"bytes"
	"net/http"
	"reflect"

	"attendance/console/foundation/web"
	"attendance/console/internal/entity"
	"attendance/console/internal/hook"
	"attendance/console/internal/page"
	"attendance/console/internal/pkg/config"
	"attendance/console/internal/pkg/repository/backend"
	"attendance/console/internal/service/report"
	"attendance/console/internal/session"
	"attendance/console/internal/view"
)

const path = "/attendance"

type Controller struct {
	attendance Attendance
	history    History
	cfg        *config.Config
}

func NewController(attendance Attendance, history History, cfg *config.Config) *Controller {
	return &Controller{attendance, history, cfg}
}

type markRequest struct {
	EmployeeID string `form:"employee_id"`
	Date       string `form:"date"`
	Status     string `form:"status"`
}

type filterRequest struct {
	Date string `form:"date"`
}

func (ac Controller) workspace(c *web.Context) (*page.Workspace, error) {
	cur, err := session.FromContext(c.Ctx)
	if err != nil {
		return nil, web.NewRequestError(err, http.StatusInternalServerError)
	}
	return cur.Workspace, nil
}

// Page renders the marking panel and the records table.
func (ac Controller) Page(c *web.Context) error {
	ws, err := ac.workspace(c)
	if err != nil {
		return c.RespondError(err)
	}
	if err := ws.Enter(c.Ctx, page.NameAttendance); err != nil {
		return c.RespondError(err)
	}

	return c.RespondHTML(page.NameAttendance, view.Page{
		Layout: view.NewLayout(ac.cfg.Brand, path, ws.SidebarOpen(), ac.cfg.Subtitles),
		Data:   ws.Attendance.View(),
	}, http.StatusOK)
}

func (ac Controller) GetList(c *web.Context) error {
	ws, err := ac.workspace(c)
	if err != nil {
		return c.RespondError(err)
	}
	if err := ws.Enter(c.Ctx, page.NameAttendance); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   ws.Attendance.View(),
		"status": true,
	}, http.StatusOK)
}

func (ac Controller) Refresh(c *web.Context) error {
	ws, err := ac.workspace(c)
	if err != nil {
		return c.RespondError(err)
	}
	ws.Attendance.Refetch(c.Ctx)
	return c.Redirect(path)
}

// Mark records the posted status for the posted employee and day.
func (ac Controller) Mark(c *web.Context) error {
	ws, err := ac.workspace(c)
	if err != nil {
		return c.RespondError(err)
	}

	var request markRequest
	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}

	ws.Attendance.Select(request.EmployeeID, request.Date)
	_ = ws.Attendance.Mark(c.Ctx, entity.Status(request.Status))
	return c.Redirect(path)
}

func (ac Controller) Filter(c *web.Context) error {
	ws, err := ac.workspace(c)
	if err != nil {
		return c.RespondError(err)
	}

	var request filterRequest
	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}

	if err := ws.Attendance.SetFilter(c.Ctx, request.Date); err != nil {
		return c.RespondError(web.NewRequestError(err, http.StatusBadRequest))
	}
	return c.Redirect(path)
}

func (ac Controller) ClearFilter(c *web.Context) error {
	ws, err := ac.workspace(c)
	if err != nil {
		return c.RespondError(err)
	}
	ws.Attendance.ClearFilter(c.Ctx)
	return c.Redirect(path)
}

func (ac Controller) OpenHistory(c *web.Context) error {
	ws, err := ac.workspace(c)
	if err != nil {
		return c.RespondError(err)
	}
	ws.Attendance.OpenHistory(c.Ctx, entity.ID(c.Param("id")))
	return c.Redirect(path)
}

func (ac Controller) CloseHistory(c *web.Context) error {
	ws, err := ac.workspace(c)
	if err != nil {
		return c.RespondError(err)
	}
	ws.Attendance.CloseHistory()
	return c.Redirect(path)
}

// Export downloads the records of ?date= (or every record) as a workbook.
func (ac Controller) Export(c *web.Context) error {
	var day string
	if d, ok := c.GetQueryFunc(reflect.String, "date").(*string); ok {
		day = *d
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	filter, err := hook.DayFilter(day)
	if err != nil {
		return c.RespondError(web.NewRequestError(err, http.StatusBadRequest))
	}

	records, err := ac.attendance.List(c.Ctx, filter)
	if err != nil {
		return c.RespondError(web.NewRequestError(err, upstreamStatus(err)))
	}

	var buf bytes.Buffer
	if err := report.AttendanceXLSX(&buf, records); err != nil {
		return c.RespondError(err)
	}

	name := "attendance.xlsx"
	if day != "" {
		name = "attendance_" + day + ".xlsx"
	}
	return c.RespondFile("attachment", name, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// HistoryReport downloads an employee's history as a PDF.
func (ac Controller) HistoryReport(c *web.Context) error {
	history, err := ac.history.History(c.Ctx, entity.ID(c.Param("id")))
	if err != nil {
		return c.RespondError(web.NewRequestError(err, upstreamStatus(err)))
	}

	var buf bytes.Buffer
	if err := report.HistoryPDF(&buf, history); err != nil {
		return c.RespondError(err)
	}

	return c.RespondFile("attachment", "history_"+history.Employee.EmployeeID+".pdf", "application/pdf", buf.Bytes())
}

func upstreamStatus(err error) int {
	if backend.IsNotFound(err) {
		return http.StatusNotFound
	}
	return http.StatusBadGateway
}
