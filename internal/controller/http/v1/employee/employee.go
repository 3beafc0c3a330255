package employee

import (
	"net/http"

	"attendance/console/foundation/web"
	"attendance/console/internal/entity"
	"attendance/console/internal/page"
	"attendance/console/internal/pkg/config"
	"attendance/console/internal/service/form"
	"attendance/console/internal/service/report"
	"attendance/console/internal/session"
	"attendance/console/internal/view"

	"github.com/pkg/errors"
)

const path = "/employees"

type Controller struct {
	employee Employee
	cfg      *config.Config
}

func NewController(employee Employee, cfg *config.Config) *Controller {
	return &Controller{employee, cfg}
}

func (ec Controller) workspace(c *web.Context) (*page.Workspace, error) {
	cur, err := session.FromContext(c.Ctx)
	if err != nil {
		return nil, web.NewRequestError(err, http.StatusInternalServerError)
	}
	return cur.Workspace, nil
}

// Page renders the employee directory.
func (ec Controller) Page(c *web.Context) error {
	ws, err := ec.workspace(c)
	if err != nil {
		return c.RespondError(err)
	}
	if err := ws.Enter(c.Ctx, page.NameEmployees); err != nil {
		return c.RespondError(err)
	}

	return c.RespondHTML(page.NameEmployees, view.Page{
		Layout: view.NewLayout(ec.cfg.Brand, path, ws.SidebarOpen(), ec.cfg.Subtitles),
		Data:   ws.Employees.View(),
	}, http.StatusOK)
}

func (ec Controller) GetList(c *web.Context) error {
	ws, err := ec.workspace(c)
	if err != nil {
		return c.RespondError(err)
	}
	if err := ws.Enter(c.Ctx, page.NameEmployees); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   ws.Employees.View(),
		"status": true,
	}, http.StatusOK)
}

func (ec Controller) Refresh(c *web.Context) error {
	ws, err := ec.workspace(c)
	if err != nil {
		return c.RespondError(err)
	}
	ws.Employees.Refetch(c.Ctx)
	return c.Redirect(path)
}

func (ec Controller) OpenAdd(c *web.Context) error {
	ws, err := ec.workspace(c)
	if err != nil {
		return c.RespondError(err)
	}
	ws.Employees.OpenAdd()
	return c.Redirect(path)
}

func (ec Controller) CloseAdd(c *web.Context) error {
	ws, err := ec.workspace(c)
	if err != nil {
		return c.RespondError(err)
	}
	ws.Employees.CloseAdd()
	return c.Redirect(path)
}

// Create submits the Add-Employee form. Its errors become page state, so
// the browser is always sent back to the directory.
func (ec Controller) Create(c *web.Context) error {
	ws, err := ec.workspace(c)
	if err != nil {
		return c.RespondError(err)
	}

	var request form.Employee
	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}

	_ = ws.Employees.Submit(c.Ctx, request)
	return c.Redirect(path)
}

func (ec Controller) OpenView(c *web.Context) error {
	ws, err := ec.workspace(c)
	if err != nil {
		return c.RespondError(err)
	}
	if err := ws.Employees.OpenView(entity.ID(c.Param("id"))); err != nil {
		return c.RespondError(web.NewRequestError(err, http.StatusNotFound))
	}
	return c.Redirect(path)
}

func (ec Controller) CloseView(c *web.Context) error {
	ws, err := ec.workspace(c)
	if err != nil {
		return c.RespondError(err)
	}
	ws.Employees.CloseView()
	return c.Redirect(path)
}

func (ec Controller) OpenDelete(c *web.Context) error {
	ws, err := ec.workspace(c)
	if err != nil {
		return c.RespondError(err)
	}
	if err := ws.Employees.OpenDelete(entity.ID(c.Param("id"))); err != nil {
		return c.RespondError(web.NewRequestError(err, http.StatusNotFound))
	}
	return c.Redirect(path)
}

func (ec Controller) CloseDelete(c *web.Context) error {
	ws, err := ec.workspace(c)
	if err != nil {
		return c.RespondError(err)
	}
	ws.Employees.CloseDelete()
	return c.Redirect(path)
}

// ConfirmDelete deletes the employee in the confirm dialog. A failure stays
// in the dialog.
func (ec Controller) ConfirmDelete(c *web.Context) error {
	ws, err := ec.workspace(c)
	if err != nil {
		return c.RespondError(err)
	}
	if err := ws.Employees.ConfirmDelete(c.Ctx); errors.Is(err, page.ErrUnknownEmployee) {
		return c.RespondError(web.NewRequestError(err, http.StatusNotFound))
	}
	return c.Redirect(path)
}

// Badge serves the employee's QR badge.
func (ec Controller) Badge(c *web.Context) error {
	ws, err := ec.workspace(c)
	if err != nil {
		return c.RespondError(err)
	}

	id := entity.ID(c.Param("id"))
	e, ok := ws.Employees.Find(id)
	if !ok {
		list, err := ec.employee.List(c.Ctx)
		if err != nil {
			return c.RespondError(web.NewRequestError(err, http.StatusBadGateway))
		}
		for _, candidate := range list {
			if candidate.ID == id {
				e, ok = candidate, true
				break
			}
		}
	}
	if !ok {
		return c.RespondError(web.NewRequestError(page.ErrUnknownEmployee, http.StatusNotFound))
	}

	png, err := report.BadgePNG(e.EmployeeID)
	if err != nil {
		return c.RespondError(err)
	}

	return c.RespondFile("inline", e.EmployeeID+".png", "image/png", png)
}
