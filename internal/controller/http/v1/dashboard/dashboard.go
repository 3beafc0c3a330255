package dashboard

import (
	"net/http"

	"attendance/console/foundation/web"
	"attendance/console/internal/page"
	"attendance/console/internal/pkg/config"
	"attendance/console/internal/session"
	"attendance/console/internal/view"
)

type Controller struct {
	cfg *config.Config
}

func NewController(cfg *config.Config) *Controller {
	return &Controller{cfg}
}

func (dc Controller) workspace(c *web.Context) (*page.Workspace, error) {
	cur, err := session.FromContext(c.Ctx)
	if err != nil {
		return nil, web.NewRequestError(err, http.StatusInternalServerError)
	}
	return cur.Workspace, nil
}

func (dc Controller) Page(c *web.Context) error {
	ws, err := dc.workspace(c)
	if err != nil {
		return c.RespondError(err)
	}
	if err := ws.Enter(c.Ctx, page.NameDashboard); err != nil {
		return c.RespondError(err)
	}

	return c.RespondHTML(page.NameDashboard, view.Page{
		Layout: view.NewLayout(dc.cfg.Brand, "/", ws.SidebarOpen(), dc.cfg.Subtitles),
		Data:   ws.Dashboard.View(),
	}, http.StatusOK)
}

func (dc Controller) Get(c *web.Context) error {
	ws, err := dc.workspace(c)
	if err != nil {
		return c.RespondError(err)
	}
	if err := ws.Enter(c.Ctx, page.NameDashboard); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   ws.Dashboard.View(),
		"status": true,
	}, http.StatusOK)
}

func (dc Controller) Refresh(c *web.Context) error {
	ws, err := dc.workspace(c)
	if err != nil {
		return c.RespondError(err)
	}
	ws.Dashboard.Refetch(c.Ctx)
	return c.Redirect("/")
}
