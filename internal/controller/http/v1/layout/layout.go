package layout

import (
	"log"
	"net/http"

	"attendance/console/foundation/web"
	"attendance/console/internal/session"
)

var pages = map[string]bool{"/": true, "/employees": true, "/attendance": true}

type Controller struct {
	sessions *session.Manager
	log      *log.Logger
}

func NewController(sessions *session.Manager, log *log.Logger) *Controller {
	return &Controller{sessions, log}
}

// ToggleSidebar flips the sidebar and returns to the page it was toggled on.
func (lc Controller) ToggleSidebar(c *web.Context) error {
	cur, err := session.FromContext(c.Ctx)
	if err != nil {
		return c.RespondError(web.NewRequestError(err, http.StatusInternalServerError))
	}

	if _, err := lc.sessions.ToggleSidebar(c.Ctx, cur.ID, cur.Workspace); err != nil {
		lc.log.Printf("layout : saving sidebar : %v", err)
	}

	back := c.PostForm("back")
	if !pages[back] {
		back = "/"
	}
	return c.Redirect(back)
}

func (lc Controller) Health(c *web.Context) error {
	return c.Respond(map[string]interface{}{
		"status":   true,
		"sessions": lc.sessions.Len(),
	}, http.StatusOK)
}
