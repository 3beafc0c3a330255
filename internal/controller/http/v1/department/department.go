package department

import (
	"net/http"
	"reflect"
	"strings"

	"attendance/console/foundation/web"
)

type Controller struct {
	department Department
}

func NewController(department Department) *Controller {
	return &Controller{department}
}

// GetList returns the departments an employee may belong to, optionally
// narrowed by ?search=.
func (dc Controller) GetList(c *web.Context) error {
	var search string
	if s, ok := c.GetQueryFunc(reflect.String, "search").(*string); ok {
		search = strings.ToLower(strings.TrimSpace(*s))
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	list := make([]string, 0)
	for _, name := range dc.department.Departments() {
		if search == "" || strings.Contains(strings.ToLower(name), search) {
			list = append(list, name)
		}
	}

	return c.Respond(map[string]interface{}{
		"data": map[string]interface{}{
			"results": list,
			"count":   len(list),
		},
		"status": true,
	}, http.StatusOK)
}
