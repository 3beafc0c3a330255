package attendance

import (
	"attendance/console/internal/entity"

	"github.com/Azure/go-autorest/autorest/date"
)

// Filter narrows GET /attendance. A nil Date lists every record.
type Filter struct {
	Date *date.Date
}

// Key is a comparable form of the filter.
func (f Filter) Key() string {
	if f.Date == nil {
		return ""
	}
	return f.Date.String()
}

// MarkRequest is the body of POST /attendance.
type MarkRequest struct {
	EmployeeID entity.ID     `json:"employee_id"`
	Date       date.Date     `json:"date"`
	Status     entity.Status `json:"status"`
}
