package entity

import (
	"github.com/Azure/go-autorest/autorest/date"
)

// Status of a day's attendance.
type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	return s == StatusPresent || s == StatusAbsent
}

// AttendanceRecord is one employee's status for one calendar day. The
// employee code and name are denormalised for display.
type AttendanceRecord struct {
	ID           ID        `json:"id"`
	EmployeeID   ID        `json:"employee_id"`
	EmployeeCode string    `json:"employee_code"`
	EmployeeName string    `json:"employee_name"`
	Date         date.Date `json:"date"`
	Status       Status    `json:"status"`
}
