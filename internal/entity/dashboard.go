package entity

import "math"

// TodaySummary counts today's attendance. The backend is trusted to keep
// Present+Absent+NotMarked equal to the employee total.
type TodaySummary struct {
	Present   int `json:"present"`
	Absent    int `json:"absent"`
	NotMarked int `json:"not_marked"`
}

type EmployeeStat struct {
	EmployeeCode string `json:"employee_code"`
	EmployeeName string `json:"employee_name"`
	PresentDays  int    `json:"present_days"`
}

type DashboardSummary struct {
	TotalEmployees int            `json:"total_employees"`
	Today          TodaySummary   `json:"today"`
	EmployeeStats  []EmployeeStat `json:"employee_stats"`
}

// Percent is part/total as a whole percentage, rounded half up. A zero
// total yields 0.
func Percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Floor(float64(part)*100/float64(total) + 0.5))
}

// AttendanceRate is today's present share of all employees.
func (s DashboardSummary) AttendanceRate() int {
	return Percent(s.Today.Present, s.TotalEmployees)
}
