package entity

// Employee is a directory entry owned by the HR backend.
type Employee struct {
	ID         ID        `json:"id"`
	EmployeeID string    `json:"employee_id"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	CreatedAt  Timestamp `json:"created_at"`
}

// Initial is the avatar letter shown next to the name.
func (e Employee) Initial() string {
	for _, r := range e.FullName {
		return string(r)
	}
	return "?"
}

// HistoryStats summarises an employee's attendance.
type HistoryStats struct {
	TotalDays   int `json:"total_days"`
	PresentDays int `json:"present_days"`
	AbsentDays  int `json:"absent_days"`
}

// EmployeeHistory is computed by the backend per employee and fetched on
// demand; it is never kept between openings of the history modal.
type EmployeeHistory struct {
	Employee Employee           `json:"employee"`
	Stats    HistoryStats       `json:"stats"`
	Records  []AttendanceRecord `json:"records"`
}
