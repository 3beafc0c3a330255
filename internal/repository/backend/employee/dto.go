package employee

// CreateRequest is the body of POST /employees.
type CreateRequest struct {
	EmployeeID string `json:"employee_id" form:"employee_id"`
	FullName   string `json:"full_name"   form:"full_name"`
	Email      string `json:"email"       form:"email"`
	Department string `json:"department"  form:"department"`
}
