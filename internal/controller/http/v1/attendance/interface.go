package attendance

import (
	"context"

	"attendance/console/internal/entity"
	"attendance/console/internal/repository/backend/attendance"
)

type Attendance interface {
	List(ctx context.Context, filter attendance.Filter) ([]entity.AttendanceRecord, error)
}

type History interface {
	History(ctx context.Context, id entity.ID) (entity.EmployeeHistory, error)
}
