package employee

import (
	"context"

	"attendance/console/internal/entity"
)

type Employee interface {
	List(ctx context.Context) ([]entity.Employee, error)
}
