package employee

import (
	"context"
	"net/url"

	"attendance/console/internal/entity"
	"attendance/console/internal/pkg/repository/backend"

	"github.com/pkg/errors"
)

type Repository struct {
	*backend.Client
}

func NewRepository(client *backend.Client) *Repository {
	return &Repository{Client: client}
}

func (r Repository) List(ctx context.Context) ([]entity.Employee, error) {
	var list []entity.Employee
	if err := r.Get(ctx, "/employees", nil, &list); err != nil {
		return nil, errors.Wrap(err, "selecting employees")
	}
	if list == nil {
		list = []entity.Employee{}
	}
	return list, nil
}

func (r Repository) Create(ctx context.Context, request CreateRequest) (entity.Employee, error) {
	var created entity.Employee
	if err := r.Post(ctx, "/employees", request, &created); err != nil {
		return entity.Employee{}, errors.Wrap(err, "creating employee")
	}
	return created, nil
}

// Delete removes the employee; the backend cascades to its attendance.
func (r Repository) Delete(ctx context.Context, id entity.ID) error {
	if err := r.Client.Delete(ctx, "/employees/"+url.PathEscape(id.String())); err != nil {
		return errors.Wrapf(err, "deleting employee %s", id)
	}
	return nil
}

func (r Repository) History(ctx context.Context, id entity.ID) (entity.EmployeeHistory, error) {
	var history entity.EmployeeHistory
	if err := r.Get(ctx, "/employees/"+url.PathEscape(id.String())+"/history", nil, &history); err != nil {
		return entity.EmployeeHistory{}, errors.Wrapf(err, "selecting history of %s", id)
	}
	return history, nil
}
