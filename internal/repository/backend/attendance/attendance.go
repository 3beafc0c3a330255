package attendance

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

func (r Repository) List(ctx context.Context, filter Filter) ([]entity.AttendanceRecord, error) {
	query := url.Values{}
	if filter.Date != nil {
		query.Set("date", filter.Date.String())
	}

	var list []entity.AttendanceRecord
	if err := r.Get(ctx, "/attendance", query, &list); err != nil {
		return nil, errors.Wrap(err, "selecting attendance")
	}
	if list == nil {
		list = []entity.AttendanceRecord{}
	}
	return list, nil
}

func (r Repository) Mark(ctx context.Context, request MarkRequest) (entity.AttendanceRecord, error) {
	if !request.Status.Valid() {
		return entity.AttendanceRecord{}, errors.Errorf("unknown attendance status %q", request.Status)
	}

	var record entity.AttendanceRecord
	if err := r.Post(ctx, "/attendance", request, &record); err != nil {
		return entity.AttendanceRecord{}, errors.Wrap(err, "marking attendance")
	}
	return record, nil
}
