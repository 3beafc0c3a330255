package dashboard

import (
	"context"

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

func (r Repository) Summary(ctx context.Context) (entity.DashboardSummary, error) {
	var summary entity.DashboardSummary
	if err := r.Get(ctx, "/dashboard", nil, &summary); err != nil {
		return entity.DashboardSummary{}, errors.Wrap(err, "selecting dashboard")
	}
	return summary, nil
}
