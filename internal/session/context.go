package session

import (
	"context"

	"attendance/console/internal/page"

	"github.com/pkg/errors"
)

type ctxKey int

const currentKey ctxKey = 1

// Current is the session serving a request.
type Current struct {
	ID        string
	Workspace *page.Workspace
}

func WithCurrent(ctx context.Context, cur Current) context.Context {
	return context.WithValue(ctx, currentKey, cur)
}

// FromContext returns the session stored by WithCurrent.
func FromContext(ctx context.Context) (Current, error) {
	cur, ok := ctx.Value(currentKey).(Current)
	if !ok || cur.Workspace == nil {
		return Current{}, errors.New("request has no session")
	}
	return cur, nil
}
