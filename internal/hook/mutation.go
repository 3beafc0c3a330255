package hook

import (
	"context"
	"sync"

	"attendance/console/internal/entity"
	"attendance/console/internal/pkg/repository/backend"

	"github.com/pkg/errors"
)

// ErrBusy is returned when Submit is called while a submission is in flight.
var ErrBusy = errors.New("a submission is already in progress")

// Mutator performs the write.
type Mutator[In, Out any] func(ctx context.Context, in In) (Out, error)

// MutationOption configures a Mutation.
type MutationOption func(*mutationConfig)

type mutationConfig struct {
	conflictField    string
	notFoundSucceeds bool
}

// WithConflictField names the field that carries a conflict whose body had
// no field attribution, e.g. a duplicate employee_id reported as a bare 409.
func WithConflictField(field string) MutationOption {
	return func(c *mutationConfig) {
		c.conflictField = field
	}
}

// WithNotFoundAsSuccess treats a 404 as success, so deleting something
// already gone still closes the dialog and refetches.
func WithNotFoundAsSuccess() MutationOption {
	return func(c *mutationConfig) {
		c.notFoundSucceeds = true
	}
}

// Mutation wraps a single write. Validation and conflict failures become
// field errors, anything else becomes Failure. onSuccess is where callers
// close dialogs, reset forms and refetch the matching read hook.
type Mutation[In, Out any] struct {
	do        Mutator[In, Out]
	onSuccess func(ctx context.Context, out Out)
	cfg       mutationConfig

	mu         sync.Mutex
	submitting bool
	fields     entity.FieldErrors
	failure    error
}

func NewMutation[In, Out any](do Mutator[In, Out], onSuccess func(ctx context.Context, out Out), opts ...MutationOption) *Mutation[In, Out] {
	m := &Mutation[In, Out]{do: do, onSuccess: onSuccess, fields: entity.FieldErrors{}}
	for _, opt := range opts {
		opt(&m.cfg)
	}
	return m
}

// Submit performs the write and routes its outcome into state. The
// returned error is the same one recorded in state; nil on success.
func (m *Mutation[In, Out]) Submit(ctx context.Context, in In) error {
	m.mu.Lock()
	if m.submitting {
		m.mu.Unlock()
		return ErrBusy
	}
	m.submitting = true
	m.failure = nil
	m.mu.Unlock()

	out, err := m.do(ctx, in)

	if err != nil && m.cfg.notFoundSucceeds && backend.IsNotFound(err) {
		err = nil
	}

	m.mu.Lock()
	m.submitting = false
	if err != nil {
		m.recordLocked(err)
		m.mu.Unlock()
		return err
	}
	m.fields = entity.FieldErrors{}
	m.mu.Unlock()

	if m.onSuccess != nil {
		m.onSuccess(ctx, out)
	}
	return nil
}

func (m *Mutation[In, Out]) recordLocked(err error) {
	switch backend.KindOf(err) {
	case backend.KindValidation, backend.KindConflict:
		fields := backend.FieldsOf(err)
		if fields.Empty() {
			if m.cfg.conflictField == "" {
				m.failure = err
				return
			}
			fields = entity.FieldErrors{m.cfg.conflictField: {conflictMessage(err)}}
		}
		m.fields = fields.Clone()
	default:
		m.failure = err
	}
}

func conflictMessage(err error) string {
	var e *backend.Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return "Already exists"
}

func (m *Mutation[In, Out]) Submitting() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.submitting
}

// Errors returns a copy of the field errors from the last submission.
func (m *Mutation[In, Out]) Errors() entity.FieldErrors {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fields.Clone()
}

func (m *Mutation[In, Out]) SetErrors(fields entity.FieldErrors) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fields = fields.Clone()
}

func (m *Mutation[In, Out]) ClearField(field string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fields.Clear(field)
}

// ClearErrors drops field errors and the failure.
func (m *Mutation[In, Out]) ClearErrors() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fields = entity.FieldErrors{}
	m.failure = nil
}

// Failure is the last unscoped failure (network or server).
func (m *Mutation[In, Out]) Failure() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.failure
}
