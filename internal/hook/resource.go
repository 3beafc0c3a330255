// Package hook holds the stateful wrappers that pages use to read and
// mutate backend data. Each instance owns its state exclusively; there is
// no cache shared between instances.
package hook

import (
	"context"
	"sync"
)

// State of a read hook.
type State int

const (
	Idle State = iota
	Loading
	Success
	Failed
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Failed:
		return "failed"
	default:
		return "idle"
	}
}

// Fetcher loads T for the parameters P.
type Fetcher[P comparable, T any] func(ctx context.Context, params P) (T, error)

// Snapshot is a consistent copy of a Resource's state.
type Snapshot[P comparable, T any] struct {
	State  State
	Params P
	Data   T
	Err    error
	// Loaded is true once any fetch has succeeded.
	Loaded bool
}

func (s Snapshot[P, T]) Loading() bool {
	return s.State == Loading
}

// Resource is a read hook. Every fetch takes a sequence number when it is
// issued; a response is applied only if no newer fetch was issued since,
// so the last-issued request always wins regardless of arrival order.
// A failed fetch keeps the previous data.
type Resource[P comparable, T any] struct {
	fetch Fetcher[P, T]

	initial P

	mu     sync.Mutex
	seq    uint64
	state  State
	params P
	data   T
	err    error
	loaded bool
}

// NewResource creates an idle Resource with the initial parameters.
func NewResource[P comparable, T any](params P, fetch Fetcher[P, T]) *Resource[P, T] {
	return &Resource[P, T]{fetch: fetch, initial: params, params: params}
}

// Load is the mount trigger.
func (r *Resource[P, T]) Load(ctx context.Context) Snapshot[P, T] {
	return r.run(ctx, nil)
}

// Refetch re-enters Loading from any state.
func (r *Resource[P, T]) Refetch(ctx context.Context) Snapshot[P, T] {
	return r.run(ctx, nil)
}

// SetParams re-enters Loading when params differ from the current ones.
func (r *Resource[P, T]) SetParams(ctx context.Context, params P) Snapshot[P, T] {
	r.mu.Lock()
	same := r.params == params && r.state != Idle
	r.mu.Unlock()

	if same {
		return r.Snapshot()
	}
	return r.run(ctx, &params)
}

func (r *Resource[P, T]) Snapshot() Snapshot[P, T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked()
}

// Reset returns the hook to Idle with its initial parameters and drops its
// data. Responses of fetches still in flight are discarded.
func (r *Resource[P, T]) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	var zero T
	r.seq++
	r.state = Idle
	r.params = r.initial
	r.data = zero
	r.err = nil
	r.loaded = false
}

func (r *Resource[P, T]) snapshotLocked() Snapshot[P, T] {
	return Snapshot[P, T]{
		State:  r.state,
		Params: r.params,
		Data:   r.data,
		Err:    r.err,
		Loaded: r.loaded,
	}
}

func (r *Resource[P, T]) run(ctx context.Context, params *P) Snapshot[P, T] {
	r.mu.Lock()
	if params != nil {
		r.params = *params
	}
	r.seq++
	token := r.seq
	current := r.params
	r.state = Loading
	r.mu.Unlock()

	data, err := r.fetch(ctx, current)

	r.mu.Lock()
	defer r.mu.Unlock()

	if token != r.seq {
		return r.snapshotLocked()
	}

	if err != nil {
		r.state = Failed
		r.err = err
		return r.snapshotLocked()
	}

	r.state = Success
	r.data = data
	r.err = nil
	r.loaded = true
	return r.snapshotLocked()
}
