package hook

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gate lets a test decide when each fetch call returns.
type gate struct {
	mu      sync.Mutex
	calls   []chan result
	started chan int
}

type result struct {
	value string
	err   error
}

func newGate() *gate {
	return &gate{started: make(chan int, 16)}
}

func (g *gate) fetch(ctx context.Context, params string) (string, error) {
	ch := make(chan result, 1)
	g.mu.Lock()
	g.calls = append(g.calls, ch)
	n := len(g.calls) - 1
	g.mu.Unlock()

	g.started <- n
	r := <-ch
	return r.value, r.err
}

func (g *gate) resolve(n int, value string, err error) {
	g.mu.Lock()
	ch := g.calls[n]
	g.mu.Unlock()
	ch <- result{value: value, err: err}
}

func TestResourceLastIssuedWinsWhenOlderResolvesLast(t *testing.T) {
	g := newGate()
	r := NewResource("", g.fetch)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() { defer wg.Done(); r.Refetch(context.Background()) }()
	<-g.started
	go func() { defer wg.Done(); r.Refetch(context.Background()) }()
	<-g.started

	g.resolve(1, "second", nil)
	g.resolve(0, "first", nil)
	wg.Wait()

	snap := r.Snapshot()
	assert.Equal(t, Success, snap.State)
	assert.Equal(t, "second", snap.Data)
}

func TestResourceLastIssuedWinsWhenOlderResolvesFirst(t *testing.T) {
	g := newGate()
	r := NewResource("", g.fetch)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() { defer wg.Done(); r.Load(context.Background()) }()
	<-g.started
	go func() { defer wg.Done(); r.Refetch(context.Background()) }()
	<-g.started

	g.resolve(0, "first", nil)
	assert.Equal(t, Loading, r.Snapshot().State, "a stale answer must not settle the hook")

	g.resolve(1, "second", nil)
	wg.Wait()

	assert.Equal(t, "second", r.Snapshot().Data)
}

func TestResourceStaleFailureIsDiscarded(t *testing.T) {
	g := newGate()
	r := NewResource("", g.fetch)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() { defer wg.Done(); r.Refetch(context.Background()) }()
	<-g.started
	go func() { defer wg.Done(); r.Refetch(context.Background()) }()
	<-g.started

	g.resolve(1, "fresh", nil)
	g.resolve(0, "", errors.New("boom"))
	wg.Wait()

	snap := r.Snapshot()
	assert.Equal(t, Success, snap.State)
	assert.NoError(t, snap.Err)
	assert.Equal(t, "fresh", snap.Data)
}

func TestResourceFailureKeepsPreviousData(t *testing.T) {
	fail := false
	r := NewResource(struct{}{}, func(ctx context.Context, _ struct{}) ([]int, error) {
		if fail {
			return nil, errors.New("backend down")
		}
		return []int{1, 2}, nil
	})

	assert.Equal(t, Idle, r.Snapshot().State)
	require.Equal(t, Success, r.Load(context.Background()).State)

	fail = true
	snap := r.Refetch(context.Background())
	assert.Equal(t, Failed, snap.State)
	assert.EqualError(t, snap.Err, "backend down")
	assert.Equal(t, []int{1, 2}, snap.Data)
	assert.True(t, snap.Loaded)
}

func TestResourceSetParamsOnlyRefetchesOnChange(t *testing.T) {
	var calls int32
	r := NewResource("", func(ctx context.Context, day string) (string, error) {
		atomic.AddInt32(&calls, 1)
		return "records for " + day, nil
	})

	r.Load(context.Background())
	r.SetParams(context.Background(), "")
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))

	snap := r.SetParams(context.Background(), "2024-05-01")
	assert.EqualValues(t, 2, atomic.LoadInt32(&calls))
	assert.Equal(t, "2024-05-01", snap.Params)
	assert.Equal(t, "records for 2024-05-01", snap.Data)
}

func TestResourceParamChangeDiscardsOlderParams(t *testing.T) {
	g := newGate()
	r := NewResource("", g.fetch)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() { defer wg.Done(); r.SetParams(context.Background(), "2024-05-01") }()
	<-g.started
	go func() { defer wg.Done(); r.SetParams(context.Background(), "2024-05-02") }()
	<-g.started

	g.resolve(1, "may 2nd", nil)
	g.resolve(0, "may 1st", nil)
	wg.Wait()

	snap := r.Snapshot()
	assert.Equal(t, "2024-05-02", snap.Params)
	assert.Equal(t, "may 2nd", snap.Data)
}

func TestResourceResetDiscardsInFlight(t *testing.T) {
	g := newGate()
	r := NewResource("", g.fetch)

	done := make(chan struct{})
	go func() { r.Load(context.Background()); close(done) }()
	<-g.started

	r.Reset()
	g.resolve(0, "late", nil)
	<-done

	snap := r.Snapshot()
	assert.Equal(t, Idle, snap.State)
	assert.Equal(t, "", snap.Data)
}

func TestResourceResetRestoresInitialParams(t *testing.T) {
	r := NewResource("", func(ctx context.Context, day string) (string, error) {
		return "records for " + day, nil
	})

	r.SetParams(context.Background(), "2024-05-01")
	r.Reset()

	snap := r.Snapshot()
	assert.Equal(t, "", snap.Params)
	assert.False(t, snap.Loaded)
	assert.Equal(t, "records for ", r.Load(context.Background()).Data)
}
