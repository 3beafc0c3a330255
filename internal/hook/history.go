package hook

import (
	"context"
	"sync"

	"attendance/console/internal/entity"
)

// HistoryFetcher loads one employee's history.
type HistoryFetcher func(ctx context.Context, id entity.ID) (entity.EmployeeHistory, error)

// HistorySnapshot is the state of the history modal.
type HistorySnapshot struct {
	Open       bool
	EmployeeID entity.ID
	State      State
	Data       *entity.EmployeeHistory
	Err        error
}

func (s HistorySnapshot) Loading() bool {
	return s.State == Loading
}

// History fetches an employee's attendance history on demand. Each Fetch is
// fresh; nothing is kept across openings. A response is dropped when a
// newer Fetch or a Close happened after it was issued.
type History struct {
	fetch HistoryFetcher

	mu         sync.Mutex
	seq        uint64
	open       bool
	employeeID entity.ID
	state      State
	data       *entity.EmployeeHistory
	err        error
}

func NewHistory(fetch HistoryFetcher) *History {
	return &History{fetch: fetch}
}

// Fetch opens the modal in Loading for id and settles it.
func (h *History) Fetch(ctx context.Context, id entity.ID) HistorySnapshot {
	h.mu.Lock()
	h.seq++
	token := h.seq
	h.open = true
	h.employeeID = id
	h.state = Loading
	h.data = nil
	h.err = nil
	h.mu.Unlock()

	history, err := h.fetch(ctx, id)

	h.mu.Lock()
	defer h.mu.Unlock()

	if token != h.seq {
		return h.snapshotLocked()
	}
	if err != nil {
		h.state = Failed
		h.err = err
		return h.snapshotLocked()
	}
	h.state = Success
	h.data = &history
	return h.snapshotLocked()
}

// Close resets to Idle and discards data.
func (h *History) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.seq++
	h.open = false
	h.employeeID = ""
	h.state = Idle
	h.data = nil
	h.err = nil
}

func (h *History) Snapshot() HistorySnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.snapshotLocked()
}

func (h *History) snapshotLocked() HistorySnapshot {
	return HistorySnapshot{
		Open:       h.open,
		EmployeeID: h.employeeID,
		State:      h.state,
		Data:       h.data,
		Err:        h.err,
	}
}
