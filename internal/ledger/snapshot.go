package ledger

import (
	"sync"

	"siteledger/internal/models"
)

// State is the aggregation state machine: loading while a fetch cycle is in
// flight, ready once a view is available, error when any source failed.
type State string

const (
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateError   State = "error"
)

// Snapshot holds the most recent completed view. Cycles are numbered
// monotonically; a completion or failure carrying a cycle older than the
// newest one seen is discarded, so a slow stale fetch can never overwrite
// the result of a fresher one.
type Snapshot struct {
	mu      sync.Mutex
	state   State
	newest  uint64
	settled uint64
	view    *models.LedgerView
	err     error
}

// NewSnapshot returns an empty snapshot holder in the loading state.
func NewSnapshot() *Snapshot {
	return &Snapshot{state: StateLoading}
}

// Begin marks the start of a fetch cycle. Any previous ready or error state
// transitions back to loading.
func (s *Snapshot) Begin(cycle uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cycle > s.newest {
		s.newest = cycle
		s.state = StateLoading
	}
}

// Complete stores the finished view unless a newer cycle has already
// settled. It reports whether the view was accepted.
func (s *Snapshot) Complete(view *models.LedgerView) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if view.Cycle < s.settled {
		return false
	}
	s.settled = view.Cycle
	s.view = view
	s.err = nil
	if view.Cycle == s.newest {
		s.state = StateReady
	}
	return true
}

// Fail records a failed cycle unless a newer cycle has already settled.
// The last successful view is kept for the delete gate, but the state
// reflects the failure.
func (s *Snapshot) Fail(cycle uint64, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cycle < s.settled {
		return false
	}
	s.settled = cycle
	s.err = err
	if cycle == s.newest {
		s.state = StateError
	}
	return true
}

// Current returns the state machine position, the latest completed view (nil
// until the first cycle completes), and the last error.
func (s *Snapshot) Current() (State, *models.LedgerView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state, s.view, s.err
}

// Lookup finds a record by id in the latest completed view.
func (s *Snapshot) Lookup(id string) (models.TransactionRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.view == nil {
		return models.TransactionRecord{}, false
	}
	for _, rec := range s.view.Records {
		if rec.ID == id {
			return rec, true
		}
	}
	return models.TransactionRecord{}, false
}
