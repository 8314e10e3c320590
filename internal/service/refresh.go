package service

import "sync"

// RefreshCounter is a per-workspace monotonically increasing counter.
// It is bumped strictly after a create or delete has been confirmed by the
// store, never optimistically, so views that compare it know their fetched
// collection is stale.
type RefreshCounter struct {
	mu  sync.Mutex
	seq map[string]uint64
}

func NewRefreshCounter() *RefreshCounter {
	return &RefreshCounter{seq: make(map[string]uint64)}
}

func (r *RefreshCounter) Bump(workspaceID string) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq[workspaceID]++
	return r.seq[workspaceID]
}

func (r *RefreshCounter) Current(workspaceID string) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.seq[workspaceID]
}
