// Package activity implements the bounded in-memory activity log owned by
// each bridge service.
package activity

import (
	"sync"
	"time"
)

// Record types appended by the bridge handlers.
const (
	TypeMetricsServed     = "metrics-served"
	TypeOptimizeTriggered = "optimize-triggered"
)

// DefaultCapacity is the number of records a log retains before evicting
// the oldest.
const DefaultCapacity = 20

// Record is a single audit entry. Immutable once appended.
type Record struct {
	Type      string         `json:"type"`
	Payload   map[string]any `json:"payload,omitempty"`
	Timestamp int64          `json:"timestamp"`
}

// Log is a bounded, newest-first activity log. It is owned by exactly one
// bridge service and guarded by a mutex so concurrent handlers see a single
// atomic append-and-trim. It is never persisted; a process restart starts
// empty.
type Log struct {
	mu       sync.Mutex
	capacity int
	records  []Record // newest first
	evicted  uint64
}

// NewLog creates an empty log. A capacity of zero or less falls back to
// DefaultCapacity.
func NewLog(capacity int) *Log {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Log{
		capacity: capacity,
		records:  make([]Record, 0, capacity),
	}
}

// Append constructs a Record with the current timestamp, inserts it at the
// head of the log, and evicts the oldest record if the log is at capacity.
// It returns the appended record and whether an eviction happened.
func (l *Log) Append(recordType string, payload map[string]any) (Record, bool) {
	rec := Record{
		Type:      recordType,
		Payload:   payload,
		Timestamp: time.Now().UnixMilli(),
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	evicted := false
	if len(l.records) >= l.capacity {
		l.records = l.records[:l.capacity-1]
		l.evicted++
		evicted = true
	}
	l.records = append([]Record{rec}, l.records...)

	return rec, evicted
}

// Recent returns up to limit records, newest first. A limit of zero or less,
// or one larger than the log, returns everything. The returned slice is a
// copy; callers cannot mutate the log through it.
func (l *Log) Recent(limit int) []Record {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := len(l.records)
	if limit <= 0 || limit > n {
		limit = n
	}

	out := make([]Record, limit)
	copy(out, l.records[:limit])
	return out
}

// Len returns the current number of records.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records)
}

// Capacity returns the maximum number of records the log retains.
func (l *Log) Capacity() int {
	return l.capacity
}

// Evicted returns how many records have been dropped since startup.
func (l *Log) Evicted() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.evicted
}
