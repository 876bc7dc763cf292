package engine

import "sync"

// Dedup tracks which reminders have already fired so a matching item alerts
// at most once per occurrence. Fired keys are bucketed by day: touching the
// tracker with a new day key drops the previous bucket, which bounds memory
// in a long-running process (items are day-scoped, so yesterday's keys can
// never match again).
type Dedup struct {
	mu     sync.Mutex
	dayKey string
	fired  map[string]struct{}
}

func NewDedup() *Dedup {
	return &Dedup{fired: make(map[string]struct{})}
}

// Has reports whether the key already fired within the given day's bucket.
func (d *Dedup) Has(dayKey, key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.dayKey != dayKey {
		return false
	}
	_, ok := d.fired[key]
	return ok
}

// Record marks the key as fired for the given day, rolling the bucket over
// if the day changed since the last record.
func (d *Dedup) Record(dayKey, key string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.dayKey != dayKey {
		d.dayKey = dayKey
		d.fired = make(map[string]struct{})
	}
	d.fired[key] = struct{}{}
}

// Clear forgets everything. Used at session boundaries only.
func (d *Dedup) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.dayKey = ""
	d.fired = make(map[string]struct{})
}
