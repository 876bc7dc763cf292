package engine

import "testing"

func TestDedupRecordHas(t *testing.T) {
	d := NewDedup()

	if d.Has("2024-06-04", "task:1") {
		t.Fatal("empty tracker should have nothing")
	}
	d.Record("2024-06-04", "task:1")
	if !d.Has("2024-06-04", "task:1") {
		t.Fatal("recorded key not found")
	}
	if d.Has("2024-06-04", "task:2") {
		t.Fatal("unrecorded key found")
	}
}

func TestDedupDayRollover(t *testing.T) {
	d := NewDedup()
	d.Record("2024-06-04", "task:1")

	// Midnight rollover: yesterday's firings must not block today's keys,
	// and recording under the new day drops the old bucket.
	if d.Has("2024-06-05", "task:1") {
		t.Fatal("new day should start with an empty bucket")
	}
	d.Record("2024-06-05", "task:9")
	if d.Has("2024-06-04", "task:1") {
		t.Fatal("old day's bucket should be gone after rollover")
	}
	if !d.Has("2024-06-05", "task:9") {
		t.Fatal("new day's record lost")
	}
}

func TestDedupClear(t *testing.T) {
	d := NewDedup()
	d.Record("2024-06-04", "task:1")
	d.Clear()
	if d.Has("2024-06-04", "task:1") {
		t.Fatal("cleared tracker should be empty")
	}
}
