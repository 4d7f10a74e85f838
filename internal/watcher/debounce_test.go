package watcher

import (
	"sync"
	"testing"
	"time"
)

func TestDebouncerCoalescesRapidEvents(t *testing.T) {
	var mu sync.Mutex
	calls := 0

	d := NewDebouncer(50*time.Millisecond, func(string) {
		mu.Lock()
		calls++
		mu.Unlock()
	})

	for i := 0; i < 5; i++ {
		d.Add("zonepath.json")
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(200 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if calls != 1 {
		t.Errorf("expected 1 coalesced callback, got %d", calls)
	}
}

func TestDebouncerTracksPathsIndependently(t *testing.T) {
	var mu sync.Mutex
	seen := map[string]int{}

	d := NewDebouncer(30*time.Millisecond, func(path string) {
		mu.Lock()
		seen[path]++
		mu.Unlock()
	})

	d.Add("a.json")
	d.Add("b.json")

	if got := d.PendingCount(); got != 2 {
		t.Errorf("PendingCount = %d, want 2", got)
	}

	time.Sleep(150 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if seen["a.json"] != 1 || seen["b.json"] != 1 {
		t.Errorf("expected one callback per path, got %v", seen)
	}
}

func TestDebouncerCancelAll(t *testing.T) {
	var mu sync.Mutex
	calls := 0

	d := NewDebouncer(30*time.Millisecond, func(string) {
		mu.Lock()
		calls++
		mu.Unlock()
	})

	d.Add("zonepath.json")
	d.CancelAll()

	if got := d.PendingCount(); got != 0 {
		t.Errorf("PendingCount after CancelAll = %d, want 0", got)
	}

	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if calls != 0 {
		t.Errorf("expected no callbacks after CancelAll, got %d", calls)
	}
}
