package memo

import (
	"strconv"
	"sync"
	"testing"
)

func TestGetComputesOnce(t *testing.T) {
	tab := New[string, int](10)
	calls := 0
	compute := func(k string) int {
		calls++
		n, _ := strconv.Atoi(k)
		return n * 2
	}

	if got := tab.Get("21", compute); got != 42 {
		t.Errorf("Get() = %d, want 42", got)
	}
	if got := tab.Get("21", compute); got != 42 {
		t.Errorf("second Get() = %d, want 42", got)
	}
	if calls != 1 {
		t.Errorf("compute called %d times, want 1", calls)
	}
	if n := tab.Len(); n != 1 {
		t.Errorf("Len() = %d, want 1", n)
	}
}

func TestEvictsOldest(t *testing.T) {
	tab := New[int, int](4)
	id := func(k int) int { return k }

	for i := range 4 {
		tab.Get(i, id)
	}
	// Touch 0 so it survives.
	tab.Get(0, id)
	tab.Get(4, id)

	if n := tab.Len(); n != 3 {
		t.Fatalf("Len() = %d, want 3 after eviction", n)
	}

	recomputed := false
	tab.Get(0, func(k int) int { recomputed = true; return k })
	if recomputed {
		t.Error("recently used key should not be evicted")
	}
}

func TestUnlimited(t *testing.T) {
	tab := New[int, int](0)
	for i := range 1000 {
		tab.Get(i, func(k int) int { return k })
	}
	if n := tab.Len(); n != 1000 {
		t.Errorf("Len() = %d, want 1000", n)
	}
}

func TestReset(t *testing.T) {
	tab := New[int, int](10)
	tab.Get(1, func(k int) int { return k })
	tab.Reset()
	if n := tab.Len(); n != 0 {
		t.Errorf("Len() after Reset = %d, want 0", n)
	}
}

func TestConcurrentGet(t *testing.T) {
	tab := New[int, string](16)
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 100 {
				k := (i + g) % 32
				if got := tab.Get(k, strconv.Itoa); got != strconv.Itoa(k) {
					t.Errorf("Get(%d) = %q", k, got)
				}
			}
		}()
	}
	wg.Wait()
}
