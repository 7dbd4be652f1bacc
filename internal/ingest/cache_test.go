package ingest

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"glpi-insights/internal/ticket"
)

var fixedNow = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

func loaded(n int) Result {
	return Result{Status: StatusLoaded, Snapshot: &ticket.Snapshot{Tickets: make([]ticket.Ticket, n)}}
}

func TestContentKey(t *testing.T) {
	a := ContentKey([]byte("abc"))
	if len(a) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(a))
	}
	if a != ContentKey([]byte("abc")) {
		t.Error("key must be deterministic")
	}
	if a == ContentKey([]byte("abd")) {
		t.Error("different content must produce different keys")
	}
}

func TestCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := NewCache(2)
	c.Do("a", func() Result { return loaded(1) })
	c.Do("b", func() Result { return loaded(2) })
	c.Get("a")
	c.Do("c", func() Result { return loaded(3) })

	if _, ok := c.Get("b"); ok {
		t.Error("expected b to be evicted")
	}
	if _, ok := c.Get("a"); !ok {
		t.Error("expected a to survive")
	}
	if c.Len() != 2 {
		t.Errorf("expected 2 entries, got %d", c.Len())
	}

	c.Purge()
	if c.Len() != 0 {
		t.Errorf("expected empty cache after purge, got %d", c.Len())
	}
}

func TestCache_SkipsUnsuccessfulResults(t *testing.T) {
	c := NewCache(0)
	calls := 0
	noData := func() Result {
		calls++
		return Result{Status: StatusNoData}
	}
	c.Do("k", noData)
	c.Do("k", noData)
	if calls != 2 {
		t.Errorf("expected no-data outcome to be recomputed, got %d calls", calls)
	}
}

func TestCache_CollapsesConcurrentLoads(t *testing.T) {
	c := NewCache(4)
	var calls atomic.Int32
	release := make(chan struct{})

	var wg sync.WaitGroup
	results := make([]Result, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = c.Do("same", func() Result {
				calls.Add(1)
				<-release
				return loaded(5)
			})
		}(i)
	}
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	if n := calls.Load(); n < 1 || n > int32(len(results)) {
		t.Fatalf("unexpected call count %d", n)
	}
	for i, r := range results {
		if !r.OK() || r.Snapshot.Len() != 5 {
			t.Errorf("result %d: unexpected %+v", i, r)
		}
	}
	if c.Len() != 1 {
		t.Errorf("expected one cached entry, got %d", c.Len())
	}
}
