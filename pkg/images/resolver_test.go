package images

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

type fakeStore struct {
	mu      sync.Mutex
	initial map[string]string
	saved   map[string]string
	saves   int
}

func (f *fakeStore) Load() (map[string]string, error) {
	if f.initial == nil {
		return map[string]string{}, nil
	}
	return f.initial, nil
}

func (f *fakeStore) Save(entries map[string]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saved = entries
	f.saves++
	return nil
}

func (f *fakeStore) lastSaved() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.saved
}

func countingLookup(counter *int32, result string) LookupFunc {
	return func(ctx context.Context, name string) string {
		atomic.AddInt32(counter, 1)
		return result
	}
}

func waitDeliver(t *testing.T, r *Resolver, name string) string {
	t.Helper()
	done := make(chan string, 1)
	r.Request(name, func(url string) { done <- url })
	select {
	case url := <-done:
		return url
	case <-time.After(5 * time.Second):
		t.Fatalf("resolution of %q did not settle", name)
		return ""
	}
}

func TestCacheShortCircuit(t *testing.T) {
	var calls int32
	store := &fakeStore{initial: map[string]string{"Known Product": "https://img/known.jpg"}}
	r := NewResolver(store, countingLookup(&calls, "https://img/fresh.jpg"), time.Second)
	defer r.Close()

	var delivered string
	r.Request("Known Product", func(url string) { delivered = url })

	if delivered != "https://img/known.jpg" {
		t.Errorf("delivered %q, want persisted cache entry", delivered)
	}
	if atomic.LoadInt32(&calls) != 0 {
		t.Errorf("cache hit still triggered %d lookups", calls)
	}
}

func TestNegativeResultCached(t *testing.T) {
	var calls int32
	r := NewResolver(&fakeStore{}, countingLookup(&calls, ""), time.Second)
	defer r.Close()

	if url := waitDeliver(t, r, "Unknown Product"); url != "" {
		t.Errorf("first resolution delivered %q, want empty", url)
	}
	if atomic.LoadInt32(&calls) != 1 {
		t.Fatalf("lookup ran %d times, want 1", calls)
	}

	// Second request hits the cached negative: no further lookup.
	var delivered bool
	r.Request("Unknown Product", func(url string) { delivered = true })
	if !delivered {
		t.Error("cached negative did not deliver synchronously")
	}
	if atomic.LoadInt32(&calls) != 1 {
		t.Errorf("cached negative still triggered a lookup (total %d)", calls)
	}
}

func TestWriteBackBeforeDeliver(t *testing.T) {
	store := &fakeStore{}
	var calls int32
	r := NewResolver(store, countingLookup(&calls, "https://img/p.jpg"), time.Second)
	defer r.Close()

	done := make(chan struct{})
	r.Request("Some Product", func(url string) {
		if cached, ok := r.Cached("Some Product"); !ok || cached != url {
			t.Errorf("cache not written before delivery: %q/%v", cached, ok)
		}
		saved := store.lastSaved()
		if saved["Some Product"] != url {
			t.Errorf("durable store not written before delivery: %v", saved)
		}
		close(done)
	})

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("delivery never happened")
	}
}

func TestNegativeEntriesNotPersisted(t *testing.T) {
	store := &fakeStore{}
	var calls int32
	r := NewResolver(store, countingLookup(&calls, ""), time.Second)
	defer r.Close()

	waitDeliver(t, r, "Missing Product")

	saved := store.lastSaved()
	if _, ok := saved["Missing Product"]; ok {
		t.Errorf("negative entry leaked into the persisted blob: %v", saved)
	}
	if store.saves == 0 {
		t.Error("blob was not rewritten after resolution")
	}
	if _, ok := r.Cached("Missing Product"); !ok {
		t.Error("negative entry missing from the session cache")
	}
}

func TestConcurrencyBound(t *testing.T) {
	const n = 10

	gate := make(chan struct{})
	var inflight, peak int32
	lookup := func(ctx context.Context, name string) string {
		cur := atomic.AddInt32(&inflight, 1)
		for {
			prev := atomic.LoadInt32(&peak)
			if cur <= prev || atomic.CompareAndSwapInt32(&peak, prev, cur) {
				break
			}
		}
		<-gate
		atomic.AddInt32(&inflight, -1)
		return ""
	}

	r := NewResolver(&fakeStore{}, lookup, 30*time.Second)
	defer r.Close()

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		name := "Product " + string(rune('A'+i))
		r.Request(name, func(string) { wg.Done() })
	}

	// Let the workers pick up what they can, then open the gate.
	time.Sleep(200 * time.Millisecond)
	close(gate)

	done := make(chan struct{})
	go func() { wg.Wait(); close(done) }()
	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("not all lookups settled")
	}

	if got := atomic.LoadInt32(&peak); got > maxConcurrentLookups {
		t.Errorf("peak in-flight lookups = %d, want <= %d", got, maxConcurrentLookups)
	}
}

func TestLookupTimeout(t *testing.T) {
	lookup := func(ctx context.Context, name string) string {
		<-ctx.Done() // behave like a hung upstream honoring its context
		return ""
	}

	r := NewResolver(&fakeStore{}, lookup, 100*time.Millisecond)
	defer r.Close()

	start := time.Now()
	if url := waitDeliver(t, r, "Hung Product"); url != "" {
		t.Errorf("timed-out lookup delivered %q", url)
	}
	if elapsed := time.Since(start); elapsed > 3*time.Second {
		t.Errorf("timed-out lookup took %v", elapsed)
	}
}

func TestViewSingleAttemptPerMount(t *testing.T) {
	var calls int32
	r := NewResolver(&fakeStore{}, countingLookup(&calls, ""), time.Second)

	v := r.NewView()
	for i := 0; i < 5; i++ {
		v.Visible("Flapping Product", nil)
	}
	r.Close() // drains the queue

	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("repeated visibility triggered %d lookups, want 1", got)
	}
}

func TestViewDeliversOnlyRealReferences(t *testing.T) {
	var calls int32
	r := NewResolver(&fakeStore{}, countingLookup(&calls, ""), time.Second)

	var delivered bool
	v := r.NewView()
	v.Visible("Nothing Product", func(string) { delivered = true })
	r.Close()

	if delivered {
		t.Error("negative resolution reached the view consumer")
	}
}

func TestBrokenImageRetry(t *testing.T) {
	var calls int32
	var result atomic.Value
	result.Store("https://img/bad.jpg")
	lookup := func(ctx context.Context, name string) string {
		atomic.AddInt32(&calls, 1)
		return result.Load().(string)
	}

	r := NewResolver(&fakeStore{}, lookup, time.Second)
	defer r.Close()

	v := r.NewView()

	first := make(chan string, 1)
	v.Visible("Fragile Product", func(url string) { first <- url })
	if got := <-first; got != "https://img/bad.jpg" {
		t.Fatalf("first resolution = %q", got)
	}

	// The reference failed to render; the session entry is dropped and a
	// later visibility signal may retry.
	v.Broken("Fragile Product")
	result.Store("https://img/good.jpg")

	second := make(chan string, 1)
	v.Visible("Fragile Product", func(url string) { second <- url })
	select {
	case got := <-second:
		if got != "https://img/good.jpg" {
			t.Errorf("retry resolved %q", got)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("retry never settled")
	}

	if atomic.LoadInt32(&calls) != 2 {
		t.Errorf("lookup ran %d times, want 2", calls)
	}
}

func TestResolvedEntryImmutable(t *testing.T) {
	store := &fakeStore{initial: map[string]string{"Stable Product": "https://img/original.jpg"}}
	var calls int32
	r := NewResolver(store, countingLookup(&calls, "https://img/other.jpg"), time.Second)
	defer r.Close()

	// Even a direct queue pass cannot clobber an existing reference.
	if got := r.commit("Stable Product", "https://img/other.jpg"); got != "https://img/original.jpg" {
		t.Errorf("commit replaced an immutable entry: %q", got)
	}
}
