// Package images resolves display images for products through a tiered
// strategy chain: keyword-matched photos and deterministic placeholder
// cards at catalog-generation time, and a lazy, cached, concurrency-
// limited live lookup for products that actually reach the screen.
package images

import (
	"context"
	"sync"
	"time"
)

const (
	// maxConcurrentLookups bounds simultaneous in-flight live lookups.
	maxConcurrentLookups = 3
	// taskQueueSize is the admission queue depth. Requests are served
	// in arrival order.
	taskQueueSize = 256
)

// Store is the durable port for the image cache: a single name-keyed
// blob, read once at startup and rewritten in full on every update.
type Store interface {
	Load() (map[string]string, error)
	Save(map[string]string) error
}

// LookupFunc is the live strategy. It must resolve to "" on any failure
// rather than returning an error; the pipeline treats every miss the
// same way.
type LookupFunc func(ctx context.Context, productName string) string

type entry struct {
	url string // "" records a lookup that resolved to nothing
}

type task struct {
	name    string
	deliver func(url string)
}

// Resolver is the process-wide image resolution pipeline, shared by all
// product-image consumers. Lookups are admitted FIFO through a queue
// drained by a fixed pool of workers, so at most three are ever in
// flight. Results, including negative ones, are written back to the
// cache before any consumer sees them.
//
// The mutex guards the map only, not the whole check-fetch-write span:
// two views resolving the identical product name may both miss and both
// hit the network. That duplicate work is accepted; the values are
// identical and the last write wins.
type Resolver struct {
	mu      sync.Mutex
	entries map[string]entry

	store   Store
	lookup  LookupFunc
	timeout time.Duration

	tasks chan task
	wg    sync.WaitGroup
}

// NewResolver loads the persisted cache (a corrupt or missing blob is
// silently treated as empty) and starts the lookup workers.
func NewResolver(store Store, lookup LookupFunc, timeout time.Duration) *Resolver {
	if timeout <= 0 {
		timeout = DefaultLookupTimeout
	}
	r := &Resolver{
		entries: make(map[string]entry),
		store:   store,
		lookup:  lookup,
		timeout: timeout,
		tasks:   make(chan task, taskQueueSize),
	}

	if store != nil {
		if saved, err := store.Load(); err == nil {
			for name, url := range saved {
				r.entries[name] = entry{url: url}
			}
		}
	}

	for i := 0; i < maxConcurrentLookups; i++ {
		r.wg.Add(1)
		go r.worker()
	}
	return r
}

// Close stops accepting requests and waits for in-flight lookups to
// finish. Queued tasks are drained, not abandoned.
func (r *Resolver) Close() {
	close(r.tasks)
	r.wg.Wait()
}

// Cached reports the cache entry for a product name. The second return
// distinguishes "resolved to nothing" (ok with empty url) from "never
// attempted".
func (r *Resolver) Cached(productName string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[productName]
	return e.url, ok
}

// Request resolves an image for a product name. A cache hit, including
// a cached negative, short-circuits with no network call and deliver
// runs synchronously with the cached value. On a miss the request joins
// the FIFO queue and deliver runs from a worker once the lookup
// settles. deliver always fires exactly once; an empty url means the
// name resolved to nothing and the placeholder card stays up.
func (r *Resolver) Request(productName string, deliver func(url string)) {
	if url, ok := r.Cached(productName); ok {
		if deliver != nil {
			deliver(url)
		}
		return
	}
	r.tasks <- task{name: productName, deliver: deliver}
}

// Forget drops the in-memory entry for a name so a later view can retry
// it this session. The persisted blob is left alone; it is only
// rewritten when some lookup next settles.
func (r *Resolver) Forget(productName string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, productName)
}

func (r *Resolver) worker() {
	defer r.wg.Done()
	for t := range r.tasks {
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		url := r.lookup(ctx, t.name)
		cancel()

		url = r.commit(t.name, url)
		if t.deliver != nil {
			t.deliver(url)
		}
	}
}

// commit writes the lookup result back and persists the cache. An
// existing non-empty entry is immutable for the rest of the process, so
// a racing duplicate lookup cannot clobber it; commit returns the entry
// that actually stuck. Only successfully resolved references are
// persisted, matching the session cache's negative entries being
// retryable after a restart.
func (r *Resolver) commit(productName, url string) string {
	r.mu.Lock()
	if existing, ok := r.entries[productName]; ok && existing.url != "" {
		url = existing.url
	} else {
		r.entries[productName] = entry{url: url}
	}

	var snapshot map[string]string
	if r.store != nil {
		snapshot = make(map[string]string, len(r.entries))
		for name, e := range r.entries {
			if e.url != "" {
				snapshot[name] = e.url
			}
		}
	}
	r.mu.Unlock()

	if snapshot != nil {
		// Whole-blob rewrite, last writer wins. Errors degrade to a
		// session-only cache.
		_ = r.store.Save(snapshot)
	}
	return url
}

// View tracks which names one consumer (one mounted grid or detail
// page) has already tried, so repeated visibility flapping enqueues at
// most one lookup per product per mount.
type View struct {
	r         *Resolver
	mu        sync.Mutex
	attempted map[string]bool
}

// NewView creates a per-mount handle onto the shared resolver.
func (r *Resolver) NewView() *View {
	return &View{r: r, attempted: make(map[string]bool)}
}

// Visible is the visibility signal from the presentation layer. The
// first call for a name goes through Request; later calls are no-ops.
// deliver fires only when a real reference resolves, so the consumer
// can fade the photo in over its placeholder and otherwise leave the
// card alone.
func (v *View) Visible(productName string, deliver func(url string)) {
	v.mu.Lock()
	if v.attempted[productName] {
		v.mu.Unlock()
		return
	}
	v.attempted[productName] = true
	v.mu.Unlock()

	v.r.Request(productName, func(url string) {
		if url != "" && deliver != nil {
			deliver(url)
		}
	})
}

// Broken reports that a resolved reference failed to render. The view
// clears its attempt flag and the resolver forgets the session entry,
// so a later visibility signal may retry instead of being stuck on a
// bad URL.
func (v *View) Broken(productName string) {
	v.mu.Lock()
	delete(v.attempted, productName)
	v.mu.Unlock()

	v.r.Forget(productName)
}
