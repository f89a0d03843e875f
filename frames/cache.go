// Package frames serves cached, deduplicated frame sets per
// (book, chapter, config).
//
// The cache guarantees at-most-one concurrent frame generation per key:
// concurrent callers for the same key share one computation and observe
// the same result or the same failure. Generation itself runs on a single
// serialized worker so CPU-heavy work for different keys never contends
// with itself, while cache bookkeeping stays on a separate short-lived
// lock that is never held across generation.
package frames

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/readpace/rsvp"
	icache "github.com/readpace/rsvp/internal/cache"
	"github.com/readpace/rsvp/internal/worker"
	"github.com/readpace/rsvp/token"
)

// DefaultMaxEntries bounds the cache to a handful of chapters: the one on
// screen, its neighbors, and a few recent configs.
const DefaultMaxEntries = 6

// Key identifies one cached or in-flight computation. Keys are values:
// created per request, never mutated, compared by field equality. The
// config fingerprint covers every pacing option, so differing settings
// never collide.
type Key struct {
	BookID  string
	Chapter int
	Config  uint64
}

// TokenSource supplies chapter tokens. Implementations may be slow (disk,
// database); the cache only calls them inside the serialized generation
// path, never under its lock.
type TokenSource interface {
	Tokens(ctx context.Context, bookID string, chapterIndex int) ([]token.Token, error)
}

// call is one in-flight computation. The first caller for a key creates
// it; everyone else attaches to done. set and err are written exactly once
// before done is closed.
type call struct {
	key    Key
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}

	set *rsvp.FrameSet
	err error
}

// Option configures a Cache.
type Option func(*config)

type config struct {
	maxEntries int
	queueDepth int
}

func defaultCacheConfig() config {
	return config{
		maxEntries: DefaultMaxEntries,
		queueDepth: worker.DefaultQueueDepth,
	}
}

// WithMaxEntries sets the cached frame-set bound. Values <= 0 keep the
// default.
func WithMaxEntries(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxEntries = n
		}
	}
}

// WithQueueDepth sets the generation queue buffer.
func WithQueueDepth(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.queueDepth = n
		}
	}
}

// Cache memoizes frame sets and coalesces concurrent generation requests.
//
// All shared state (the LRU map and the in-flight registry) sits behind a
// single mutex held only for map operations. Cache is safe for concurrent
// use.
type Cache struct {
	source TokenSource
	engine rsvp.Engine

	mu       sync.Mutex
	entries  *icache.LRUMap[Key, *rsvp.FrameSet]
	inflight map[Key]*call

	gen *worker.Serial

	// Statistics (atomic for lock-free reads)
	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// New creates a frame cache over the given token source and engine.
// Both must be non-nil.
func New(source TokenSource, engine rsvp.Engine, opts ...Option) *Cache {
	cfg := defaultCacheConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Cache{
		source:   source,
		engine:   engine,
		entries:  icache.New[Key, *rsvp.FrameSet](cfg.maxEntries),
		inflight: make(map[Key]*call),
		gen:      worker.NewSerial(cfg.queueDepth),
	}
}

// GetFrames returns the frame set for (bookID, chapterIndex, cfg),
// computing it at most once per key no matter how many callers arrive
// concurrently. It blocks until the result is available or ctx is done.
//
// The returned set is owned by the cache; callers must treat it as
// read-only. Failures are propagated and never cached: a retry triggers a
// fresh computation.
func (c *Cache) GetFrames(ctx context.Context, bookID string, chapterIndex int, cfg rsvp.Config) (*rsvp.FrameSet, error) {
	key := Key{BookID: bookID, Chapter: chapterIndex, Config: cfg.Fingerprint()}

	c.mu.Lock()
	if set, ok := c.entries.Get(key); ok {
		c.hits.Add(1)
		c.mu.Unlock()
		return set, nil
	}
	c.misses.Add(1)
	cl, ok := c.inflight[key]
	start := false
	if !ok {
		cl = c.registerLocked(key)
		start = true
	}
	c.mu.Unlock()

	// Submit outside the lock: the queue may be full.
	if start {
		c.gen.Submit(func() { c.run(cl, cfg) })
	}

	select {
	case <-cl.done:
		return cl.set, cl.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Prefetch starts the same dedup/compute path as GetFrames without
// waiting. The result appears in the cache when ready; failures are
// logged and swallowed, never surfaced to the caller.
func (c *Cache) Prefetch(bookID string, chapterIndex int, cfg rsvp.Config) {
	key := Key{BookID: bookID, Chapter: chapterIndex, Config: cfg.Fingerprint()}

	c.mu.Lock()
	if _, ok := c.entries.Get(key); ok {
		c.mu.Unlock()
		return
	}
	if _, ok := c.inflight[key]; ok {
		c.mu.Unlock()
		return
	}
	cl := c.registerLocked(key)
	c.mu.Unlock()

	c.gen.Submit(func() {
		c.run(cl, cfg)
		if cl.err != nil {
			rsvp.Logger().Warn("frames: prefetch discarded failure",
				"book", key.BookID, "chapter", key.Chapter, "err", cl.err)
		}
	})
}

// Clear evicts all cached entries and cancels the in-flight computations
// it can see. Best-effort by contract: if the lock is contended, Clear
// returns immediately without doing anything, so it never blocks the
// caller. A cancelled computation still releases its in-flight
// registration through the normal completion path.
func (c *Cache) Clear() {
	if !c.mu.TryLock() {
		return
	}
	for _, cl := range c.inflight {
		cl.cancel()
	}
	c.entries.Clear()
	c.mu.Unlock()
}

// Close shuts down the generation worker after draining queued work.
// In-flight callers still receive their results.
func (c *Cache) Close() {
	c.gen.Close()
}

// Len returns the number of cached frame sets.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries.Len()
}

// Stats reports cache counters.
type Stats struct {
	Len       int
	Max       int
	Hits      uint64
	Misses    uint64
	Evictions uint64
	HitRate   float64
}

// CacheStats returns current statistics. Mostly lock-free (atomic
// counters).
func (c *Cache) CacheStats() Stats {
	hits := c.hits.Load()
	misses := c.misses.Load()

	var rate float64
	if total := hits + misses; total > 0 {
		rate = float64(hits) / float64(total)
	}

	c.mu.Lock()
	n, bound := c.entries.Len(), c.entries.Max()
	c.mu.Unlock()

	return Stats{
		Len:       n,
		Max:       bound,
		Hits:      hits,
		Misses:    misses,
		Evictions: c.evictions.Load(),
		HitRate:   rate,
	}
}

// registerLocked creates and registers a new in-flight call. The call's
// context is detached from any single caller: every waiter for the key
// shares the computation, and only Clear cancels it.
func (c *Cache) registerLocked(key Key) *call {
	ctx, cancel := context.WithCancel(context.Background())
	cl := &call{
		key:    key,
		ctx:    ctx,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	c.inflight[key] = cl
	return cl
}

// run executes one computation on the serialized worker and publishes its
// outcome: result into the cache on success, in-flight entry released
// either way, waiters woken last.
func (c *Cache) run(cl *call, cfg rsvp.Config) {
	cl.set, cl.err = c.generate(cl.ctx, cl.key, cfg)

	c.mu.Lock()
	if c.inflight[cl.key] == cl {
		delete(c.inflight, cl.key)
	}
	if cl.err == nil {
		if old, evicted := c.entries.Set(cl.key, cl.set); evicted {
			c.evictions.Add(1)
			rsvp.Logger().Debug("frames: evicted least recently used entry",
				"book", old.BookID, "chapter", old.Chapter)
		}
	}
	c.mu.Unlock()

	cl.cancel()
	close(cl.done)
}

// generate runs the slow path: token retrieval plus engine invocation.
// Never called under the cache lock. A panic in either stage is isolated
// to this key's waiters; sibling and future computations are unaffected.
func (c *Cache) generate(ctx context.Context, key Key, cfg rsvp.Config) (set *rsvp.FrameSet, err error) {
	defer func() {
		if r := recover(); r != nil {
			set = nil
			err = fmt.Errorf("frames: generation panic for %s#%d: %v", key.BookID, key.Chapter, r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	toks, err := c.source.Tokens(ctx, key.BookID, key.Chapter)
	if err != nil {
		return nil, fmt.Errorf("frames: token source: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fr, err := c.engine.GenerateFrames(toks, 0, cfg)
	if err != nil {
		return nil, err
	}

	rsvp.Logger().Debug("frames: generated",
		"book", key.BookID, "chapter", key.Chapter, "frames", len(fr))

	return &rsvp.FrameSet{Frames: fr, BaseTempoMs: c.engine.BaseTempoMs(cfg)}, nil
}
