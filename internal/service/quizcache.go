// internal/service/quizcache.go
package service

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/codeswap/backend/internal/domain/quiz"
	"github.com/codeswap/backend/internal/generator"
	"github.com/codeswap/backend/internal/worker"
)

const (
	DefaultCacheTarget     = 5
	DefaultGenerateTimeout = 60 * time.Second
)

type QuizCacheConfig struct {
	Target          int
	GenerateTimeout time.Duration
}

type QuizCacheStats struct {
	Buffered  int  `json:"buffered"`
	Target    int  `json:"target"`
	Refilling bool `json:"refilling"`
}

// QuizCache keeps a small buffer of pre-generated quizzes so that a client
// never waits on the generator. Quizzes are served newest first.
//
// Refills are serialized: concurrent Refill calls share one pass through a
// singleflight group, and TriggerRefill feeds a single worker whose queue
// holds at most one pending pass. The buffer never grows past the target.
type QuizCache struct {
	gen     generator.Generator
	logger  *slog.Logger
	target  int
	timeout time.Duration

	mu  sync.Mutex
	buf []quiz.Quiz

	refill    singleflight.Group
	refilling atomic.Bool
	triggers  *worker.Pool

	// Refill passes run on ctx, which only Close cancels.
	ctx    context.Context
	cancel context.CancelFunc
	passMu sync.Mutex
	closed bool
	passes sync.WaitGroup
}

// NewQuizCache creates an empty cache. Call Start to schedule the initial
// fill and Close to stop background work.
func NewQuizCache(gen generator.Generator, cfg QuizCacheConfig, logger *slog.Logger) *QuizCache {
	if cfg.Target <= 0 {
		cfg.Target = DefaultCacheTarget
	}
	if cfg.GenerateTimeout <= 0 {
		cfg.GenerateTimeout = DefaultGenerateTimeout
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &QuizCache{
		ctx:      ctx,
		cancel:   cancel,
		gen:      gen,
		logger:   logger,
		target:   cfg.Target,
		timeout:  cfg.GenerateTimeout,
		buf:      make([]quiz.Quiz, 0, cfg.Target),
		triggers: worker.NewPool(1, 1),
	}
}

// Start schedules the process-start fill. Failures are only logged and the
// cache simply starts smaller.
func (c *QuizCache) Start() {
	c.logger.Info("scheduling initial quiz cache fill", "target", c.target)
	c.TriggerRefill()
}

// TryTake pops the most recently generated quiz. ok is false when the
// buffer is empty. Either way an asynchronous refill is scheduled, so an
// empty cache heals on the next request once generation works again.
func (c *QuizCache) TryTake() (q quiz.Quiz, ok bool) {
	c.mu.Lock()
	if n := len(c.buf); n > 0 {
		q = c.buf[n-1]
		c.buf[n-1] = nil
		c.buf = c.buf[:n-1]
		ok = true
	}
	c.mu.Unlock()

	c.TriggerRefill()
	return q, ok
}

// TriggerRefill schedules a refill without waiting for it. If a refill is
// already queued behind a running one, the trigger is dropped.
func (c *QuizCache) TriggerRefill() {
	if !c.triggers.TrySubmit(func(ctx context.Context) { c.Refill(ctx) }) {
		c.logger.Debug("quiz refill already pending")
	}
}

// Refill generates quizzes until the buffer reaches its target, stopping at
// the first generation failure. Concurrent callers share the same pass and
// all receive its count of added quizzes.
//
// The pass itself runs on the cache's lifetime, so a caller whose ctx ends
// stops waiting (and gets 0) without cutting the pass short for the others.
func (c *QuizCache) Refill(ctx context.Context) int {
	ch := c.refill.DoChan("refill", func() (any, error) {
		return c.runPass(), nil
	})
	select {
	case res := <-ch:
		return res.Val.(int)
	case <-ctx.Done():
		return 0
	}
}

func (c *QuizCache) runPass() int {
	c.passMu.Lock()
	if c.closed {
		c.passMu.Unlock()
		return 0
	}
	c.passes.Add(1)
	c.passMu.Unlock()
	defer c.passes.Done()

	c.refilling.Store(true)
	defer c.refilling.Store(false)
	return c.fill(c.ctx)
}

func (c *QuizCache) fill(ctx context.Context) int {
	added := 0
	for c.Size() < c.target {
		if ctx.Err() != nil {
			return added
		}

		q, err := c.generate(ctx)
		if err != nil {
			c.logger.Error("quiz generation failed during refill",
				"error", err,
				"added", added,
				"buffered", c.Size(),
			)
			return added
		}

		if !c.push(q) {
			return added
		}
		added++
	}

	if added > 0 {
		c.logger.Info("quiz cache refilled", "added", added, "buffered", c.Size())
	}
	return added
}

func (c *QuizCache) generate(ctx context.Context) (quiz.Quiz, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	q, err := c.gen.Generate(ctx)
	if err != nil {
		return nil, err
	}
	if err := q.Validate(); err != nil {
		return nil, &generator.GenerationError{Reason: "rejected malformed quiz", Wrapped: err}
	}
	return q, nil
}

func (c *QuizCache) push(q quiz.Quiz) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.buf) >= c.target {
		return false
	}
	c.buf = append(c.buf, q)
	return true
}

func (c *QuizCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.buf)
}

func (c *QuizCache) Target() int {
	return c.target
}

func (c *QuizCache) Stats() QuizCacheStats {
	return QuizCacheStats{
		Buffered:  c.Size(),
		Target:    c.target,
		Refilling: c.refilling.Load(),
	}
}

// Close cancels any in-flight refill, stops the trigger worker and waits
// for both to finish. Buffered quizzes stay available to TryTake.
func (c *QuizCache) Close() {
	c.passMu.Lock()
	c.closed = true
	c.passMu.Unlock()

	c.cancel()
	c.triggers.Close()
	c.passes.Wait()
}
