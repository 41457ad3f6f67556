// worker/pool.go
package worker

import (
	"context"
	"sync"
)

// Job is a unit of background work. ctx is cancelled when the pool closes.
type Job func(ctx context.Context)

// Pool runs jobs on a fixed number of goroutines fed by a bounded queue.
// Submissions never block: when the queue is full the job is dropped.
type Pool struct {
	jobs   chan Job
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

func NewPool(workerCount int, queueSize int) *Pool {
	if workerCount < 1 {
		workerCount = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}

	ctx, cancel := context.WithCancel(context.Background())
	p := &Pool{
		jobs:   make(chan Job, queueSize),
		ctx:    ctx,
		cancel: cancel,
	}

	p.wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for job := range p.jobs {
		if p.ctx.Err() != nil {
			continue
		}
		job(p.ctx)
	}
}

// TrySubmit queues fn and reports whether it was accepted. It returns false
// when the queue is full or the pool is closed.
func (p *Pool) TrySubmit(fn Job) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return false
	}

	select {
	case p.jobs <- fn:
		return true
	default:
		return false
	}
}

// Close cancels running jobs, discards queued ones and waits for the
// workers to exit. It is safe to call more than once.
func (p *Pool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	p.cancel()
	close(p.jobs)
	p.mu.Unlock()

	p.wg.Wait()
}
