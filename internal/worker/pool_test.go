package worker_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/codeswap/backend/internal/worker"
)

func TestPool_RunsSubmittedJobs(t *testing.T) {
	defer goleak.VerifyNone(t)

	p := worker.NewPool(1, 4)
	defer p.Close()

	done := make(chan struct{})
	require.True(t, p.TrySubmit(func(ctx context.Context) { close(done) }))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run")
	}
}

func TestPool_DropsWhenQueueFull(t *testing.T) {
	defer goleak.VerifyNone(t)

	p := worker.NewPool(1, 1)
	defer p.Close()

	started := make(chan struct{})
	release := make(chan struct{})
	require.True(t, p.TrySubmit(func(ctx context.Context) {
		close(started)
		<-release
	}))
	<-started

	var ran atomic.Int32
	assert.True(t, p.TrySubmit(func(ctx context.Context) { ran.Add(1) }), "one job fits in the queue")
	assert.False(t, p.TrySubmit(func(ctx context.Context) { ran.Add(1) }), "second pending job is dropped")

	close(release)
	require.Eventually(t, func() bool { return ran.Load() == 1 }, 2*time.Second, 5*time.Millisecond)
}

func TestPool_CloseCancelsRunningJob(t *testing.T) {
	defer goleak.VerifyNone(t)

	p := worker.NewPool(1, 0)

	started := make(chan struct{})
	cancelled := make(chan struct{})
	require.Eventually(t, func() bool {
		return p.TrySubmit(func(ctx context.Context) {
			close(started)
			<-ctx.Done()
			close(cancelled)
		})
	}, 2*time.Second, time.Millisecond)
	<-started

	p.Close()
	<-cancelled

	assert.False(t, p.TrySubmit(func(ctx context.Context) {}), "closed pool rejects jobs")
	p.Close()
}
