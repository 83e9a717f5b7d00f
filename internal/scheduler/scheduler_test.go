package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBatchProcessor counts calls, signals each start and blocks until released.
type fakeBatchProcessor struct {
	calls   int32
	started chan struct{}
	block   chan struct{}
}

func newFakeBatchProcessor() *fakeBatchProcessor {
	return &fakeBatchProcessor{
		started: make(chan struct{}, 16),
		block:   make(chan struct{}),
	}
}

func (f *fakeBatchProcessor) ProcessBatch(ctx context.Context) error {
	atomic.AddInt32(&f.calls, 1)

	select {
	case f.started <- struct{}{}:
	default:
	}

	select {
	case <-f.block:
	case <-ctx.Done():
	}
	return nil
}

func (f *fakeBatchProcessor) waitStarted(t *testing.T) {
	t.Helper()
	select {
	case <-f.started:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("ProcessBatch was not called in time")
	}
}

func TestScheduler_StartsStopped(t *testing.T) {
	fake := newFakeBatchProcessor()
	s := NewSchedulerService(fake, 5*time.Millisecond, time.Second)

	time.Sleep(30 * time.Millisecond)

	assert.False(t, s.IsRunning())
	assert.Zero(t, atomic.LoadInt32(&fake.calls))
}

func TestScheduler_StartTriggersBatch(t *testing.T) {
	fake := newFakeBatchProcessor()
	s := NewSchedulerService(fake, 10*time.Millisecond, 2*time.Second)

	require.NoError(t, s.Start())
	fake.waitStarted(t)
	assert.True(t, s.IsRunning())

	close(fake.block)
	require.NoError(t, s.Stop())
}

func TestScheduler_StopWaitsForBatchCompletion(t *testing.T) {
	fake := newFakeBatchProcessor()
	s := NewSchedulerService(fake, 5*time.Millisecond, 2*time.Second)

	require.NoError(t, s.Start())
	fake.waitStarted(t)

	done := make(chan struct{})
	go func() {
		_ = s.Stop()
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("Stop() returned before batch finished")
	case <-time.After(50 * time.Millisecond):
	}

	// The loop still answers while Stop is pending.
	assert.False(t, s.IsRunning())

	close(fake.block)

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("Stop() did not return after batch completion")
	}
}

func TestScheduler_RunNow(t *testing.T) {
	fake := newFakeBatchProcessor()
	s := NewSchedulerService(fake, time.Hour, 2*time.Second)

	require.NoError(t, s.RunNow())
	fake.waitStarted(t)

	assert.ErrorIs(t, s.RunNow(), ErrBatchInProgress)
	assert.False(t, s.IsRunning(), "manual run does not start the ticker")

	close(fake.block)
	require.Eventually(t, func() bool { return s.RunNow() == nil }, time.Second, 10*time.Millisecond)
}

func TestScheduler_StartStopStartFlow(t *testing.T) {
	fake := newFakeBatchProcessor()
	close(fake.block)
	s := NewSchedulerService(fake, 10*time.Millisecond, 2*time.Second)

	require.NoError(t, s.Start())
	fake.waitStarted(t)

	require.NoError(t, s.Stop())
	assert.False(t, s.IsRunning())

	// Drain starts that raced with Stop.
	for len(fake.started) > 0 {
		<-fake.started
	}

	require.NoError(t, s.Start())
	assert.True(t, s.IsRunning())
	fake.waitStarted(t)
}

func TestScheduler_RaceStartStop(t *testing.T) {
	fake := newFakeBatchProcessor()
	s := NewSchedulerService(fake, 5*time.Millisecond, 50*time.Millisecond)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = s.Start()
		}()
		go func() {
			defer wg.Done()
			_ = s.Stop()
		}()
	}
	wg.Wait()
}

func TestControlOpString(t *testing.T) {
	assert.Equal(t, "RunNow", opRunNow.String())
	assert.Equal(t, "Unknown", controlOp(42).String())
}
