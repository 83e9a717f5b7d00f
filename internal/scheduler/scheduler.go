// Package scheduler periodically drives notification dispatch.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"
)

// BatchProcessor is the work the scheduler triggers on every tick.
type BatchProcessor interface {
	ProcessBatch(ctx context.Context) error
}

// SchedulerService is the control surface exposed to handlers and main.
// Start/Stop are synchronous: they return once the loop has acknowledged
// the change. IsRunning reports whether ticks are being accepted.
type SchedulerService interface {
	Start() error
	Stop() error
	// RunNow triggers one batch immediately, even when stopped.
	// It returns ErrBatchInProgress if a batch is already running.
	RunNow() error
	IsRunning() bool
}

const (
	// DefaultInterval is used when no interval is configured.
	DefaultInterval = 2 * time.Minute
	// DefaultBatchTimeout is how long one batch may run before its
	// context is cancelled.
	DefaultBatchTimeout = 30 * time.Second

	// controlTimeout bounds how long a caller waits for the loop to answer.
	controlTimeout = 2 * time.Second
)

var (
	// ErrNotResponding means the control loop did not accept or acknowledge a command.
	ErrNotResponding = errors.New("scheduler: control loop not responding")
	// ErrBatchInProgress is returned by RunNow while another batch runs.
	ErrBatchInProgress = errors.New("scheduler: batch already in progress")
)

// controlOp is the kind of command sent into the control loop.
type controlOp int

const (
	opStart controlOp = iota
	opStop
	opStatus
	opRunNow
)

func (o controlOp) String() string {
	switch o {
	case opStart:
		return "Start"
	case opStop:
		return "Stop"
	case opStatus:
		return "Status"
	case opRunNow:
		return "RunNow"
	default:
		return "Unknown"
	}
}

// controlMsg drives the loop's state. resp carries the synchronous answer.
type controlMsg struct {
	op   controlOp
	resp chan bool
}

// schedulerService keeps all mutable state inside the loop goroutine.
type schedulerService struct {
	processor    BatchProcessor
	interval     time.Duration
	batchTimeout time.Duration
	ctrl         chan controlMsg
	batchDone    chan error // result of the in-flight batch
}

// NewSchedulerService starts the control loop. Non-positive durations
// fall back to DefaultInterval and DefaultBatchTimeout. The scheduler
// starts stopped.
func NewSchedulerService(processor BatchProcessor, interval, batchTimeout time.Duration) SchedulerService {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if batchTimeout <= 0 {
		batchTimeout = DefaultBatchTimeout
	}

	s := &schedulerService{
		processor:    processor,
		interval:     interval,
		batchTimeout: batchTimeout,
		ctrl:         make(chan controlMsg),
		batchDone:    make(chan error, 1),
	}

	// The control loop lives for the lifetime of the process.
	go s.loop()

	return s
}

// send delivers a command and waits for the loop's answer.
// Stop may wait up to the batch timeout for an in-flight batch.
func (s *schedulerService) send(op controlOp) (bool, error) {
	resp := make(chan bool, 1)

	// First: make sure the loop is listening on ctrl.
	select {
	case s.ctrl <- controlMsg{op: op, resp: resp}:
	case <-time.After(controlTimeout):
		return false, fmt.Errorf("%s: %w", op, ErrNotResponding)
	}

	// Then: wait for the acknowledgement. A Stop issued mid-batch is only
	// answered once the batch is done, so give it the batch timeout as well.
	wait := controlTimeout
	if op == opStop {
		wait += s.batchTimeout
	}

	select {
	case ok := <-resp:
		return ok, nil
	case <-time.After(wait):
		return false, fmt.Errorf("%s: acknowledgement timeout: %w", op, ErrNotResponding)
	}
}

// Start tells the scheduler to begin processing ticks.
func (s *schedulerService) Start() error {
	_, err := s.send(opStart)
	return err
}

// Stop stops accepting ticks. If a batch is running, Stop returns once it finishes.
func (s *schedulerService) Stop() error {
	_, err := s.send(opStop)
	return err
}

// RunNow asks the loop for an immediate batch. The loop refuses while
// another batch is still running.
func (s *schedulerService) RunNow() error {
	accepted, err := s.send(opRunNow)
	if err != nil {
		return err
	}
	if !accepted {
		return ErrBatchInProgress
	}
	return nil
}

// IsRunning reports whether ticks are being processed, not whether a
// batch is executing right now.
func (s *schedulerService) IsRunning() bool {
	running, err := s.send(opStatus)
	return err == nil && running
}

// runBatch executes one batch in its own goroutine so the loop keeps
// answering control messages meanwhile.
func (s *schedulerService) runBatch() {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.batchTimeout)
		defer cancel()
		s.batchDone <- s.processor.ProcessBatch(ctx)
	}()
}

// loop owns running/inBatch and is the only goroutine that touches them.
//
// Flow:
//   - ctrl messages flip the running flag, answer status, or trigger a batch.
//   - A tick starts a batch only while running and idle.
//   - batchDone clears inBatch and releases any Stop callers waiting on it.
func (s *schedulerService) loop() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	running := false
	inBatch := false

	// Stop callers waiting for the in-flight batch.
	var pendingStops []chan bool

	for {
		select {
		case msg := <-s.ctrl:
			switch msg.op {
			case opStart:
				if !running {
					log.Printf("[Scheduler] Started (interval=%s, batchTimeout=%s)", s.interval, s.batchTimeout)
				}
				running = true
				msg.resp <- true

			case opStop:
				if running {
					log.Println("[Scheduler] Stop requested.")
				}
				running = false
				if inBatch {
					log.Println("[Scheduler] Waiting for current batch...")
					pendingStops = append(pendingStops, msg.resp)
				} else {
					msg.resp <- true
				}

			case opStatus:
				msg.resp <- running

			case opRunNow:
				if inBatch {
					msg.resp <- false
					continue
				}
				log.Println("[Scheduler] Manual batch triggered.")
				inBatch = true
				s.runBatch()
				msg.resp <- true
			}

		case <-ticker.C:
			// Skip ticks while stopped, and never overlap batches.
			if !running || inBatch {
				continue
			}
			log.Println("[Scheduler] Triggering batch...")
			inBatch = true
			s.runBatch()

		case err := <-s.batchDone:
			inBatch = false
			if err != nil {
				log.Printf("[Scheduler] Batch failed: %v", err)
			} else {
				log.Println("[Scheduler] Batch completed.")
			}

			for _, resp := range pendingStops {
				resp <- true
			}
			if len(pendingStops) > 0 {
				log.Println("[Scheduler] Stopped.")
			}
			pendingStops = nil
		}
	}
}
