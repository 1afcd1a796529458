// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/executor.go
// Summary: UI-thread continuation queue plus background task group.
// Usage: Every mutation of panes, workspaces and windows runs on the goroutine
// that drains this executor. Background work posts its continuation back here.

package texel

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/sourcegraph/conc"
)

// Executor serialises continuations onto the UI goroutine. Defer may be
// called from any goroutine; RunUntilIdle must only be called from the UI
// goroutine.
type Executor struct {
	mu     sync.Mutex
	queue  []func()
	closed bool

	wake   chan struct{}
	ctx    context.Context
	cancel context.CancelFunc
	wg     conc.WaitGroup
}

// NewExecutor creates an idle executor.
func NewExecutor() *Executor {
	ctx, cancel := context.WithCancel(context.Background())
	return &Executor{
		wake:   make(chan struct{}, 1),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Defer queues fn to run on the UI goroutine during the next drain.
func (e *Executor) Defer(fn func()) {
	if fn == nil {
		return
	}
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.queue = append(e.queue, fn)
	e.mu.Unlock()

	select {
	case e.wake <- struct{}{}:
	default:
	}
}

// Wake fires whenever new continuations were queued.
func (e *Executor) Wake() <-chan struct{} {
	return e.wake
}

// Pending returns the number of queued continuations.
func (e *Executor) Pending() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.queue)
}

// RunUntilIdle drains the queue, including continuations queued while
// draining, and returns how many ran.
func (e *Executor) RunUntilIdle() int {
	ran := 0
	for {
		e.mu.Lock()
		batch := e.queue
		e.queue = nil
		e.mu.Unlock()
		if len(batch) == 0 {
			return ran
		}
		for _, fn := range batch {
			fn()
			ran++
		}
	}
}

// RunUntil drains the queue until t completes or the timeout elapses.
// It reports whether t completed. Tests and the shutdown path use it.
func (e *Executor) RunUntil(t *Task, timeout time.Duration) bool {
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	for {
		e.RunUntilIdle()
		if t.IsDone() {
			return true
		}
		select {
		case <-e.wake:
		case <-t.Done():
		case <-deadline.C:
			e.RunUntilIdle()
			return t.IsDone()
		}
	}
}

// Shutdown cancels background work, waits for it, and drops anything still
// queued. Continuations queued afterwards are ignored.
func (e *Executor) Shutdown() {
	e.cancel()
	e.wg.Wait()
	e.mu.Lock()
	e.closed = true
	e.queue = nil
	e.mu.Unlock()
}

// Spawn runs work on a background goroutine and posts then back onto the UI
// goroutine with the result. The returned task completes after then ran.
func Spawn[T any](e *Executor, work func(ctx context.Context) (T, error), then func(T, error)) *Task {
	task := NewTask()
	e.wg.Go(func() {
		result, err := work(e.ctx)
		e.Defer(func() {
			if then != nil {
				then(result, err)
			}
			task.Complete(err)
		})
	})
	return task
}

// Task is the handle of an asynchronous operation. It completes exactly once.
type Task struct {
	once sync.Once
	done chan struct{}
	err  error
}

// NewTask returns a pending task.
func NewTask() *Task {
	return &Task{done: make(chan struct{})}
}

// Ready returns a task that already completed with err.
func Ready(err error) *Task {
	t := NewTask()
	t.Complete(err)
	return t
}

// Complete resolves the task. Later calls are ignored.
func (t *Task) Complete(err error) {
	t.once.Do(func() {
		t.err = err
		close(t.done)
	})
}

// Done is closed when the task completes.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// IsDone reports completion without blocking.
func (t *Task) IsDone() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

// Err returns the completion error; nil while pending.
func (t *Task) Err() error {
	if !t.IsDone() {
		return nil
	}
	return t.err
}

// DetachAndLogErr drops the task, logging its error if it fails.
func (t *Task) DetachAndLogErr(what string) {
	go func() {
		<-t.done
		if t.err != nil {
			log.Printf("%s: %v", what, t.err)
		}
	}()
}
