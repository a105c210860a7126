// Package store holds the client-side state containers of the burger
// application: the ingredient catalog, the builder, the order lifecycle,
// the public feed and the user session.
//
// Every container owns a single state value and changes it only through a
// pure reducer (state, event) -> state. Asynchronous operations dispatch a
// pending event before returning and a settled event when the collaborator
// call finishes.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/FindTheRhythm/stellar-burgers/internal/domain/model"
	"github.com/FindTheRhythm/stellar-burgers/internal/logger"
	"github.com/FindTheRhythm/stellar-burgers/internal/metrics"
)

// Phase is the lifecycle phase of an asynchronous operation.
type Phase int

const (
	// PhasePending is dispatched when the operation starts.
	PhasePending Phase = iota
	// PhaseSucceeded carries the operation payload.
	PhaseSucceeded
	// PhaseFailed carries the normalized request error.
	PhaseFailed
)

// String returns the metric label of the phase.
func (p Phase) String() string {
	switch p {
	case PhasePending:
		return "pending"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is one lifecycle step of an asynchronous call.
type Result[T any] struct {
	Phase   Phase
	Payload T
	Err     *model.RequestError
}

// Pending returns the start-of-call result.
func Pending[T any]() Result[T] {
	return Result[T]{Phase: PhasePending}
}

// Succeeded returns a result carrying payload.
func Succeeded[T any](payload T) Result[T] {
	return Result[T]{Phase: PhaseSucceeded, Payload: payload}
}

// Failed returns a result carrying err.
func Failed[T any](err *model.RequestError) Result[T] {
	return Result[T]{Phase: PhaseFailed, Err: err}
}

// Task is the handle of an in-flight asynchronous operation.
type Task struct {
	done chan struct{}
	err  error
}

func newTask() *Task {
	return &Task{done: make(chan struct{})}
}

func (t *Task) settle(err *model.RequestError) {
	if err != nil {
		t.err = err
	}
	close(t.done)
}

// Done is closed once the settled event has been applied.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Err returns the normalized failure of a settled task, or nil.
func (t *Task) Err() error {
	select {
	case <-t.done:
		return t.err
	default:
		return nil
	}
}

// Wait blocks until the task settles or ctx is done. Giving up on the wait
// does not cancel the operation.
func (t *Task) Wait(ctx context.Context) error {
	select {
	case <-t.done:
		return t.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// container serializes events against a single state value. Reducers never
// mutate their input, so a state handed out by State is safe to keep.
type container[S any, E any] struct {
	name   string
	reduce func(S, E) S
	log    zerolog.Logger

	mu     sync.Mutex
	state  S
	subs   map[int]func(S)
	nextID int
}

func newContainer[S any, E any](name string, initial S, reduce func(S, E) S) *container[S, E] {
	return &container[S, E]{
		name:   name,
		reduce: reduce,
		log:    logger.WithComponent("store." + name),
		state:  initial,
		subs:   make(map[int]func(S)),
	}
}

// State returns the current snapshot.
func (c *container[S, E]) State() S {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Subscribe registers fn to receive every new snapshot. Listeners run while
// the container is locked and must not dispatch into the same container.
func (c *container[S, E]) Subscribe(fn func(S)) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.subs[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}

func (c *container[S, E]) dispatch(e E) S {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = c.reduce(c.state, e)
	for _, fn := range c.subs {
		fn(c.state)
	}
	return c.state
}

// runAsync dispatches the pending event, then runs call in the background
// and dispatches its settled result. The call outlives ctx cancellation.
func runAsync[S any, E any, T any](
	ctx context.Context,
	c *container[S, E],
	operation string,
	event func(Result[T]) E,
	call func(context.Context) (T, error),
) *Task {
	task := newTask()
	c.dispatch(event(Pending[T]()))
	metrics.RecordStoreEvent(c.name, operation, PhasePending.String())

	callCtx := context.WithoutCancel(ctx)
	log := logger.Ctx(ctx, c.log)
	go func() {
		start := time.Now()
		payload, err := call(callCtx)
		duration := time.Since(start)

		if err != nil {
			reqErr := model.NormalizeError(err)
			c.dispatch(event(Failed[T](reqErr)))
			metrics.RecordStoreSettle(c.name, operation, PhaseFailed.String(), duration)
			log.Warn().
				Str("operation", operation).
				Str("error_name", reqErr.Name).
				Str("error", reqErr.Message).
				Dur("duration", duration).
				Msg("Operation failed")
			task.settle(reqErr)
			return
		}

		c.dispatch(event(Succeeded(payload)))
		metrics.RecordStoreSettle(c.name, operation, PhaseSucceeded.String(), duration)
		log.Debug().
			Str("operation", operation).
			Dur("duration", duration).
			Msg("Operation succeeded")
		task.settle(nil)
	}()

	return task
}
