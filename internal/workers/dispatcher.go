package workers

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-list-sync/internal/logger"
)

type job struct {
	fn   func()
	done chan error
}

// Dispatcher executes submitted functions one at a time, in submission
// order, on the goroutine that called Run. State owned by the dispatcher
// goroutine may be mutated from dispatched functions without further
// ordering concerns: no two of them ever overlap.
type Dispatcher struct {
	jobs     chan job
	stopped  chan struct{}
	stopOnce sync.Once

	logger *logger.Logger
}

func NewDispatcher(log *logger.Logger) *Dispatcher {
	return &Dispatcher{
		jobs:    make(chan job),
		stopped: make(chan struct{}),
		logger:  log,
	}
}

// Run processes dispatched functions until ctx is cancelled or Stop is called.
// It must be called exactly once.
func (d *Dispatcher) Run(ctx context.Context) {
	defer d.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-d.stopped:
			return
		case j := <-d.jobs:
			j.done <- d.execute(j.fn)
		}
	}
}

// Dispatch hands fn to the dispatcher goroutine and blocks until it has run.
// A panic inside fn is recovered and returned as an error. Dispatch must not
// be called from within a dispatched function.
func (d *Dispatcher) Dispatch(fn func()) error {
	j := job{fn: fn, done: make(chan error, 1)}

	select {
	case <-d.stopped:
		return ErrDispatcherStopped
	case d.jobs <- j:
	}

	return <-j.done
}

// Stop makes Run return and every later Dispatch fail with ErrDispatcherStopped.
func (d *Dispatcher) Stop() {
	d.stopOnce.Do(func() { close(d.stopped) })
}

func (d *Dispatcher) execute(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("dispatched function panicked: %v", r)
			d.logger.Error().Str("func", "*Dispatcher.execute").Interface("panic", r).Msg("recovered panic in dispatched function")
		}
	}()

	fn()
	return nil
}
