package workers

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-list-sync/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startDispatcher(t *testing.T) (*Dispatcher, context.CancelFunc) {
	t.Helper()
	d := NewDispatcher(logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		d.Run(ctx)
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return d, cancel
}

func TestDispatcher_RunsFunctionBeforeReturning(t *testing.T) {
	d, _ := startDispatcher(t)

	ran := false
	require.NoError(t, d.Dispatch(func() { ran = true }))

	assert.True(t, ran)
}

func TestDispatcher_PreservesOrderPerCaller(t *testing.T) {
	d, _ := startDispatcher(t)

	var got []int
	for i := range 10 {
		require.NoError(t, d.Dispatch(func() { got = append(got, i) }))
	}

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, got)
}

func TestDispatcher_SerializesConcurrentCallers(t *testing.T) {
	d, _ := startDispatcher(t)

	// counter is only touched from dispatched functions, so no lock is needed;
	// the race detector flags any overlap.
	counter := 0
	var wg sync.WaitGroup
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, d.Dispatch(func() { counter++ }))
		}()
	}
	wg.Wait()

	var final int
	require.NoError(t, d.Dispatch(func() { final = counter }))
	assert.Equal(t, 100, final)
}

func TestDispatcher_RecoversPanic(t *testing.T) {
	d, _ := startDispatcher(t)

	err := d.Dispatch(func() { panic("boom") })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")

	// still usable afterwards
	ran := false
	require.NoError(t, d.Dispatch(func() { ran = true }))
	assert.True(t, ran)
}

func TestDispatcher_StoppedAfterCancel(t *testing.T) {
	d := NewDispatcher(logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		d.Run(ctx)
		close(done)
	}()

	cancel()
	<-done

	assert.ErrorIs(t, d.Dispatch(func() {}), ErrDispatcherStopped)
}

func TestDispatcher_Stop(t *testing.T) {
	d, _ := startDispatcher(t)

	d.Stop()
	d.Stop()

	assert.ErrorIs(t, d.Dispatch(func() { t.Error("must not run") }), ErrDispatcherStopped)
}

func TestDispatcher_PendingDispatchReleasedOnStop(t *testing.T) {
	d := NewDispatcher(logger.Nop())

	errCh := make(chan error, 1)
	go func() { errCh <- d.Dispatch(func() {}) }()

	// Run was never started, so the dispatch is waiting
	select {
	case <-errCh:
		t.Fatal("Dispatch returned before Stop")
	case <-time.After(20 * time.Millisecond):
	}

	d.Stop()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, ErrDispatcherStopped)
	case <-time.After(time.Second):
		t.Fatal("Dispatch did not return after Stop")
	}
}
