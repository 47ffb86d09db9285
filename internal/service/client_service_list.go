package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-list-sync/internal/adapter"
	"github.com/MKhiriev/go-list-sync/internal/app"
	"github.com/MKhiriev/go-list-sync/internal/logger"
	"github.com/MKhiriev/go-list-sync/models"
)

type subscription struct {
	id int
	fn func(models.ListSnapshot)
}

type listController struct {
	repository adapter.RepositoryAdapter
	dispatcher Dispatcher

	// inflight is the single-flight guard. It leaves SyncStateIdle only via
	// CompareAndSwap in begin and returns to it in the final dispatched block.
	inflight atomic.Int32

	// mu guards records, index and status for readers outside the
	// dispatcher goroutine. Writers only run on the dispatcher.
	mu      sync.RWMutex
	records []models.EditableRecord
	index   map[string]int
	status  models.SyncStatus

	subMu     sync.Mutex
	subs      []subscription
	nextSubID int

	logger *logger.Logger
}

func NewListController(repository adapter.RepositoryAdapter, dispatcher Dispatcher, logger *logger.Logger) ListController {
	return &listController{
		repository: repository,
		dispatcher: dispatcher,
		index:      make(map[string]int),
		logger:     logger,
	}
}

func (c *listController) Load(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if err := c.begin(models.SyncStateLoading, nil); err != nil {
		return err
	}

	err := c.load(ctx)
	if err != nil {
		log.Err(err).Str("func", "*listController.Load").Msg("error loading list")
	}

	return c.finish(models.SyncStateLoading, err)
}

func (c *listController) Sync(ctx context.Context) error {
	log := logger.FromContext(ctx)

	var dirty []models.Entity
	err := c.begin(models.SyncStateSyncing, func() {
		for _, r := range c.records {
			if r.IsModified() {
				dirty = append(dirty, r.Model())
			}
		}
	})
	if err != nil {
		return err
	}

	log.Debug().Str("func", "*listController.Sync").
		Int("modified", len(dirty)).
		Msg("pushing modified records")

	for i, entity := range dirty {
		if _, err = c.repository.Upsert(ctx, entity); err != nil {
			syncErr := &SyncError{Pushed: i, Total: len(dirty), FailedID: entity.ID, Err: err}
			log.Err(err).Str("func", "*listController.Sync").
				Str("entity_id", entity.ID).
				Int("pushed", i).
				Int("total", len(dirty)).
				Msg("push stopped at first failed upsert")
			return c.finish(models.SyncStateSyncing, syncErr)
		}
	}

	if err = c.load(ctx); err != nil {
		log.Err(err).Str("func", "*listController.Sync").Msg("error refreshing list after push")
	}

	return c.finish(models.SyncStateSyncing, err)
}

func (c *listController) Edit(id string, fn func(r *models.EditableRecord)) error {
	var err error
	dispatchErr := c.mutate(func() {
		i, ok := c.index[id]
		if !ok {
			err = ErrRecordNotFound
			return
		}
		fn(&c.records[i])
	})
	if dispatchErr != nil {
		return dispatchErr
	}
	if err != nil {
		c.logger.Debug().Str("func", "*listController.Edit").Str("entity_id", id).Msg("record to edit is not in list")
	}

	return err
}

func (c *listController) Select(id string) error {
	var err error
	dispatchErr := c.mutate(func() {
		if id == "" {
			c.status.Selected = nil
			return
		}
		if _, ok := c.index[id]; !ok {
			err = ErrRecordNotFound
			return
		}
		c.status.Selected = &id
	})
	if dispatchErr != nil {
		return dispatchErr
	}

	return err
}

func (c *listController) Snapshot() models.ListSnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshotLocked()
}

func (c *listController) Records() []models.EditableRecord {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.records)
}

func (c *listController) Status() models.SyncStatus {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.status
}

func (c *listController) Subscribe(fn func(models.ListSnapshot)) func() {
	c.subMu.Lock()
	id := c.nextSubID
	c.nextSubID++
	c.subs = append(c.subs, subscription{id: id, fn: fn})
	c.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.subMu.Lock()
			defer c.subMu.Unlock()
			c.subs = slices.DeleteFunc(c.subs, func(s subscription) bool { return s.id == id })
		})
	}
}

// load fetches the collection and replaces the local copy in one block.
func (c *listController) load(ctx context.Context) error {
	entities, err := c.repository.GetAll(ctx)
	if err != nil {
		return err
	}
	if entities == nil {
		return adapter.ErrNullResult
	}

	records := make([]models.EditableRecord, 0, len(entities))
	index := make(map[string]int, len(entities))
	for _, e := range entities {
		if i, dup := index[e.ID]; dup {
			records[i] = models.NewEditableRecord(e)
			continue
		}
		index[e.ID] = len(records)
		records = append(records, models.NewEditableRecord(e))
	}

	return c.mutate(func() {
		c.records = records
		c.index = index
		if sel := c.status.Selected; sel != nil {
			if _, ok := index[*sel]; !ok {
				c.status.Selected = nil
			}
		}
	})
}

// begin claims the single-flight slot and publishes the new state. onBegin,
// if set, runs in the same block.
func (c *listController) begin(state models.SyncState, onBegin func()) error {
	if !c.inflight.CompareAndSwap(int32(models.SyncStateIdle), int32(state)) {
		return ErrOperationInProgress
	}

	err := c.mutate(func() {
		c.status.State = state
		c.status.IsLoading = true
		c.status.ErrorText = nil
		if onBegin != nil {
			onBegin()
		}
	})
	if err != nil {
		c.inflight.Store(int32(models.SyncStateIdle))
		return err
	}

	return nil
}

// finish returns to idle, recording opErr as the status error text.
func (c *listController) finish(state models.SyncState, opErr error) error {
	var text *string
	if opErr != nil {
		t := describeError(state, opErr)
		text = &t
	}

	err := c.mutate(func() {
		c.status.State = models.SyncStateIdle
		c.status.IsLoading = false
		c.status.ErrorText = text
		c.inflight.Store(int32(models.SyncStateIdle))
	})
	if err != nil {
		c.inflight.Store(int32(models.SyncStateIdle))
		return errors.Join(opErr, err)
	}

	return opErr
}

// mutate runs fn on the dispatcher under the write lock and then notifies
// subscribers with the resulting snapshot.
func (c *listController) mutate(fn func()) error {
	return c.dispatcher.Dispatch(func() {
		c.mu.Lock()
		fn()
		snapshot := c.snapshotLocked()
		c.mu.Unlock()

		c.notify(snapshot)
	})
}

func (c *listController) notify(snapshot models.ListSnapshot) {
	c.subMu.Lock()
	subs := slices.Clone(c.subs)
	c.subMu.Unlock()

	for _, s := range subs {
		s.fn(snapshot)
	}
}

func (c *listController) snapshotLocked() models.ListSnapshot {
	return models.ListSnapshot{
		Status:  c.status,
		Records: slices.Clone(c.records),
	}
}

// describeError renders an operation failure for the status line.
func describeError(state models.SyncState, err error) string {
	prefix := app.MsgLoadFailed
	if state == models.SyncStateSyncing {
		prefix = app.MsgSyncFailed
	}

	var syncErr *SyncError
	if errors.As(err, &syncErr) {
		return fmt.Sprintf("%s: pushed %d of %d: %s", prefix, syncErr.Pushed, syncErr.Total, reason(syncErr.Err))
	}

	return fmt.Sprintf("%s: %s", prefix, reason(err))
}

func reason(err error) string {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err.Error()
	case errors.Is(err, adapter.ErrTransport):
		return app.MsgServerUnreachable
	case errors.Is(err, adapter.ErrNullResult):
		return app.MsgServerReturnedNothing
	default:
		return err.Error()
	}
}
