package store

import (
	"context"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/MKhiriev/go-list-sync/internal/logger"
	"github.com/MKhiriev/go-list-sync/models"
)

// cachedEntityRepository decorates an [EntityRepository] with an LRU cache
// for GetByID. Every entity read or written through it refreshes its cache
// entry, so a cached entity is never older than the last write made through
// this process.
//
// A read only fills the cache when no Upsert finished while it was in
// flight. Otherwise a slow read would put back a row that a concurrent
// Upsert has already replaced.
type cachedEntityRepository struct {
	next  EntityRepository
	cache *lru.Cache[string, models.Entity]

	mu     sync.Mutex
	writes uint64 // bumped by every Upsert, guarded by mu
}

// NewCachedEntityRepository wraps next with an LRU of the given size.
// A size of zero returns next unchanged.
func NewCachedEntityRepository(next EntityRepository, size int) (EntityRepository, error) {
	if size == 0 {
		return next, nil
	}

	cache, err := lru.New[string, models.Entity](size)
	if err != nil {
		return nil, err
	}

	return &cachedEntityRepository{next: next, cache: cache}, nil
}

func (c *cachedEntityRepository) GetAll(ctx context.Context) ([]models.Entity, error) {
	seen := c.writeSeq()
	entities, err := c.next.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	c.remember(seen, entities...)
	return entities, nil
}

func (c *cachedEntityRepository) GetByID(ctx context.Context, id string) (models.Entity, error) {
	if entity, ok := c.cache.Get(id); ok {
		CacheLookups.WithLabelValues("hit").Inc()
		logger.FromContext(ctx).Debug().
			Str("func", "cachedEntityRepository.GetByID").
			Str("entity_id", id).
			Msg("cache hit")
		return entity, nil
	}
	CacheLookups.WithLabelValues("miss").Inc()

	seen := c.writeSeq()
	entity, err := c.next.GetByID(ctx, id)
	if err != nil {
		return models.Entity{}, err
	}
	c.remember(seen, entity)
	return entity, nil
}

func (c *cachedEntityRepository) Search(ctx context.Context, prefix string) ([]models.Entity, error) {
	seen := c.writeSeq()
	entities, err := c.next.Search(ctx, prefix)
	if err != nil {
		return nil, err
	}
	c.remember(seen, entities...)
	return entities, nil
}

func (c *cachedEntityRepository) Upsert(ctx context.Context, entity models.Entity) (models.Entity, error) {
	stored, err := c.next.Upsert(ctx, entity)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.writes++

	if err != nil {
		// the row may or may not have been written
		c.cache.Remove(entity.ID)
		return models.Entity{}, err
	}
	c.cache.Add(stored.ID, stored)
	return stored, nil
}

func (c *cachedEntityRepository) writeSeq() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.writes
}

// remember caches entities read after the write sequence was seen. The
// result is dropped when an Upsert finished in between.
func (c *cachedEntityRepository) remember(seen uint64, entities ...models.Entity) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.writes != seen {
		return
	}
	for _, e := range entities {
		c.cache.Add(e.ID, e)
	}
}
