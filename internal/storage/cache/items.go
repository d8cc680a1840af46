package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"sync"
	"time"

	"items-api/internal/models"
	"items-api/internal/storage"
	"items-api/internal/transport/dto"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

const itemKeyPrefix = "items:"

// CachedItemRepository decorates an ItemRepository with a read-through cache
// for single items. Lists always go to the store. A failing cache is logged
// and bypassed, it never fails a request. Concurrent misses for the same id
// share one store lookup.
//
// Update and Delete invalidate the entry. A lookup or create that started
// before an invalidation never writes its result afterwards.
type CachedItemRepository struct {
	next  storage.ItemRepository
	cache Cache
	ttl   time.Duration
	loads singleflight.Group

	// mu guards gen. Writers to the cache hold it for reading from the
	// generation check through the Set; invalidate holds it for writing.
	mu  sync.RWMutex
	gen uint64
}

// NewCachedItemRepository wraps next with c.
func NewCachedItemRepository(next storage.ItemRepository, c Cache, ttl time.Duration) *CachedItemRepository {
	return &CachedItemRepository{next: next, cache: c, ttl: ttl}
}

var _ storage.ItemRepository = (*CachedItemRepository)(nil)

func itemKey(id int64) string {
	return itemKeyPrefix + strconv.FormatInt(id, 10)
}

func (r *CachedItemRepository) GetAll(ctx context.Context) ([]models.Item, error) {
	return r.next.GetAll(ctx)
}

func (r *CachedItemRepository) GetByID(ctx context.Context, id int64) (*models.Item, error) {
	if item, ok := r.load(ctx, id); ok {
		return item, nil
	}

	v, err, _ := r.loads.Do(itemKey(id), func() (interface{}, error) {
		// The load is shared, so one caller going away must not fail the rest.
		loadCtx := context.WithoutCancel(ctx)
		gen := r.generation()
		item, err := r.next.GetByID(loadCtx, id)
		if err != nil {
			return nil, err
		}
		r.storeIfCurrent(loadCtx, item, gen)
		return item, nil
	})
	if err != nil {
		return nil, err
	}
	// Callers sharing a load must not alias one another's item.
	item := *v.(*models.Item)
	return &item, nil
}

func (r *CachedItemRepository) Create(ctx context.Context, req *dto.CreateItemRequest) (*models.Item, error) {
	gen := r.generation()
	item, err := r.next.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	r.storeIfCurrent(ctx, item, gen)
	return item, nil
}

func (r *CachedItemRepository) Update(ctx context.Context, id int64, req *dto.UpdateItemRequest) (*models.Item, error) {
	item, err := r.next.Update(ctx, id, req)
	// Invalidate rather than store: concurrent updates may finish in a
	// different order than they were applied.
	r.invalidate(ctx, id)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *CachedItemRepository) Delete(ctx context.Context, id int64) (*models.Item, error) {
	item, err := r.next.Delete(ctx, id)
	// Invalidate even on failure: the row may be gone while the entry is not.
	r.invalidate(ctx, id)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *CachedItemRepository) load(ctx context.Context, id int64) (*models.Item, bool) {
	raw, err := r.cache.Get(ctx, itemKey(id))
	if err != nil {
		if !errors.Is(err, ErrCacheMiss) {
			logrus.WithError(err).WithField("item_id", id).Warn("Item cache read failed")
		}
		return nil, false
	}

	var item models.Item
	if err := json.Unmarshal(raw, &item); err != nil {
		logrus.WithError(err).WithField("item_id", id).Warn("Dropping undecodable cached item")
		r.evict(ctx, id)
		return nil, false
	}
	return &item, true
}

func (r *CachedItemRepository) generation() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.gen
}

// invalidate bumps the generation, detaches in-flight lookups for id from new
// callers and evicts the entry.
func (r *CachedItemRepository) invalidate(ctx context.Context, id int64) {
	r.mu.Lock()
	r.gen++
	r.mu.Unlock()
	r.loads.Forget(itemKey(id))
	r.evict(ctx, id)
}

// storeIfCurrent caches item unless an invalidation happened since gen was
// read.
func (r *CachedItemRepository) storeIfCurrent(ctx context.Context, item *models.Item, gen uint64) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.gen != gen {
		return
	}
	r.store(ctx, item)
}

func (r *CachedItemRepository) store(ctx context.Context, item *models.Item) {
	raw, err := json.Marshal(item)
	if err != nil {
		logrus.WithError(err).WithField("item_id", item.ID).Warn("Failed to encode item for cache")
		return
	}
	if err := r.cache.Set(ctx, itemKey(item.ID), raw, r.ttl); err != nil {
		logrus.WithError(err).WithField("item_id", item.ID).Warn("Item cache write failed")
	}
}

func (r *CachedItemRepository) evict(ctx context.Context, id int64) {
	if err := r.cache.Delete(ctx, itemKey(id)); err != nil {
		logrus.WithError(err).WithField("item_id", id).Warn("Item cache eviction failed")
	}
}
