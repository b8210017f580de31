package service

import (
	"context"
	"encoding/json"
	"fmt"
	"movie_discovery/model"
	errorHandler "movie_discovery/pkg/error"
	"strconv"
	"time"

	"golang.org/x/sync/singleflight"
)

// IKvStore is the small surface of the backing store the cache needs. The
// production implementation lives in db/redis, tests swap in a map.
type IKvStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string, duration time.Duration) error
	Del(ctx context.Context, keys ...string) error
	Incr(ctx context.Context, key string) (int64, error)
}

type ICacheService interface {
	Fetch(ctx context.Context, key model.QueryKey, duration time.Duration, dest interface{}, fill func() (interface{}, error)) error
	Invalidate(ctx context.Context, key model.QueryKey)
	SetJwtDataCache(ctx context.Context, token string, value string, duration time.Duration) error
	GetJwtDataCache(ctx context.Context, token string) (string, error)
}

// CacheService is the process-wide query cache. Results are tracked under a
// typed QueryKey, concurrent readers of one key share a single in-flight
// fill, and every key carries a sequence number: Invalidate bumps it, and a
// fill that started before the bump discards its result instead of
// overwriting newer state.
type CacheService struct {
	store  IKvStore
	flight *singleflight.Group
}

func NewCacheService(store IKvStore) *CacheService {
	return &CacheService{
		store:  store,
		flight: &singleflight.Group{},
	}
}

const (
	jwtDataCachePrefix  = "jwtKey:"
	queryCachePrefix    = "query:"
	querySequenceSuffix = ".seq"
)

//------------------------------------------
//------------------------------------------

func (c *CacheService) Fetch(ctx context.Context, key model.QueryKey, duration time.Duration, dest interface{}, fill func() (interface{}, error)) error {
	cached, found, err := c.store.Get(ctx, queryCachePrefix+key.Id())
	if err == nil && found {
		return json.Unmarshal([]byte(cached), dest)
	}

	data, err, _ := c.flight.Do(key.Id(), func() (interface{}, error) {
		seq, seqOk := c.sequence(ctx, key)

		value, err := fill()
		if err != nil {
			return nil, err
		}

		jsonData, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}

		if seqOk {
			current, ok := c.sequence(ctx, key)
			if ok && current == seq {
				err = c.store.Set(ctx, queryCachePrefix+key.Id(), string(jsonData), duration)
				if err != nil {
					errorMessage := fmt.Sprintf("Cache Error on saving query %v: %v", key.Id(), err)
					errorHandler.SaveError(errorMessage, err)
				}
			}
		}

		return jsonData, nil
	})
	if err != nil {
		return err
	}

	return json.Unmarshal(data.([]byte), dest)
}

func (c *CacheService) Invalidate(ctx context.Context, key model.QueryKey) {
	_, err := c.store.Incr(ctx, queryCachePrefix+key.Id()+querySequenceSuffix)
	if err != nil {
		errorMessage := fmt.Sprintf("Cache Error on bumping sequence of %v: %v", key.Id(), err)
		errorHandler.SaveError(errorMessage, err)
	}

	err = c.store.Del(ctx, queryCachePrefix+key.Id())
	if err != nil {
		errorMessage := fmt.Sprintf("Cache Error on invalidating %v: %v", key.Id(), err)
		errorHandler.SaveError(errorMessage, err)
	}
}

func (c *CacheService) sequence(ctx context.Context, key model.QueryKey) (int64, bool) {
	value, found, err := c.store.Get(ctx, queryCachePrefix+key.Id()+querySequenceSuffix)
	if err != nil {
		return 0, false
	}
	if !found {
		return 0, true
	}

	seq, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, false
	}
	return seq, true
}

//------------------------------------------
//------------------------------------------

func (c *CacheService) SetJwtDataCache(ctx context.Context, token string, value string, duration time.Duration) error {
	err := c.store.Set(ctx, jwtDataCachePrefix+token, value, duration)
	if err != nil {
		errorMessage := fmt.Sprintf("Cache Error on saving jwt: %v", err)
		errorHandler.SaveError(errorMessage, err)
	}
	return err
}

func (c *CacheService) GetJwtDataCache(ctx context.Context, token string) (string, error) {
	value, _, err := c.store.Get(ctx, jwtDataCachePrefix+token)
	return value, err
}
