package event

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/tsel-ticketmaster/tm-availability/pkg/errors"
	"github.com/tsel-ticketmaster/tm-availability/pkg/status"
)

type CacheRepository interface {
	Get(ctx context.Context, ID string) (Event, error)
	Set(ctx context.Context, e Event) error
	Delete(ctx context.Context, ID string) error
}

type cacheRepository struct {
	logger *logrus.Logger
	client *redis.Client
	ttl    time.Duration
}

func NewCacheRepository(logger *logrus.Logger, client *redis.Client, ttl time.Duration) CacheRepository {
	return &cacheRepository{
		logger: logger,
		client: client,
		ttl:    ttl,
	}
}

func cacheKey(ID string) string {
	return fmt.Sprintf("event:%s", ID)
}

// Get implements CacheRepository.
func (r *cacheRepository) Get(ctx context.Context, ID string) (Event, error) {
	val, err := r.client.Get(ctx, cacheKey(ID)).Result()
	if err != nil {
		if err == redis.Nil {
			return Event{}, errors.New(http.StatusNotFound, status.NOT_FOUND, fmt.Sprintf("event's properties with id '%s' is not found on cache", ID))
		}
		r.logger.WithContext(ctx).WithError(err).Error()
		return Event{}, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting event's prorperties from cache")
	}

	var data Event
	if err := json.Unmarshal([]byte(val), &data); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return Event{}, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting event's prorperties from cache")
	}

	return data, nil
}

// Set implements CacheRepository.
func (r *cacheRepository) Set(ctx context.Context, e Event) error {
	buff, _ := json.Marshal(e)

	if err := r.client.Set(ctx, cacheKey(e.ID), buff, r.ttl).Err(); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while storing event's prorperties on cache")
	}

	return nil
}

// Delete implements CacheRepository.
func (r *cacheRepository) Delete(ctx context.Context, ID string) error {
	if err := r.client.Del(ctx, cacheKey(ID)).Err(); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while removing event's prorperties from cache")
	}

	return nil
}
