package event

import (
	"context"
	"fmt"
	"net/http"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/tsel-ticketmaster/tm-availability/pkg/errors"
	"github.com/tsel-ticketmaster/tm-availability/pkg/status"
)

// CacheRepository invalidates the customer facing event cache after admin
// writes. Admin reads never go through the cache.
type CacheRepository interface {
	Delete(ctx context.Context, ID string) error
}

type cacheRepository struct {
	logger *logrus.Logger
	client *redis.Client
}

func NewCacheRepository(logger *logrus.Logger, client *redis.Client) CacheRepository {
	return &cacheRepository{
		logger: logger,
		client: client,
	}
}

// Delete implements CacheRepository.
func (r *cacheRepository) Delete(ctx context.Context, ID string) error {
	if err := r.client.Del(ctx, fmt.Sprintf("event:%s", ID)).Err(); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while removing event's prorperties from cache")
	}

	return nil
}
