package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// ErrSessionNotFound is returned when no form state is stored under a session id.
var ErrSessionNotFound = errors.New("session not found")

// SessionRedisRepository keeps conversion form state in Redis.
type SessionRedisRepository struct {
	client *redis.Client
	exp    time.Duration // lifetime of a session since its last save
}

// NewSessionRedisRepository creates a new repository instance with the given TTL
func NewSessionRedisRepository(client *redis.Client, expiration time.Duration) *SessionRedisRepository {
	return &SessionRedisRepository{
		client: client,
		exp:    expiration,
	}
}

func sessionKey(id string) string {
	return fmt.Sprintf("conversion_form:%s", id)
}

// Get loads the form state stored under id.
func (r *SessionRedisRepository) Get(ctx context.Context, id string) (*models.ConversionForm, error) {
	key := sessionKey(id)

	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	var form models.ConversionForm
	if err := json.Unmarshal(val, &form); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", key, err)
	}

	return &form, nil
}

// Save stores the form state under its id and refreshes its expiration.
// Concurrent saves for one id overwrite each other; the last one wins.
func (r *SessionRedisRepository) Save(ctx context.Context, form *models.ConversionForm) error {
	key := sessionKey(form.ID)

	data, err := json.Marshal(form)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()
	logger.Log.Debugw("session saved", "key", key, "error", err)

	return err
}

// Delete removes the form state stored under id.
func (r *SessionRedisRepository) Delete(ctx context.Context, id string) error {
	return r.client.Del(ctx, sessionKey(id)).Err()
}
