package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"hardware-store/config"
	"hardware-store/models"
)

type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// Connect wires the session store against Redis, falling back to the
// in-memory store when Redis is unreachable so a local run does not
// need the full stack.
func Connect() Store {
	cfg := config.AppConfig

	var opt *redis.Options
	if cfg.RedisURL != "" {
		parsedOpt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Println("Failed to parse Redis URL:", err)
			log.Println("Running with in-memory sessions")
			return NewMemoryStore(cfg.SessionTTL)
		}
		opt = parsedOpt
	} else {
		opt = &redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		}
	}

	client := redis.NewClient(opt)
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		log.Println("Redis connection failed:", err)
		log.Println("Running with in-memory sessions")
		client.Close()
		return NewMemoryStore(cfg.SessionTTL)
	}

	log.Println("Redis connected")
	return &RedisStore{client: client, ttl: cfg.SessionTTL}
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func sessionKey(id string) string       { return "session:" + id }
func selectionKey(userID int) string    { return fmt.Sprintf("cart:selection:%d", userID) }
func pendingKey(intentID string) string { return "pending-rental:" + intentID }

func (r *RedisStore) setJSON(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key, data, r.ttl).Err()
}

func (r *RedisStore) getJSON(ctx context.Context, key string, out interface{}) error {
	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

func (r *RedisStore) SaveSession(ctx context.Context, s Session) error {
	return r.setJSON(ctx, sessionKey(s.ID), s)
}

func (r *RedisStore) GetSession(ctx context.Context, id string) (*Session, error) {
	var s Session
	if err := r.getJSON(ctx, sessionKey(id), &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *RedisStore) DeleteSession(ctx context.Context, id string) error {
	return r.client.Del(ctx, sessionKey(id)).Err()
}

func (r *RedisStore) SaveSelection(ctx context.Context, userID int, sel models.Selection) error {
	return r.setJSON(ctx, selectionKey(userID), sel)
}

func (r *RedisStore) GetSelection(ctx context.Context, userID int) (models.Selection, error) {
	var sel models.Selection
	if err := r.getJSON(ctx, selectionKey(userID), &sel); err != nil {
		return models.Selection{}, err
	}
	return sel, nil
}

func (r *RedisStore) SavePendingRental(ctx context.Context, intentID string, intent models.PendingRental) error {
	return r.setJSON(ctx, pendingKey(intentID), intent)
}

func (r *RedisStore) TakePendingRental(ctx context.Context, intentID string) (*models.PendingRental, error) {
	var intent models.PendingRental
	if err := r.getJSON(ctx, pendingKey(intentID), &intent); err != nil {
		return nil, err
	}
	r.client.Del(ctx, pendingKey(intentID))
	return &intent, nil
}
