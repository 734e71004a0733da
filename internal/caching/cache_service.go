package caching

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/agasthyasuperfoods/nutromilk-indent/internal/models"
)

const indentBufferKey = "nutromilk:indent_buffer"

type CacheService interface {
	// Customer master caching
	GetCustomer(ctx context.Context, customerID uuid.UUID) (*models.Customer, error)
	SetCustomer(ctx context.Context, customer *models.Customer, ttl time.Duration) error
	DeleteCustomer(ctx context.Context, customerID uuid.UUID) error

	// Local indent buffer: the fallback tier the indent store writes to
	// when Postgres is unreachable. A background job drains it.
	PushIndent(ctx context.Context, indent *models.IndentRecord) error
	PopIndents(ctx context.Context, max int) ([]*models.IndentRecord, error)
	PeekIndents(ctx context.Context) ([]*models.IndentRecord, error)
	IndentBufferLen(ctx context.Context) (int64, error)

	// Generic string operations for session/token management
	SetString(ctx context.Context, key string, value string, ttl time.Duration) error
	GetString(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error

	// Ping is used by the health endpoints.
	Ping(ctx context.Context) error
}

type redisCacheService struct {
	client *redis.Client
}

func NewRedisCacheService(addr, password string, db int) CacheService {
	// Accept both host:port and redis://host:port forms
	parsedAddr := addr
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		if hostPort := strings.TrimPrefix(strings.TrimPrefix(addr, "redis://"), "rediss://"); hostPort != addr {
			parsedAddr = hostPort
		}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     parsedAddr,
		Password: password,
		DB:       db,
	})

	if pingErr := client.Ping(context.Background()).Err(); pingErr != nil {
		log.Printf("WARN: Redis ping failed on initialization: %v (address: %s)", pingErr, parsedAddr)
	}

	return &redisCacheService{client: client}
}

func (r *redisCacheService) GetCustomer(ctx context.Context, customerID uuid.UUID) (*models.Customer, error) {
	key := fmt.Sprintf("nutromilk:customer:%s", customerID.String())
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // cache miss
		}
		return nil, err
	}

	var customer models.Customer
	if err := json.Unmarshal(data, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *redisCacheService) SetCustomer(ctx context.Context, customer *models.Customer, ttl time.Duration) error {
	key := fmt.Sprintf("nutromilk:customer:%s", customer.ID.String())
	data, err := json.Marshal(customer)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key, data, ttl).Err()
}

func (r *redisCacheService) DeleteCustomer(ctx context.Context, customerID uuid.UUID) error {
	key := fmt.Sprintf("nutromilk:customer:%s", customerID.String())
	return r.client.Del(ctx, key).Err()
}

func (r *redisCacheService) PushIndent(ctx context.Context, indent *models.IndentRecord) error {
	data, err := json.Marshal(indent)
	if err != nil {
		return err
	}
	return r.client.LPush(ctx, indentBufferKey, data).Err()
}

func (r *redisCacheService) PopIndents(ctx context.Context, max int) ([]*models.IndentRecord, error) {
	if max <= 0 {
		max = 100
	}
	values, err := r.client.RPopCount(ctx, indentBufferKey, max).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // buffer empty
		}
		return nil, err
	}

	var indents []*models.IndentRecord
	for _, raw := range values {
		indent := &models.IndentRecord{}
		if err := json.Unmarshal([]byte(raw), indent); err != nil {
			log.Printf("WARN: dropping unreadable buffered indent: %v", err)
			continue
		}
		indents = append(indents, indent)
	}
	return indents, nil
}

// PeekIndents reads the buffered rows without consuming them; the read-side
// fallback of the tiered indent store uses it when Postgres is down.
func (r *redisCacheService) PeekIndents(ctx context.Context) ([]*models.IndentRecord, error) {
	values, err := r.client.LRange(ctx, indentBufferKey, 0, -1).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var indents []*models.IndentRecord
	for _, raw := range values {
		indent := &models.IndentRecord{}
		if err := json.Unmarshal([]byte(raw), indent); err != nil {
			continue
		}
		indents = append(indents, indent)
	}
	return indents, nil
}

func (r *redisCacheService) IndentBufferLen(ctx context.Context) (int64, error) {
	return r.client.LLen(ctx, indentBufferKey).Result()
}

func (r *redisCacheService) SetString(ctx context.Context, key string, value string, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

func (r *redisCacheService) GetString(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", nil // cache miss
		}
		return "", err
	}
	return val, nil
}

func (r *redisCacheService) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

func (r *redisCacheService) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
