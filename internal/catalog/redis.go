package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// DefaultCollection is the hash key shared by every shape in the document
// store.
const DefaultCollection = "catalog"

// RedisRepository implements Repository over a single shared hash. Each
// entity is a JSON document stored under the partition key "{Type}|{id}",
// and reads filter on the document's type field.
type RedisRepository[T Entity] struct {
	client     *redis.Client
	collection string
	typeName   string
	newEntity  func() T
}

// NewRedisRepository creates a Repository for one shape backed by the given
// client. newEntity allocates a blank entity for unmarshalling.
func NewRedisRepository[T Entity](client *redis.Client, collection, typeName string, newEntity func() T) *RedisRepository[T] {
	return &RedisRepository[T]{
		client:     client,
		collection: collection,
		typeName:   typeName,
		newEntity:  newEntity,
	}
}

func (r *RedisRepository[T]) partitionKey(id string) string {
	return r.typeName + "|" + id
}

// Add stores a new document. An existing partition key is never
// overwritten.
func (r *RedisRepository[T]) Add(ctx context.Context, entity T) (T, error) {
	var zero T

	if entity.EntityID() == "" {
		entity.SetEntityID(uuid.New().String())
	}
	now := time.Now().UTC()
	entity.StampCreated(now)
	entity.StampUpdated(now)

	data, err := json.Marshal(entity)
	if err != nil {
		return zero, fmt.Errorf("marshalling %s: %w", r.typeName, err)
	}

	created, err := r.client.HSetNX(ctx, r.collection, r.partitionKey(entity.EntityID()), data).Result()
	if err != nil {
		return zero, fmt.Errorf("storing %s: %w", r.typeName, err)
	}
	if !created {
		return zero, ErrDuplicateID
	}
	return entity, nil
}

// Update upserts the document matched by id, stamping the update timestamp.
func (r *RedisRepository[T]) Update(ctx context.Context, entity T) error {
	entity.StampUpdated(time.Now().UTC())

	data, err := json.Marshal(entity)
	if err != nil {
		return fmt.Errorf("marshalling %s: %w", r.typeName, err)
	}

	if err := r.client.HSet(ctx, r.collection, r.partitionKey(entity.EntityID()), data).Err(); err != nil {
		return fmt.Errorf("updating %s: %w", r.typeName, err)
	}
	return nil
}

// Delete removes the document with the given id. Deleting an absent id is
// a no-op.
func (r *RedisRepository[T]) Delete(ctx context.Context, id string) error {
	if err := r.client.HDel(ctx, r.collection, r.partitionKey(id)).Err(); err != nil {
		return fmt.Errorf("deleting %s: %w", r.typeName, err)
	}
	return nil
}

// GetByID returns the document with the given id, or the zero value when
// absent.
func (r *RedisRepository[T]) GetByID(ctx context.Context, id string) (T, error) {
	var zero T

	data, err := r.client.HGet(ctx, r.collection, r.partitionKey(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return zero, nil
		}
		return zero, fmt.Errorf("getting %s by id: %w", r.typeName, err)
	}

	entity := r.newEntity()
	if err := json.Unmarshal([]byte(data), entity); err != nil {
		return zero, fmt.Errorf("unmarshalling %s: %w", r.typeName, err)
	}
	return entity, nil
}

// GetAll returns every document whose type field matches this shape.
func (r *RedisRepository[T]) GetAll(ctx context.Context) ([]T, error) {
	all, err := r.client.HGetAll(ctx, r.collection).Result()
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", r.typeName, err)
	}

	entities := []T{}
	for _, data := range all {
		var probe struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal([]byte(data), &probe); err != nil {
			return nil, fmt.Errorf("probing document type: %w", err)
		}
		if probe.Type != r.typeName {
			continue
		}

		entity := r.newEntity()
		if err := json.Unmarshal([]byte(data), entity); err != nil {
			return nil, fmt.Errorf("unmarshalling %s: %w", r.typeName, err)
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
