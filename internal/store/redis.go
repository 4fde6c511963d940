package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const collectionsKey = "collections"

// RedisStore keeps each document as a JSON value and maintains a
// per-collection id list so Query can report insertion order.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(ctx context.Context, url string) (DocumentStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to reach redis: %w", err)
	}
	return &RedisStore{client: client}, nil
}

func (s *RedisStore) Query(ctx context.Context, collection string, filter Document, limit int) ([]Document, error) {
	if limit <= 0 {
		return nil, nil
	}

	ids, err := s.client.LRange(ctx, idsKey(collection), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	var docs []Document
	for _, id := range ids {
		body, err := s.client.Get(ctx, docKey(collection, id)).Result()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return nil, err
		}
		var doc Document
		if err := json.Unmarshal([]byte(body), &doc); err != nil {
			return nil, err
		}
		if !matchesFilter(doc, filter) {
			continue
		}
		docs = append(docs, doc)
		if len(docs) >= limit {
			break
		}
	}
	return docs, nil
}

func (s *RedisStore) Insert(ctx context.Context, collection string, doc Document) (string, error) {
	body, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}

	id := uuid.NewString()
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, docKey(collection, id), body, 0)
	pipe.RPush(ctx, idsKey(collection), id)
	pipe.SAdd(ctx, collectionsKey, collection)
	if _, err := pipe.Exec(ctx); err != nil {
		return "", err
	}
	return id, nil
}

func (s *RedisStore) Collections(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 {
		return nil, nil
	}

	names, err := s.client.SMembers(ctx, collectionsKey).Result()
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	if len(names) > limit {
		names = names[:limit]
	}
	return names, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

func docKey(collection, id string) string {
	return fmt.Sprintf("doc:%s:%s", collection, id)
}

func idsKey(collection string) string {
	return fmt.Sprintf("ids:%s", collection)
}
