package store

import (
	"context"
	"fmt"
	"log"
)

func NewStore(ctx context.Context, storeType, url, database string) (documentStore DocumentStore, err error) {
	switch storeType {
	case "mongo":
		documentStore, err = NewMongoStore(ctx, url, database)
	case "sqlite":
		documentStore, err = NewSQLiteStore(url)
	case "redis":
		documentStore, err = NewRedisStore(ctx, url)
	case "memory":
		documentStore = NewMemoryStore()
	default:
		return nil, fmt.Errorf("unsupported store type: %s", storeType)
	}
	if err != nil {
		return nil, err
	}

	log.Printf("document store ready (type=%s)", storeType)
	return documentStore, nil
}
