package store

import (
	"context"
	"fmt"
	"sort"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type MongoStore struct {
	client   *mongo.Client
	database *mongo.Database
}

func NewMongoStore(ctx context.Context, uri, databaseName string) (DocumentStore, error) {
	if databaseName == "" {
		return nil, fmt.Errorf("mongo store requires a database name")
	}

	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to reach mongo: %w", err)
	}

	return &MongoStore{
		client:   client,
		database: client.Database(databaseName),
	}, nil
}

func (s *MongoStore) Query(ctx context.Context, collection string, filter Document, limit int) ([]Document, error) {
	if limit <= 0 {
		return nil, nil
	}

	cursor, err := s.database.Collection(collection).Find(ctx, bson.M(filter),
		options.Find().SetLimit(int64(limit)))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []Document
	for cursor.Next(ctx) {
		var raw bson.M
		if err := cursor.Decode(&raw); err != nil {
			return nil, err
		}
		docs = append(docs, documentFromBSON(raw))
	}
	return docs, cursor.Err()
}

func (s *MongoStore) Insert(ctx context.Context, collection string, doc Document) (string, error) {
	result, err := s.database.Collection(collection).InsertOne(ctx, bson.M(doc))
	if err != nil {
		return "", err
	}
	if objectID, ok := result.InsertedID.(bson.ObjectID); ok {
		return objectID.Hex(), nil
	}
	return fmt.Sprintf("%v", result.InsertedID), nil
}

func (s *MongoStore) Collections(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 {
		return nil, nil
	}

	names, err := s.database.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	if len(names) > limit {
		names = names[:limit]
	}
	return names, nil
}

func (s *MongoStore) Close() error {
	return s.client.Disconnect(context.Background())
}

// documentFromBSON flattens driver types so callers only ever see plain
// maps, slices, and scalars, regardless of backend.
func documentFromBSON(raw bson.M) Document {
	doc := make(Document, len(raw))
	for key, value := range raw {
		doc[key] = convertBSONValue(value)
	}
	return doc
}

func convertBSONValue(value any) any {
	switch v := value.(type) {
	case bson.M:
		return map[string]any(documentFromBSON(v))
	case bson.D:
		nested := make(Document, len(v))
		for _, element := range v {
			nested[element.Key] = convertBSONValue(element.Value)
		}
		return map[string]any(nested)
	case bson.A:
		converted := make([]any, len(v))
		for i, item := range v {
			converted[i] = convertBSONValue(item)
		}
		return converted
	case bson.ObjectID:
		return v.Hex()
	default:
		return v
	}
}
