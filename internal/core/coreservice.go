package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/campusweb/school-images-backend/internal/store"
)

const (
	imageCollection      = "schoolimage"
	collectionProbeLimit = 10
	probeErrorMaxLength  = 50
)

// ErrStoreUnavailable signals that no document store is configured. The
// read path falls back to placeholder data instead; only the write path
// surfaces this error.
var ErrStoreUnavailable = errors.New("database not available")

// Image is the projection returned by the listing operation. Stored
// fields outside this shape (approved, identifiers) are dropped
// deliberately at this boundary.
type Image struct {
	URL   string   `json:"url"`
	Title *string  `json:"title"`
	Tags  []string `json:"tags"`
}

// NewImage is a validated record on its way into the store.
type NewImage struct {
	URL      string
	Title    *string
	Tags     []string
	Approved bool
}

type StoreStatus struct {
	Status      string
	Connected   bool
	Collections []string
}

type CoreService struct {
	config          *ServiceConfig
	store           store.DocumentStore
	storeConfigured bool
}

func NewCoreService(config *ServiceConfig) *CoreService {
	service := &CoreService{config: config}
	if config.Database.Type == "" {
		slog.Warn("no database configured, image listing serves placeholder data")
		return service
	}

	service.storeConfigured = true
	documentStore, err := store.NewStore(context.Background(), config.Database.Type, config.Database.URL, config.Database.Name)
	if err != nil {
		slog.Error("failed to initialize document store, continuing without persistence",
			"type", config.Database.Type, "error", err)
		return service
	}

	slog.Info("document store initialized", "type", config.Database.Type)
	service.store = documentStore
	return service
}

// NewCoreServiceWithStore wires an already constructed store, mainly for
// tests. A nil store behaves like an unconfigured one.
func NewCoreServiceWithStore(config *ServiceConfig, documentStore store.DocumentStore) *CoreService {
	return &CoreService{
		config:          config,
		store:           documentStore,
		storeConfigured: documentStore != nil,
	}
}

// ListImages returns up to limit approved images in store order, projected
// down to url/title/tags. When the store is absent or holds no matching
// records, the fixed placeholder set is returned instead; store absence is
// never an error here.
func (service *CoreService) ListImages(ctx context.Context, limit int) ([]Image, error) {
	images := []Image{}
	if service.store != nil {
		docs, err := service.store.Query(ctx, imageCollection, store.Document{"approved": true}, limit)
		if err != nil {
			return nil, fmt.Errorf("failed to query school images: %w", err)
		}
		for _, doc := range docs {
			images = append(images, imageFromDocument(doc))
		}
	}

	if len(images) == 0 {
		return PlaceholderImages(), nil
	}
	return images, nil
}

// AddImage inserts one record and returns the store-generated identifier.
// Unlike the read path there is no fallback: without a store this fails
// with ErrStoreUnavailable.
func (service *CoreService) AddImage(ctx context.Context, image NewImage) (string, error) {
	if service.store == nil {
		return "", ErrStoreUnavailable
	}

	tags := image.Tags
	if tags == nil {
		tags = []string{}
	}
	doc := store.Document{
		"url":      image.URL,
		"tags":     tags,
		"approved": image.Approved,
	}
	if image.Title != nil {
		doc["title"] = *image.Title
	} else {
		doc["title"] = nil
	}

	id, err := service.store.Insert(ctx, imageCollection, doc)
	if err != nil {
		return "", fmt.Errorf("failed to insert school image: %w", err)
	}
	return id, nil
}

// StoreStatus reports store reachability for the diagnostic endpoint.
// The collection probe is best effort: its failure degrades the status
// string but never turns into an error.
func (service *CoreService) StoreStatus(ctx context.Context) StoreStatus {
	status := StoreStatus{
		Status:      "❌ Not Available",
		Collections: []string{},
	}
	if service.store == nil {
		if service.storeConfigured {
			status.Status = "⚠️  Available but not initialized"
		}
		return status
	}

	status.Connected = true
	names, err := service.store.Collections(ctx, collectionProbeLimit)
	if err != nil {
		status.Status = fmt.Sprintf("⚠️  Connected but Error: %s", truncate(err.Error(), probeErrorMaxLength))
		return status
	}

	status.Status = "✅ Connected & Working"
	if names != nil {
		status.Collections = names
	}
	return status
}

func (service *CoreService) Close() error {
	if service.store != nil {
		return service.store.Close()
	}
	return nil
}

func imageFromDocument(doc store.Document) Image {
	image := Image{Tags: []string{}}
	if url, ok := doc["url"].(string); ok {
		image.URL = url
	}
	if title, ok := doc["title"].(string); ok {
		image.Title = &title
	}
	switch tags := doc["tags"].(type) {
	case []string:
		image.Tags = append(image.Tags, tags...)
	case []any:
		for _, tag := range tags {
			if value, ok := tag.(string); ok {
				image.Tags = append(image.Tags, value)
			}
		}
	}
	return image
}

func truncate(value string, maxLength int) string {
	runes := []rune(value)
	if len(runes) <= maxLength {
		return value
	}
	return string(runes[:maxLength])
}
