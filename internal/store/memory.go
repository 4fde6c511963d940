package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

type memoryEntry struct {
	id  string
	doc Document
}

// MemoryStore is an in-process backend for development and tests.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]memoryEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string][]memoryEntry),
	}
}

func (s *MemoryStore) Query(_ context.Context, collection string, filter Document, limit int) ([]Document, error) {
	if limit <= 0 {
		return nil, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var docs []Document
	for _, entry := range s.collections[collection] {
		if !matchesFilter(entry.doc, filter) {
			continue
		}
		docs = append(docs, copyDocument(entry.doc))
		if len(docs) >= limit {
			break
		}
	}
	return docs, nil
}

func (s *MemoryStore) Insert(_ context.Context, collection string, doc Document) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	s.collections[collection] = append(s.collections[collection], memoryEntry{id: id, doc: copyDocument(doc)})
	return id, nil
}

// copyDocument deep-copies a document so stored state never aliases
// caller-owned maps or slices, matching the isolation the persistent
// backends get from their codecs.
func copyDocument(doc Document) Document {
	copied := make(Document, len(doc))
	for key, value := range doc {
		copied[key] = copyValue(value)
	}
	return copied
}

func copyValue(value any) any {
	switch v := value.(type) {
	case Document:
		return map[string]any(copyDocument(v))
	case map[string]any:
		return map[string]any(copyDocument(v))
	case []any:
		copied := make([]any, len(v))
		for i, item := range v {
			copied[i] = copyValue(item)
		}
		return copied
	case []string:
		return append([]string(nil), v...)
	default:
		return v
	}
}

func (s *MemoryStore) Collections(_ context.Context, limit int) ([]string, error) {
	if limit <= 0 {
		return nil, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var names []string
	for name := range s.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	if len(names) > limit {
		names = names[:limit]
	}
	return names, nil
}

func (s *MemoryStore) Close() error {
	return nil
}
