package store

import (
	"context"
	"reflect"
)

// Document is the schemaless unit of persistence. Values round-trip through
// JSON (or BSON for the mongo backend), so numbers decode as float64.
type Document map[string]any

type DocumentStore interface {
	// Query returns documents of the named collection whose fields equal
	// every key/value pair in filter, in insertion order, capped at limit.
	// A limit of zero or less yields no documents.
	Query(ctx context.Context, collection string, filter Document, limit int) ([]Document, error)
	// Insert stores one document and returns its generated identifier.
	Insert(ctx context.Context, collection string, doc Document) (string, error)
	// Collections lists up to limit collection names, used as a
	// connectivity probe by the diagnostic endpoint.
	Collections(ctx context.Context, limit int) ([]string, error)
	Close() error
}

func matchesFilter(doc Document, filter Document) bool {
	for key, want := range filter {
		got, ok := doc[key]
		if !ok || !looseEqual(got, want) {
			return false
		}
	}
	return true
}

// looseEqual compares values across the numeric representations the
// different codecs produce (JSON float64 vs. native int).
func looseEqual(got, want any) bool {
	gotNumber, gotIsNumber := toFloat(got)
	wantNumber, wantIsNumber := toFloat(want)
	if gotIsNumber || wantIsNumber {
		return gotIsNumber && wantIsNumber && gotNumber == wantNumber
	}
	return reflect.DeepEqual(got, want)
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}
