// Package store is the record store adapter: a generic insert/query layer
// over named collections of JSON documents. Every endpoint persists through
// it; there are no updates or deletes anywhere in the system.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/medibridge/directory-api/internal/model"
)

// RawRecord is a stored document with its identifier, as returned by a
// backend in storage order.
type RawRecord struct {
	ID  string
	Doc []byte
}

// Backend is the minimal contract a document store must provide.
type Backend interface {
	Insert(ctx context.Context, collection string, doc []byte) (string, error)
	// Query returns matching records in storage order. limit <= 0 means no limit.
	Query(ctx context.Context, collection string, f Filter, limit int) ([]RawRecord, error)
	Collections(ctx context.Context) ([]string, error)
	Ping(ctx context.Context) error
	Close() error
}

// RecordPtr constrains P to a pointer to T that satisfies model.Record.
type RecordPtr[T any] interface {
	*T
	model.Record
}

// Repository is the typed view over a backend collection. One repository per
// entity type; the collection name comes from the record itself.
type Repository[T any, P RecordPtr[T]] struct {
	backend Backend
}

func NewRepository[T any, P RecordPtr[T]](backend Backend) Repository[T, P] {
	return Repository[T, P]{backend: backend}
}

func (r Repository[T, P]) collection() string {
	var zero T
	return P(&zero).Collection()
}

// Insert persists the record and returns its generated id. The record's own
// ID field is cleared before storage; identity lives in the backend.
func (r Repository[T, P]) Insert(ctx context.Context, rec P) (string, error) {
	rec.SetID("")
	doc, err := json.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("marshal %s record: %w", rec.Collection(), err)
	}
	id, err := r.backend.Insert(ctx, rec.Collection(), doc)
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", rec.Collection(), err)
	}
	return id, nil
}

// Query returns matching records with their ids attached.
func (r Repository[T, P]) Query(ctx context.Context, f Filter, limit int) ([]P, error) {
	coll := r.collection()
	raws, err := r.backend.Query(ctx, coll, f, limit)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", coll, err)
	}
	out := make([]P, 0, len(raws))
	for _, raw := range raws {
		var rec T
		if err := json.Unmarshal(raw.Doc, &rec); err != nil {
			return nil, fmt.Errorf("decode %s record %s: %w", coll, raw.ID, err)
		}
		p := P(&rec)
		p.SetID(raw.ID)
		out = append(out, p)
	}
	return out, nil
}
