/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides a mock implementation of the DataStore interface for testing
package mock

import (
	"context"
	"reflect"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/suparena/docstore/storagemodels"
)

// DataStore is an in-memory mock implementation of datastore.DataStore.
// Documents are kept in insertion order and queries match on top-level
// field equality, which is enough for consumer tests that exercise the
// wrapper contract without a live deployment.
type DataStore struct {
	mu          sync.RWMutex
	docs        []storagemodels.Document
	findError   error
	updateError error
	insertError error
}

// New creates a new mock DataStore
func New() *DataStore {
	return &DataStore{}
}

// WithFindError makes FindOne, FindMany and Stream return an error
func (m *DataStore) WithFindError(err error) *DataStore {
	m.findError = err
	return m
}

// WithUpdateError makes UpdateOne and UpdateMany return an error
func (m *DataStore) WithUpdateError(err error) *DataStore {
	m.updateError = err
	return m
}

// WithInsertError makes InsertOne and InsertMany return an error
func (m *DataStore) WithInsertError(err error) *DataStore {
	m.insertError = err
	return m
}

// Len returns the number of stored documents.
func (m *DataStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.docs)
}

// FindOne returns the first stored document matching query, or nil, nil.
func (m *DataStore) FindOne(ctx context.Context, query storagemodels.Query, projection storagemodels.Projection) (storagemodels.Document, error) {
	if m.findError != nil {
		return nil, m.findError
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, doc := range m.docs {
		if matches(doc, query) {
			return project(doc, projection), nil
		}
	}
	return nil, nil
}

// FindMany returns all matching documents in insertion order. A limit
// greater than zero caps the count; zero means no limit.
func (m *DataStore) FindMany(ctx context.Context, query storagemodels.Query, projection storagemodels.Projection, limit int64) ([]storagemodels.Document, error) {
	if m.findError != nil {
		return nil, m.findError
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var results []storagemodels.Document
	for _, doc := range m.docs {
		if !matches(doc, query) {
			continue
		}
		results = append(results, project(doc, projection))
		if limit > 0 && int64(len(results)) == limit {
			break
		}
	}
	return results, nil
}

// UpdateOne sets the update fields on the first matching document. When
// upsert is true and nothing matched, a new document is built from update.
// As with the real store, a zero modified count yields a nil result.
func (m *DataStore) UpdateOne(ctx context.Context, query storagemodels.Query, update storagemodels.Document, upsert bool) (*storagemodels.UpdateResult, error) {
	return m.update(query, update, upsert, false)
}

// UpdateMany sets the update fields on all matching documents.
func (m *DataStore) UpdateMany(ctx context.Context, query storagemodels.Query, update storagemodels.Document, upsert bool) (*storagemodels.UpdateResult, error) {
	return m.update(query, update, upsert, true)
}

func (m *DataStore) update(query storagemodels.Query, update storagemodels.Document, upsert, all bool) (*storagemodels.UpdateResult, error) {
	if m.updateError != nil {
		return nil, m.updateError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var matched, modified int64
	for i, doc := range m.docs {
		if !matches(doc, query) {
			continue
		}
		matched++
		if applySet(m.docs[i], update) {
			modified++
		}
		if !all {
			break
		}
	}

	if matched == 0 && upsert {
		inserted := storagemodels.Document{"_id": primitive.NewObjectID()}
		for k, v := range update {
			inserted[k] = v
		}
		m.docs = append(m.docs, inserted)
	}

	if modified == 0 {
		return nil, nil
	}
	return &storagemodels.UpdateResult{
		MatchesFound:    matched,
		ModifiedResults: modified,
	}, nil
}

// InsertOne stores a copy of document, assigning an identifier when the
// document carries none, and returns the identifier.
func (m *DataStore) InsertOne(ctx context.Context, document storagemodels.Document) (interface{}, error) {
	if m.insertError != nil {
		return nil, m.insertError
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.insert(document), nil
}

// InsertMany stores copies of documents in order and returns their
// identifiers in the same order.
func (m *DataStore) InsertMany(ctx context.Context, documents []storagemodels.Document) ([]interface{}, error) {
	if m.insertError != nil {
		return nil, m.insertError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	ids := make([]interface{}, 0, len(documents))
	for _, doc := range documents {
		ids = append(ids, m.insert(doc))
	}
	if len(ids) == 0 {
		return nil, nil
	}
	return ids, nil
}

func (m *DataStore) insert(document storagemodels.Document) interface{} {
	stored := storagemodels.Document{}
	for k, v := range document {
		stored[k] = v
	}
	if _, ok := stored["_id"]; !ok {
		stored["_id"] = primitive.NewObjectID()
	}
	m.docs = append(m.docs, stored)
	return stored["_id"]
}

// Stream sends all matching documents over a channel in insertion order.
func (m *DataStore) Stream(ctx context.Context, query storagemodels.Query, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult {
	options := storagemodels.DefaultStreamOptions()
	for _, opt := range opts {
		opt(&options)
	}

	resultCh := make(chan storagemodels.StreamResult, options.BufferSize)

	go func() {
		defer close(resultCh)

		if m.findError != nil {
			resultCh <- storagemodels.StreamResult{
				Error: m.findError,
				Meta:  storagemodels.StreamMeta{Timestamp: time.Now()},
			}
			return
		}

		m.mu.RLock()
		snapshot := make([]storagemodels.Document, len(m.docs))
		copy(snapshot, m.docs)
		m.mu.RUnlock()

		var index int64
		for _, doc := range snapshot {
			if !matches(doc, query) {
				continue
			}

			raw, err := bson.Marshal(doc)
			result := storagemodels.StreamResult{
				Document: doc,
				Raw:      raw,
				Error:    err,
				Meta:     storagemodels.StreamMeta{Index: index, Timestamp: time.Now()},
			}
			index++

			select {
			case <-ctx.Done():
				return
			case resultCh <- result:
			}
		}
	}()

	return resultCh
}

// matches reports whether doc satisfies every top-level equality in query.
func matches(doc storagemodels.Document, query storagemodels.Query) bool {
	for k, want := range query {
		got, ok := doc[k]
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}

// applySet copies the update fields into doc, reporting whether any value
// actually changed.
func applySet(doc storagemodels.Document, update storagemodels.Document) bool {
	changed := false
	for k, v := range update {
		if old, ok := doc[k]; !ok || !reflect.DeepEqual(old, v) {
			changed = true
		}
		doc[k] = v
	}
	return changed
}

// project applies a projection to a copy of doc. Any truthy flag switches
// the projection into inclusion mode; otherwise the flagged fields are
// excluded. The "_id" field is kept under inclusion unless excluded
// explicitly, mirroring the store's behavior.
func project(doc storagemodels.Document, projection storagemodels.Projection) storagemodels.Document {
	out := storagemodels.Document{}

	if len(projection) == 0 {
		for k, v := range doc {
			out[k] = v
		}
		return out
	}

	inclusive := false
	for _, flag := range projection {
		if truthy(flag) {
			inclusive = true
			break
		}
	}

	if inclusive {
		for k, flag := range projection {
			if !truthy(flag) {
				continue
			}
			if v, ok := doc[k]; ok {
				out[k] = v
			}
		}
		if flag, ok := projection["_id"]; !ok || truthy(flag) {
			if v, ok := doc["_id"]; ok {
				out["_id"] = v
			}
		}
		return out
	}

	for k, v := range doc {
		if _, excluded := projection[k]; excluded {
			continue
		}
		out[k] = v
	}
	return out
}

func truthy(v interface{}) bool {
	switch t := v.(type) {
	case bool:
		return t
	case int:
		return t != 0
	case int32:
		return t != 0
	case int64:
		return t != 0
	case float64:
		return t != 0
	default:
		return v != nil
	}
}
