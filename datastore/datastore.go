/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"

	"github.com/suparena/docstore/storagemodels"
)

// DataStore is the operation set of a store client bound to a single
// database/collection pair. Implementations forward each call to one
// underlying driver primitive; they add no retries, timeouts or
// partial-failure recovery of their own.
type DataStore interface {
	// FindOne returns the first document matching query, with projection
	// applied if non-nil. It returns nil, nil when nothing matches.
	FindOne(ctx context.Context, query storagemodels.Query, projection storagemodels.Projection) (storagemodels.Document, error)

	// FindMany returns all matching documents in store order. A limit
	// greater than zero caps the result count; a limit of zero means no
	// limit, so zero and absent are indistinguishable.
	FindMany(ctx context.Context, query storagemodels.Query, projection storagemodels.Projection, limit int64) ([]storagemodels.Document, error)

	// UpdateOne applies update as a field-set operation to at most one
	// matching document, inserting a new document from update when upsert
	// is true and nothing matched. It returns nil when the modified count
	// is zero; an upsert that inserted reports a zero modified count too.
	UpdateOne(ctx context.Context, query storagemodels.Query, update storagemodels.Document, upsert bool) (*storagemodels.UpdateResult, error)

	// UpdateMany is UpdateOne over all matching documents; counts reflect
	// totals across all matches.
	UpdateMany(ctx context.Context, query storagemodels.Query, update storagemodels.Document, upsert bool) (*storagemodels.UpdateResult, error)

	// InsertOne inserts document and returns the identifier the store
	// assigned, or nil when the store reports none.
	InsertOne(ctx context.Context, document storagemodels.Document) (interface{}, error)

	// InsertMany inserts documents in order and returns the assigned
	// identifiers in the same order, or nil when none were assigned.
	InsertMany(ctx context.Context, documents []storagemodels.Document) ([]interface{}, error)

	// Stream returns all matching documents over a channel, decoded one at
	// a time. The channel is closed when the result set is exhausted, an
	// error is delivered, or ctx is cancelled.
	Stream(ctx context.Context, query storagemodels.Query, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult
}
