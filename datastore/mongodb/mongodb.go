/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package mongodb

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	"github.com/suparena/docstore/errors"
	"github.com/suparena/docstore/storagemodels"
)

// Collection is the subset of the driver collection API this store uses.
// *mongo.Collection satisfies it; tests inject fakes.
type Collection interface {
	FindOne(ctx context.Context, filter interface{}, opts ...*mongoopts.FindOneOptions) *mongo.SingleResult
	Find(ctx context.Context, filter interface{}, opts ...*mongoopts.FindOptions) (*mongo.Cursor, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*mongoopts.UpdateOptions) (*mongo.UpdateResult, error)
	UpdateMany(ctx context.Context, filter interface{}, update interface{}, opts ...*mongoopts.UpdateOptions) (*mongo.UpdateResult, error)
	InsertOne(ctx context.Context, document interface{}, opts ...*mongoopts.InsertOneOptions) (*mongo.InsertOneResult, error)
	InsertMany(ctx context.Context, documents []interface{}, opts ...*mongoopts.InsertManyOptions) (*mongo.InsertManyResult, error)
}

// Store implements datastore.DataStore by using MongoDB as the underlying
// document store. A Store is permanently bound to one database/collection
// pair for its lifetime; there is no re-binding operation.
type Store struct {
	client     *mongo.Client
	coll       Collection
	database   string
	collection string
}

// New constructs a new Store bound to the given database and collection.
// Both names are required; a missing name is reported as an
// errors.DefinitionError before any connection is attempted.
func New(cfg *Config, database, collection string) (*Store, error) {
	return NewWithContext(context.Background(), cfg, database, collection)
}

// NewWithContext constructs a new Store with context control over the
// connection establishment and initial ping.
func NewWithContext(ctx context.Context, cfg *Config, database, collection string) (*Store, error) {
	if database == "" || collection == "" {
		return nil, errors.NewDefinitionError(database, collection)
	}
	if cfg == nil {
		return nil, fmt.Errorf("mongodb config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid mongodb config: %w", err)
	}

	client, err := mongo.Connect(ctx, mongoopts.Client().ApplyURI(cfg.URI()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &Store{
		client:     client,
		coll:       client.Database(database).Collection(collection),
		database:   database,
		collection: collection,
	}, nil
}

// NewWithCollection constructs a Store over an injected collection handle.
// No connection is opened; Close is a no-op. Intended for tests and for
// callers that manage the driver client themselves.
func NewWithCollection(coll Collection, database, collection string) (*Store, error) {
	if database == "" || collection == "" {
		return nil, errors.NewDefinitionError(database, collection)
	}
	if coll == nil {
		return nil, fmt.Errorf("collection handle cannot be nil")
	}
	return &Store{
		coll:       coll,
		database:   database,
		collection: collection,
	}, nil
}

// Database returns the name of the bound database.
func (s *Store) Database() string {
	return s.database
}

// Collection returns the name of the bound collection.
func (s *Store) Collection() string {
	return s.collection
}

// Ping checks if the connection to MongoDB is alive.
func (s *Store) Ping(ctx context.Context) error {
	if s.client == nil {
		return fmt.Errorf("store has no owned client")
	}
	return s.client.Ping(ctx, nil)
}

// Close disconnects the owned driver client. It is a no-op for stores built
// over an injected collection handle and is safe to call multiple times.
func (s *Store) Close() error {
	if s.client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err := s.client.Disconnect(ctx)
	s.client = nil
	return err
}

// FindOne returns the first document matching query, or nil, nil when
// nothing matches. A non-nil projection limits the returned fields.
func (s *Store) FindOne(ctx context.Context, query storagemodels.Query, projection storagemodels.Projection) (storagemodels.Document, error) {
	opts := mongoopts.FindOne()
	if projection != nil {
		opts.SetProjection(projection)
	}

	var doc storagemodels.Document
	err := s.coll.FindOne(ctx, normalizeQuery(query), opts).Decode(&doc)
	if err != nil {
		if stderrors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return doc, nil
}

// FindMany returns all documents matching query as a materialized slice in
// store order. A limit greater than zero caps the result count; a limit of
// zero means no limit, so zero and absent are indistinguishable.
func (s *Store) FindMany(ctx context.Context, query storagemodels.Query, projection storagemodels.Projection, limit int64) ([]storagemodels.Document, error) {
	opts := mongoopts.Find()
	if projection != nil {
		opts.SetProjection(projection)
	}
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := s.coll.Find(ctx, normalizeQuery(query), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []storagemodels.Document
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// UpdateOne applies update as a "$set" operation to at most one document
// matching query. When upsert is true and nothing matched, a new document is
// inserted from update. A nil result with a nil error means the modified
// count was zero; note that an upsert which inserted a new document also
// reports a zero modified count and is therefore indistinguishable from a
// no-op through this return value. Callers that need to observe the upsert
// must inspect the raw driver result instead.
func (s *Store) UpdateOne(ctx context.Context, query storagemodels.Query, update storagemodels.Document, upsert bool) (*storagemodels.UpdateResult, error) {
	res, err := s.coll.UpdateOne(ctx, normalizeQuery(query), bson.M{"$set": update}, mongoopts.Update().SetUpsert(upsert))
	if err != nil {
		return nil, err
	}
	return normalizeUpdateResult(res), nil
}

// UpdateMany is UpdateOne applied to all documents matching query; the
// returned counts reflect totals across all matches.
func (s *Store) UpdateMany(ctx context.Context, query storagemodels.Query, update storagemodels.Document, upsert bool) (*storagemodels.UpdateResult, error) {
	res, err := s.coll.UpdateMany(ctx, normalizeQuery(query), bson.M{"$set": update}, mongoopts.Update().SetUpsert(upsert))
	if err != nil {
		return nil, err
	}
	return normalizeUpdateResult(res), nil
}

// InsertOne inserts document and returns the identifier assigned by the
// store, or nil when the store reports none.
func (s *Store) InsertOne(ctx context.Context, document storagemodels.Document) (interface{}, error) {
	res, err := s.coll.InsertOne(ctx, document)
	if err != nil {
		return nil, err
	}
	if res.InsertedID == nil {
		return nil, nil
	}
	return res.InsertedID, nil
}

// InsertMany inserts documents in order and returns the assigned identifiers
// in the same order, or nil when none were assigned.
func (s *Store) InsertMany(ctx context.Context, documents []storagemodels.Document) ([]interface{}, error) {
	payload := make([]interface{}, len(documents))
	for i, doc := range documents {
		payload[i] = doc
	}

	res, err := s.coll.InsertMany(ctx, payload)
	if err != nil {
		return nil, err
	}
	if len(res.InsertedIDs) == 0 {
		return nil, nil
	}
	return res.InsertedIDs, nil
}

// normalizeQuery substitutes a match-all filter for a nil query; the driver
// rejects nil filters.
func normalizeQuery(query storagemodels.Query) storagemodels.Query {
	if query == nil {
		return storagemodels.Query{}
	}
	return query
}

// normalizeUpdateResult maps the driver result onto the wrapper contract:
// nil when no documents were modified, the counts plus the raw driver
// result otherwise.
func normalizeUpdateResult(res *mongo.UpdateResult) *storagemodels.UpdateResult {
	if res == nil || res.ModifiedCount == 0 {
		return nil
	}
	return &storagemodels.UpdateResult{
		MatchesFound:    res.MatchedCount,
		ModifiedResults: res.ModifiedCount,
		Raw:             res,
	}
}
