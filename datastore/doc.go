/*
Package datastore defines the core interface for DocStore's persistence layer.

The main interface is DataStore, which provides the document operations of a
store client bound to one database/collection pair:

	type DataStore interface {
	    FindOne(ctx context.Context, query storagemodels.Query, projection storagemodels.Projection) (storagemodels.Document, error)
	    FindMany(ctx context.Context, query storagemodels.Query, projection storagemodels.Projection, limit int64) ([]storagemodels.Document, error)
	    UpdateOne(ctx context.Context, query storagemodels.Query, update storagemodels.Document, upsert bool) (*storagemodels.UpdateResult, error)
	    UpdateMany(ctx context.Context, query storagemodels.Query, update storagemodels.Document, upsert bool) (*storagemodels.UpdateResult, error)
	    InsertOne(ctx context.Context, document storagemodels.Document) (interface{}, error)
	    InsertMany(ctx context.Context, documents []storagemodels.Document) ([]interface{}, error)
	    Stream(ctx context.Context, query storagemodels.Query, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult
	}

Implementations:
  - mongodb: MongoDB implementation over the official driver
  - mock: In-memory mock implementation for testing

Each method forwards to a single driver primitive and normalizes the result
shape: nil stands for "no result", inserted identifiers are extracted from
the driver's result types.
*/
package datastore
