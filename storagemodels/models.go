/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Document is a single record in the store: an arbitrary field-to-value
// mapping. Identity is an opaque "_id" value assigned by the store on insert.
type Document map[string]interface{}

// Query maps field names to match criteria. The shape is opaque to this
// library and is forwarded verbatim to the store, so any operator the
// underlying driver understands (e.g. "$gt", "$in") may be used.
type Query map[string]interface{}

// Projection maps field names to inclusion/exclusion flags, limiting which
// fields of a document are returned. A nil Projection returns all fields.
type Projection map[string]interface{}

// UpdateResult describes the outcome of an UpdateOne or UpdateMany call.
type UpdateResult struct {
	// MatchesFound is the number of documents matched by the query.
	MatchesFound int64
	// ModifiedResults is the number of documents actually modified.
	ModifiedResults int64
	// Raw is the driver's unmodified result, including any upserted identifier.
	Raw *mongo.UpdateResult
}

// ToDocument converts an arbitrary value into a Document by round-tripping
// it through BSON. Useful for persisting typed models through the map-based
// store contract.
func ToDocument(v interface{}) (Document, error) {
	data, err := bson.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal value: %w", err)
	}

	var doc Document
	if err := bson.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal value into document: %w", err)
	}
	return doc, nil
}

// FromDocument decodes a Document into the value pointed to by out.
func FromDocument(doc Document, out interface{}) error {
	data, err := bson.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	if err := bson.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to unmarshal document: %w", err)
	}
	return nil
}
