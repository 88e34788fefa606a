/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package mock_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/suparena/docstore/datastore"
	"github.com/suparena/docstore/datastore/mock"
	"github.com/suparena/docstore/storagemodels"
)

// The mock must satisfy the DataStore interface.
var _ datastore.DataStore = (*mock.DataStore)(nil)

func TestMockDataStore(t *testing.T) {
	ctx := context.Background()

	t.Run("RoundTrip", func(t *testing.T) {
		mockStore := mock.New()

		doc := storagemodels.Document{"name": "alpha", "score": 42}
		id, err := mockStore.InsertOne(ctx, doc)
		if err != nil {
			t.Fatalf("InsertOne failed: %v", err)
		}
		if id == nil {
			t.Fatal("Expected an assigned identifier")
		}

		found, err := mockStore.FindOne(ctx, storagemodels.Query{"_id": id}, nil)
		if err != nil {
			t.Fatalf("FindOne failed: %v", err)
		}
		if found == nil {
			t.Fatal("Expected to find the inserted document")
		}
		if found["name"] != "alpha" || found["score"] != 42 {
			t.Errorf("Round trip mismatch: %v", found)
		}
		if found["_id"] != id {
			t.Errorf("Expected identifier %v, got %v", id, found["_id"])
		}
	})

	t.Run("FindOneNoMatchReturnsNil", func(t *testing.T) {
		mockStore := mock.New()

		doc, err := mockStore.FindOne(ctx, storagemodels.Query{"name": "missing"}, nil)
		if err != nil {
			t.Fatalf("Expected nil error on miss, got: %v", err)
		}
		if doc != nil {
			t.Fatalf("Expected nil document on miss, got: %v", doc)
		}
	})

	t.Run("FindManyLimit", func(t *testing.T) {
		mockStore := mock.New()

		for i := 0; i < 5; i++ {
			if _, err := mockStore.InsertOne(ctx, storagemodels.Document{"kind": "thing", "n": i}); err != nil {
				t.Fatalf("InsertOne failed: %v", err)
			}
		}

		limited, err := mockStore.FindMany(ctx, storagemodels.Query{"kind": "thing"}, nil, 3)
		if err != nil {
			t.Fatalf("FindMany failed: %v", err)
		}
		if len(limited) != 3 {
			t.Fatalf("Expected 3 documents with limit 3, got %d", len(limited))
		}

		// Limit zero is "no limit" in this contract, not "zero results".
		all, err := mockStore.FindMany(ctx, storagemodels.Query{"kind": "thing"}, nil, 0)
		if err != nil {
			t.Fatalf("FindMany failed: %v", err)
		}
		if len(all) != 5 {
			t.Fatalf("Expected all 5 documents with limit 0, got %d", len(all))
		}
		for i, doc := range all {
			if doc["n"] != i {
				t.Errorf("Document %d out of insertion order: %v", i, doc)
			}
		}
	})

	t.Run("Projection", func(t *testing.T) {
		mockStore := mock.New()

		if _, err := mockStore.InsertOne(ctx, storagemodels.Document{"name": "alpha", "email": "a@b.c", "secret": "x"}); err != nil {
			t.Fatalf("InsertOne failed: %v", err)
		}

		doc, err := mockStore.FindOne(ctx, nil, storagemodels.Projection{"name": 1})
		if err != nil {
			t.Fatalf("FindOne failed: %v", err)
		}
		if doc["name"] != "alpha" {
			t.Errorf("Expected the included field, got: %v", doc)
		}
		if _, ok := doc["secret"]; ok {
			t.Errorf("Expected non-included fields to be dropped, got: %v", doc)
		}
		if _, ok := doc["_id"]; !ok {
			t.Errorf("Expected _id to survive an inclusion projection, got: %v", doc)
		}

		doc, err = mockStore.FindOne(ctx, nil, storagemodels.Projection{"secret": 0})
		if err != nil {
			t.Fatalf("FindOne failed: %v", err)
		}
		if _, ok := doc["secret"]; ok {
			t.Errorf("Expected the excluded field to be dropped, got: %v", doc)
		}
		if doc["name"] != "alpha" {
			t.Errorf("Expected other fields to survive an exclusion projection, got: %v", doc)
		}
	})

	t.Run("UpdateOne", func(t *testing.T) {
		mockStore := mock.New()

		if _, err := mockStore.InsertOne(ctx, storagemodels.Document{"name": "alpha", "score": 1}); err != nil {
			t.Fatalf("InsertOne failed: %v", err)
		}

		res, err := mockStore.UpdateOne(ctx, storagemodels.Query{"name": "alpha"}, storagemodels.Document{"score": 2}, true)
		if err != nil {
			t.Fatalf("UpdateOne failed: %v", err)
		}
		if res == nil || res.MatchesFound != 1 || res.ModifiedResults != 1 {
			t.Fatalf("Unexpected result: %+v", res)
		}

		doc, err := mockStore.FindOne(ctx, storagemodels.Query{"name": "alpha"}, nil)
		if err != nil {
			t.Fatalf("FindOne failed: %v", err)
		}
		if doc["score"] != 2 {
			t.Errorf("Expected the update to apply, got: %v", doc)
		}
	})

	t.Run("UpsertInsertsFromUpdate", func(t *testing.T) {
		mockStore := mock.New()

		res, err := mockStore.UpdateOne(ctx, storagemodels.Query{"name": "ghost"}, storagemodels.Document{"name": "ghost", "status": "new"}, true)
		if err != nil {
			t.Fatalf("UpdateOne failed: %v", err)
		}
		// Nil result even though a document was inserted: the zero modified
		// count conflates the upsert insert with a no-op.
		if res != nil {
			t.Fatalf("Expected nil result for an upsert insert, got: %+v", res)
		}

		if mockStore.Len() != 1 {
			t.Fatalf("Expected exactly one inserted document, got %d", mockStore.Len())
		}
		doc, err := mockStore.FindOne(ctx, storagemodels.Query{"name": "ghost"}, nil)
		if err != nil {
			t.Fatalf("FindOne failed: %v", err)
		}
		if doc == nil || doc["status"] != "new" {
			t.Errorf("Expected a document built from the update payload, got: %v", doc)
		}
	})

	t.Run("NoUpsertLeavesStoreUntouched", func(t *testing.T) {
		mockStore := mock.New()

		res, err := mockStore.UpdateOne(ctx, storagemodels.Query{"name": "ghost"}, storagemodels.Document{"status": "new"}, false)
		if err != nil {
			t.Fatalf("UpdateOne failed: %v", err)
		}
		if res != nil {
			t.Fatalf("Expected nil result, got: %+v", res)
		}
		if mockStore.Len() != 0 {
			t.Fatalf("Expected no documents, got %d", mockStore.Len())
		}
	})

	t.Run("UpdateMany", func(t *testing.T) {
		mockStore := mock.New()

		for i := 0; i < 3; i++ {
			if _, err := mockStore.InsertOne(ctx, storagemodels.Document{"kind": "thing", "n": i}); err != nil {
				t.Fatalf("InsertOne failed: %v", err)
			}
		}

		res, err := mockStore.UpdateMany(ctx, storagemodels.Query{"kind": "thing"}, storagemodels.Document{"status": "seen"}, false)
		if err != nil {
			t.Fatalf("UpdateMany failed: %v", err)
		}
		if res == nil || res.MatchesFound != 3 || res.ModifiedResults != 3 {
			t.Fatalf("Expected totals across all matches, got: %+v", res)
		}
	})

	t.Run("InsertMany", func(t *testing.T) {
		mockStore := mock.New()

		docs := []storagemodels.Document{{"a": 1}, {"b": 2}}
		ids, err := mockStore.InsertMany(ctx, docs)
		if err != nil {
			t.Fatalf("InsertMany failed: %v", err)
		}
		if len(ids) != 2 {
			t.Fatalf("Expected 2 identifiers, got %d", len(ids))
		}

		// Each identifier must resolve to the corresponding input document.
		first, err := mockStore.FindOne(ctx, storagemodels.Query{"_id": ids[0]}, nil)
		if err != nil {
			t.Fatalf("FindOne failed: %v", err)
		}
		if first == nil || first["a"] != 1 {
			t.Errorf("Identifier 0 resolved to the wrong document: %v", first)
		}
		second, err := mockStore.FindOne(ctx, storagemodels.Query{"_id": ids[1]}, nil)
		if err != nil {
			t.Fatalf("FindOne failed: %v", err)
		}
		if second == nil || second["b"] != 2 {
			t.Errorf("Identifier 1 resolved to the wrong document: %v", second)
		}
	})

	t.Run("ErrorSimulation", func(t *testing.T) {
		findErr := fmt.Errorf("find boom")
		insertErr := fmt.Errorf("insert boom")
		updateErr := fmt.Errorf("update boom")

		mockStore := mock.New().
			WithFindError(findErr).
			WithInsertError(insertErr).
			WithUpdateError(updateErr)

		if _, err := mockStore.FindOne(ctx, nil, nil); err != findErr {
			t.Errorf("Expected find error, got: %v", err)
		}
		if _, err := mockStore.InsertOne(ctx, storagemodels.Document{}); err != insertErr {
			t.Errorf("Expected insert error, got: %v", err)
		}
		if _, err := mockStore.UpdateOne(ctx, nil, nil, true); err != updateErr {
			t.Errorf("Expected update error, got: %v", err)
		}
	})

	t.Run("Stream", func(t *testing.T) {
		mockStore := mock.New()

		for i := 0; i < 4; i++ {
			if _, err := mockStore.InsertOne(ctx, storagemodels.Document{"kind": "thing", "n": i}); err != nil {
				t.Fatalf("InsertOne failed: %v", err)
			}
		}

		count := 0
		for result := range mockStore.Stream(ctx, storagemodels.Query{"kind": "thing"}) {
			if result.Error != nil {
				t.Fatalf("Stream error: %v", result.Error)
			}
			if result.Meta.Index != int64(count) {
				t.Errorf("Expected index %d, got %d", count, result.Meta.Index)
			}
			count++
		}
		if count != 4 {
			t.Fatalf("Expected 4 streamed documents, got %d", count)
		}
	})
}
