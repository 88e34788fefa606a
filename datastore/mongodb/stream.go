/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	"github.com/suparena/docstore/storagemodels"
)

// Stream performs a streaming find against the bound collection with
// configurable options. Results are delivered over a buffered channel which
// is closed when the cursor is exhausted, an error is delivered, or ctx is
// cancelled. Errors are terminal; there is no retry at this layer.
func (s *Store) Stream(ctx context.Context, query storagemodels.Query, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult {
	// Apply options
	options := storagemodels.DefaultStreamOptions()
	for _, opt := range opts {
		opt(&options)
	}

	// Create buffered result channel
	resultCh := make(chan storagemodels.StreamResult, options.BufferSize)

	// Start streaming in background
	go s.streamWorker(ctx, query, options, resultCh)

	return resultCh
}

// streamWorker handles the actual streaming logic
func (s *Store) streamWorker(
	ctx context.Context,
	query storagemodels.Query,
	options storagemodels.StreamOptions,
	resultCh chan<- storagemodels.StreamResult,
) {
	defer close(resultCh)

	var index int64
	startTime := time.Now()

	reportProgress := func() {
		if options.ProgressHandler != nil {
			progress := storagemodels.StreamProgress{
				DocumentsProcessed: index,
				StartTime:          startTime,
			}

			elapsed := time.Since(startTime).Seconds()
			if elapsed > 0 {
				progress.CurrentRate = float64(progress.DocumentsProcessed) / elapsed
			}

			options.ProgressHandler(progress)
		}
	}

	findOpts := mongoopts.Find()
	if options.BatchSize > 0 {
		findOpts.SetBatchSize(options.BatchSize)
	}

	cursor, err := s.coll.Find(ctx, normalizeQuery(query), findOpts)
	if err != nil {
		resultCh <- storagemodels.StreamResult{
			Error: fmt.Errorf("find failed: %w", err),
			Meta:  storagemodels.StreamMeta{Index: index, Timestamp: time.Now()},
		}
		return
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		result := processDocument(cursor.Current, index)
		index++

		select {
		case <-ctx.Done():
			return
		case resultCh <- result:
		}

		// Report on batch boundaries.
		if options.BatchSize > 0 && index%int64(options.BatchSize) == 0 {
			reportProgress()
		}
	}

	if err := cursor.Err(); err != nil {
		resultCh <- storagemodels.StreamResult{
			Error: fmt.Errorf("cursor failed: %w", err),
			Meta:  storagemodels.StreamMeta{Index: index, Timestamp: time.Now()},
		}
		return
	}

	// Final progress report
	reportProgress()
}

// processDocument decodes one raw cursor document into a stream result
func processDocument(raw bson.Raw, index int64) storagemodels.StreamResult {
	meta := storagemodels.StreamMeta{
		Index:     index,
		Timestamp: time.Now(),
	}

	// The cursor reuses its buffer between Next calls; copy the raw bytes.
	rawCopy := make(bson.Raw, len(raw))
	copy(rawCopy, raw)

	var doc storagemodels.Document
	if err := bson.Unmarshal(rawCopy, &doc); err != nil {
		return storagemodels.StreamResult{
			Error: fmt.Errorf("failed to decode document: %w", err),
			Raw:   rawCopy,
			Meta:  meta,
		}
	}

	return storagemodels.StreamResult{
		Document: doc,
		Raw:      rawCopy,
		Meta:     meta,
	}
}
