package storagemodels

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// StreamResult represents a single document in a stream with metadata
type StreamResult struct {
	Document Document   // The decoded document
	Raw      bson.Raw   // Raw BSON as returned by the cursor
	Error    error      // Document-specific error, if any
	Meta     StreamMeta // Metadata about this document
}

// StreamMeta contains metadata about a streamed document
type StreamMeta struct {
	Index     int64     // Document index in stream (0-based)
	Timestamp time.Time // When the document was retrieved
}

// StreamOptions configures streaming behavior
type StreamOptions struct {
	BufferSize      int                  // Channel buffer size (default: 100)
	BatchSize       int32                // Documents per cursor batch (default: 100)
	ProgressHandler func(StreamProgress) // Optional progress callback
}

// StreamProgress tracks streaming progress
type StreamProgress struct {
	DocumentsProcessed int64     // Total documents processed
	StartTime          time.Time // When streaming started
	CurrentRate        float64   // Documents per second
}

// StreamOption is a functional option for configuring streaming
type StreamOption func(*StreamOptions)

// DefaultStreamOptions returns default streaming options
func DefaultStreamOptions() StreamOptions {
	return StreamOptions{
		BufferSize: 100,
		BatchSize:  100,
	}
}

// WithBufferSize sets the channel buffer size
func WithBufferSize(size int) StreamOption {
	return func(opts *StreamOptions) {
		opts.BufferSize = size
	}
}

// WithBatchSize sets the cursor batch size
func WithBatchSize(size int32) StreamOption {
	return func(opts *StreamOptions) {
		opts.BatchSize = size
	}
}

// WithProgressHandler sets a progress callback
func WithProgressHandler(handler func(StreamProgress)) StreamOption {
	return func(opts *StreamOptions) {
		opts.ProgressHandler = handler
	}
}
