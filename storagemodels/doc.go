/*
Package storagemodels defines the data structures used throughout DocStore.

Key Types:

Document, Query and Projection:
Dynamic field-to-value mappings forwarded verbatim to the store:

	query := storagemodels.Query{"status": "active"}
	projection := storagemodels.Projection{"name": 1, "email": 1}

UpdateResult:
The normalized outcome of an update operation:

	type UpdateResult struct {
	    MatchesFound    int64               // documents matched by the query
	    ModifiedResults int64               // documents actually modified
	    Raw             *mongo.UpdateResult // driver's unmodified result
	}

StreamResult:
Results from streaming operations with metadata:

	type StreamResult struct {
	    Document Document   // The decoded document
	    Raw      bson.Raw   // Raw BSON as returned by the cursor
	    Error    error      // Document-specific error, if any
	    Meta     StreamMeta // Metadata about this document
	}

StreamOptions:
Configuration for streaming behavior:

	opts := []StreamOption{
	    WithBufferSize(100),
	    WithBatchSize(25),
	    WithProgressHandler(progressFunc),
	}

These types provide a consistent interface across different storage implementations.
*/
package storagemodels
