/*
Package errors provides semantic error types for the DocStore library.

The package defines common error scenarios with specific types that can be
checked using the standard errors.Is() function or the provided helper functions.

Common Errors:

	var (
	    ErrInvalidDefinition = errors.New("invalid store definition")
	    ErrMissingEnv        = errors.New("required environment variable not set")
	    ErrInvalidInput      = errors.New("invalid input")
	)

Usage:

	// Check error type
	store, err := mongodb.New(cfg, database, collection)
	if err != nil {
	    if errors.IsInvalidDefinition(err) {
	        // The database and/or collection name was missing
	        return nil, err
	    }
	    return nil, err
	}

	// Create typed errors
	err := errors.NewDefinitionError(database, collection)

Store-level failures (network errors, authentication failures, malformed
queries) are never translated by this library; they propagate unmodified
from the underlying driver.
*/
package errors
