/*
Package docstore provides a thin storage abstraction over a MongoDB document
store: store clients permanently bound to one database/collection pair, with
a small pass-through operation set and light result-shape normalization.

Key Features:
  - Explicit connection configuration (struct, environment or YAML file)
  - A dependency-injected DataStore interface for testable consumers
  - Streaming reads with progress tracking
  - Semantic error types for better error handling
  - Thread-safe storage management
  - An in-memory mock implementation for testing

Basic Usage:

	// Load connection settings from the environment
	cfg, err := mongodb.ConfigFromEnv()

	// Create a store bound to one database and collection
	users, err := mongodb.New(cfg, "app", "users")
	defer users.Close()

	// Use the store
	id, err := users.InsertOne(ctx, storagemodels.Document{"name": "John"})
	doc, err := users.FindOne(ctx, storagemodels.Query{"_id": id}, nil)

Named bindings decouple application code from the physical layout:

	fileCfg, err := docstore.LoadConfig("docstore.yaml")
	fileCfg.RegisterBindings()

	users, err := docstore.Open(&fileCfg.Connection, "users")

For more information, see the documentation at https://github.com/suparena/docstore
*/
package docstore
