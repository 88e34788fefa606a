/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package docstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/suparena/docstore/datastore"
	"github.com/suparena/docstore/datastore/mongodb"
	"github.com/suparena/docstore/registry"
)

// Storage is a higher-level interface that manages a collection of DataStore instances.
type Storage interface {
	// RegisterDataStore registers a DataStore under a given key (for example, "users" or "orders").
	RegisterDataStore(key string, ds datastore.DataStore) error
	// GetDataStore retrieves the registered DataStore for a given key.
	GetDataStore(key string) (datastore.DataStore, error)
	// RemoveDataStore deletes the DataStore registered under the given key.
	RemoveDataStore(key string) error
	// List returns the sorted keys of all registered DataStores.
	List() []string
}

// storageManager is a thread-safe implementation of the Storage interface.
type storageManager struct {
	mu     sync.RWMutex
	stores map[string]datastore.DataStore
}

// NewStorageManager creates and returns a new Storage implementation.
func NewStorageManager() Storage {
	return &storageManager{
		stores: make(map[string]datastore.DataStore),
	}
}

// RegisterDataStore stores the provided DataStore under the given key.
func (sm *storageManager) RegisterDataStore(key string, ds datastore.DataStore) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if _, exists := sm.stores[key]; exists {
		return fmt.Errorf("datastore with key %q already registered", key)
	}
	sm.stores[key] = ds
	return nil
}

// GetDataStore retrieves the DataStore associated with the given key.
func (sm *storageManager) GetDataStore(key string) (datastore.DataStore, error) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	ds, exists := sm.stores[key]
	if !exists {
		return nil, fmt.Errorf("datastore with key %q not found", key)
	}
	return ds, nil
}

// RemoveDataStore deletes the DataStore associated with the given key.
func (sm *storageManager) RemoveDataStore(key string) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if _, exists := sm.stores[key]; !exists {
		return fmt.Errorf("datastore with key %q not found", key)
	}
	delete(sm.stores, key)
	return nil
}

// List returns the sorted keys of all registered DataStores.
func (sm *storageManager) List() []string {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	keys := make([]string, 0, len(sm.stores))
	for k := range sm.stores {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Open resolves the registered binding for a logical store name and
// constructs a MongoDB-backed DataStore bound to it.
func Open(cfg *mongodb.Config, name string) (datastore.DataStore, error) {
	return OpenWithContext(context.Background(), cfg, name)
}

// OpenWithContext is Open with context control over connection establishment.
func OpenWithContext(ctx context.Context, cfg *mongodb.Config, name string) (datastore.DataStore, error) {
	binding, ok := registry.GetBinding(name)
	if !ok {
		return nil, fmt.Errorf("no binding registered for store %q", name)
	}

	store, err := mongodb.NewWithContext(ctx, cfg, binding.Database, binding.Collection)
	if err != nil {
		return nil, fmt.Errorf("failed to open store %q: %w", name, err)
	}
	return store, nil
}
