/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"sort"
	"sync"
)

// Binding names the database and collection a store is permanently bound to.
type Binding struct {
	Database   string `yaml:"database"`
	Collection string `yaml:"collection"`
}

// BindingRegistry is a registry of logical store names and their
// database/collection bindings.

var (
	bindingRegistry = make(map[string]Binding)
	mu              sync.RWMutex
)

// RegisterBinding associates a logical store name with a database/collection
// binding. Registering the same name twice overwrites the previous binding.
func RegisterBinding(name string, b Binding) {
	mu.Lock()
	defer mu.Unlock()
	bindingRegistry[name] = b
}

// GetBinding retrieves the binding for a logical store name, if any.
func GetBinding(name string) (Binding, bool) {
	mu.RLock()
	defer mu.RUnlock()
	b, ok := bindingRegistry[name]
	return b, ok
}

// Bindings returns the sorted list of registered store names.
func Bindings() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(bindingRegistry))
	for name := range bindingRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Reset removes all registered bindings. Intended for tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	bindingRegistry = make(map[string]Binding)
}
