/*
Package registry manages collection bindings for DocStore.

A binding names the database and collection a store instance is permanently
bound to. Registering bindings under logical names decouples application code
from the physical layout of the document store:

	registry.RegisterBinding("users", registry.Binding{
	    Database:   "app",
	    Collection: "users",
	})

	binding, ok := registry.GetBinding("users")

The registry is thread-safe and should be populated during initialization,
typically in init() functions or from a loaded configuration file.
*/
package registry
