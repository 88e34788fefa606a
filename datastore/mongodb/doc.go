/*
Package mongodb provides a MongoDB implementation of the DataStore interface.

A Store is permanently bound to one database and one collection. Both names
are required at construction; a missing name is reported as a definition
error before any connection is attempted.

Connection configuration is an explicit Config value:

	cfg := &mongodb.Config{
	    Username: "app",
	    Password: "secret",
	    Host:     "cluster0.example.mongodb.net",
	}
	store, err := mongodb.New(cfg, "app", "users")

or can be loaded from the process environment (DB_USERNAME, DB_PASSWORD,
DB_URL, with .env support):

	cfg, err := mongodb.ConfigFromEnv()

Each operation forwards to a single driver primitive:

	doc, err := store.FindOne(ctx, storagemodels.Query{"email": "a@b.c"}, nil)
	docs, err := store.FindMany(ctx, nil, nil, 10)
	res, err := store.UpdateOne(ctx, query, updates, true)
	id, err := store.InsertOne(ctx, doc)

Result shapes are lightly normalized: a FindOne miss is nil, nil rather than
a driver error; an update that modified nothing returns a nil result; insert
identifiers are extracted from the driver's result types. Everything else,
including network and authentication failures, propagates unmodified from
the driver. The store adds no retries, timeouts or pooling policy of its
own; those remain the driver's responsibility.

For tests, NewWithCollection accepts any implementation of the small
Collection interface in place of a live collection handle.
*/
package mongodb
