// Package cache memoizes rendered images by the content they were rendered
// from.
//
// The key of an entry is the JSON encoding of the content record, so two
// records with equal fields share one image. The entry carries a short
// content hash of the image bytes, suitable as a cache-busting URL parameter.
//
// A Cache consults an ordered list of stores. The default is a single
// in-memory store with no size limit; an SQLite store can be layered behind
// it to survive restarts:
//
//	db, err := cache.OpenSQLite("og.db")
//	if err != nil {
//	    return err
//	}
//	c := cache.New(cache.WithNamespace("profile"), cache.WithStore(db))
//	entry, err := c.GetOrRender(ctx, profile, renderProfile)
//
// Store failures are logged and treated as misses. Render failures are
// returned to the caller and never stored.
package cache
