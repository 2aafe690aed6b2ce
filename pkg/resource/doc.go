// Package resource provides a generic CRUD client for one REST collection.
//
// A Client is bound to a single collection path (e.g. "/api/inventory") and
// exposes List, Get, Create, Update, and Delete. Response parsing, failure
// detection, and error notification are centralized so every call site
// behaves identically.
//
// Usage:
//
//	c, err := resource.New("http://localhost:5000/api/inventory")
//	if err != nil {
//	    return err
//	}
//	res, err := c.Get(ctx, "42")
//	if err != nil {
//	    return err
//	}
//	var item InventoryItem
//	if err := res.Decode(&item); err != nil {
//	    return err
//	}
//
// Failures are surfaced two ways at once: the returned error (an *APIError
// for HTTP-level failures) and an optional Notifier injected at construction
// time, which receives a human-readable message for user-facing status UIs.
// The notifier is best-effort; a panicking notifier never masks the result.
package resource
