// Package nls resolves message keys to localized strings backed by
// resource bundles. Catalogs are loaded once at construction time and
// are immutable afterwards, so a resolver is safe for concurrent use
// without locking.
package nls

import (
	"context"
	"errors"
)

// MissingKeySentinel wraps a key that has no catalog entry. The pattern
// is scanned for by QA tooling, so it must stay exactly "!key!".
const MissingKeySentinel = "!"

// ErrBundleNotFound is returned at construction when no message catalog
// can be loaded for the given bundle name.
var ErrBundleNotFound = errors.New("nls: bundle not found")

// Resolver resolves a message key to a human readable string. A missing
// key never fails resolution; implementations return a marked fallback
// instead so callers always have something to render.
type Resolver interface {
	Resolve(ctx context.Context, key string) string
}

// fallback marks a key whose message is missing from the catalog.
func fallback(key string) string {
	return MissingKeySentinel + key + MissingKeySentinel
}
