package nls

import "context"

// StaticResolver resolves keys against a fixed in memory mapping. It
// exists for tests and for callers whose messages never leave code, and
// carries the same missing key and show keys semantics as the bundle
// backed resolver.
type StaticResolver struct {
	messages map[string]string
	showKeys bool
}

var _ Resolver = new(StaticResolver)

// NewStaticResolver creates a resolver over the supplied mapping. The
// mapping is copied so later mutation by the caller cannot leak in.
func NewStaticResolver(messages map[string]string, opts ...Option) *StaticResolver {
	s := defaultSettings()
	for _, opt := range opts {
		opt(s)
	}

	copied := make(map[string]string, len(messages))
	for k, v := range messages {
		copied[k] = v
	}

	return &StaticResolver{messages: copied, showKeys: s.showKeys}
}

func (r *StaticResolver) Resolve(_ context.Context, key string) string {
	if r.showKeys {
		return key
	}

	message, ok := r.messages[key]
	if !ok {
		return fallback(key)
	}

	return message
}
