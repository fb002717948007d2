package nls

import (
	"context"
	"net/http"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pitabwire/util"
)

// BundleResolver resolves keys against message catalogs loaded once at
// construction. The zero value is not usable; always construct via New.
type BundleResolver struct {
	name            string
	bundle          *i18n.Bundle
	defaultLanguage string
	showKeys        bool
}

var _ Resolver = new(BundleResolver)

// withDefaultLanguage copies the preference list and appends the default
// language last, leaving the caller's slice untouched.
func withDefaultLanguage(languages []string, defaultLanguage string) []string {
	out := make([]string, 0, len(languages)+1)
	out = append(out, languages...)
	return append(out, defaultLanguage)
}

// New creates a resolver bound to the named bundle, loading that
// bundle's catalog for every configured language. Failing to find a
// catalog is a configuration error and fails construction; it is never
// retried.
func New(name string, opts ...Option) (*BundleResolver, error) {
	s := defaultSettings()
	for _, opt := range opts {
		opt(s)
	}

	bundle, err := newBundle(name, s)
	if err != nil {
		return nil, err
	}

	return &BundleResolver{
		name:            name,
		bundle:          bundle,
		defaultLanguage: s.defaultLanguage,
		showKeys:        s.showKeys,
	}, nil
}

// Name returns the bundle name this resolver is bound to.
func (r *BundleResolver) Name() string {
	return r.name
}

// Bundle accesses the underlying translation bundle.
func (r *BundleResolver) Bundle() *i18n.Bundle {
	return r.bundle
}

// Resolve maps a key to its message for the caller's language. In show
// message keys mode the key is echoed back untouched so developers can
// see which key a given surface renders. A missing key yields the
// sentinel wrapped form, never an error.
func (r *BundleResolver) Resolve(ctx context.Context, key string) string {
	if r.showKeys {
		return key
	}

	languages := withDefaultLanguage(LanguageFromContext(ctx), r.defaultLanguage)

	localizer := i18n.NewLocalizer(r.bundle, languages...)

	message, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: key})
	if err != nil {
		util.Log(ctx).WithField("bundle", r.name).WithField("key", key).
			Debug("Resolve -- no message for key")
		return fallback(key)
	}

	return message
}

// Localize performs a quick translation based on the supplied message key.
func (r *BundleResolver) Localize(ctx context.Context, request any, key string) string {
	return r.LocalizeWithMap(ctx, request, key, map[string]any{})
}

// LocalizeWithMap performs a translation with variables based on the supplied message key.
func (r *BundleResolver) LocalizeWithMap(
	ctx context.Context,
	request any,
	key string,
	variables map[string]any,
) string {
	return r.LocalizeWithMapAndCount(ctx, request, key, variables, 1)
}

// LocalizeWithMapAndCount performs a translation with variables based on
// the supplied message key and can pluralize.
func (r *BundleResolver) LocalizeWithMapAndCount(
	ctx context.Context,
	request any,
	key string,
	variables map[string]any,
	count int,
) string {
	if r.showKeys {
		return key
	}

	var languageSlice []string

	switch v := request.(type) {
	case *http.Request:
		languageSlice = ExtractLanguageFromHTTPRequest(v)

	case context.Context:
		languageSlice = ExtractLanguageFromGrpcRequest(v)

	case string:
		languageSlice = []string{v}

	case []string:
		languageSlice = v

	case nil:
		languageSlice = LanguageFromContext(ctx)

	default:
		logger := util.Log(ctx).WithField("key", key).WithField("variables", variables)
		logger.Warn("LocalizeWithMapAndCount -- no valid request object found, use string, []string, context or http.Request")
		return fallback(key)
	}

	languageSlice = withDefaultLanguage(languageSlice, r.defaultLanguage)

	localizer := i18n.NewLocalizer(r.bundle, languageSlice...)

	message, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: variables,
		PluralCount:  count,
	})
	if err != nil {
		util.Log(ctx).WithError(err).WithField("bundle", r.name).WithField("key", key).
			Debug("LocalizeWithMapAndCount -- could not perform translation")
		return fallback(key)
	}

	return message
}
