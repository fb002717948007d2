// Package http carries language preferences from HTTP requests into the
// request context.
package http

import (
	"net/http"

	"github.com/tulivu/nls"
)

// LanguageMiddleware extracts language information from the request and
// sets it in the context for downstream resolvers.
func LanguageMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		l := nls.ExtractLanguageFromHTTPRequest(r)

		ctx := nls.LanguageToContext(r.Context(), l)
		r = r.WithContext(ctx)

		next.ServeHTTP(w, r)
	})
}
