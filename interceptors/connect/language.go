// Package connect carries language preferences from connect requests
// into the request context.
package connect

import (
	"context"

	"connectrpc.com/connect"

	"github.com/tulivu/nls"
)

// LanguageInterceptor implements connect.Interceptor for ensuring language is available in the context.
type LanguageInterceptor struct {
}

// NewLanguageInterceptor creates a new language interceptor with default options.
func NewLanguageInterceptor() (*LanguageInterceptor, error) {
	return &LanguageInterceptor{}, nil
}

// WrapUnary puts the caller's language preferences into the context of unary calls.
func (i *LanguageInterceptor) WrapUnary(next connect.UnaryFunc) connect.UnaryFunc {
	return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		l := nls.ExtractLanguageFromHTTPHeader(req.Header())

		ctx = nls.LanguageToContext(ctx, l)

		return next(ctx, req)
	}
}

// WrapStreamingClient is a pass-through for server side usage.
func (i *LanguageInterceptor) WrapStreamingClient(next connect.StreamingClientFunc) connect.StreamingClientFunc {
	return next
}

// WrapStreamingHandler puts the caller's language preferences into the context of streaming calls.
func (i *LanguageInterceptor) WrapStreamingHandler(next connect.StreamingHandlerFunc) connect.StreamingHandlerFunc {
	return func(ctx context.Context, conn connect.StreamingHandlerConn) error {
		l := nls.ExtractLanguageFromHTTPHeader(conn.RequestHeader())

		ctx = nls.LanguageToContext(ctx, l)

		return next(ctx, conn)
	}
}
