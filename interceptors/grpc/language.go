// Package grpc carries language preferences from grpc metadata into the
// request context.
package grpc

import (
	"context"

	"google.golang.org/grpc"

	"github.com/tulivu/nls"
)

// LanguageUnaryInterceptor Simple grpc interceptor to extract the language supplied via metadata.
func LanguageUnaryInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any,
		_ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		l := nls.ExtractLanguageFromGrpcRequest(ctx)
		if l != nil {
			ctx = nls.LanguageToContext(ctx, l)
		}

		return handler(ctx, req)
	}
}

// LanguageStreamInterceptor extracts the language supplied via metadata for server streams.
func LanguageStreamInterceptor() grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, _ *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		ctx := ss.Context()
		l := nls.ExtractLanguageFromGrpcRequest(ctx)
		if l == nil {
			return handler(srv, ss)
		}

		ctx = nls.LanguageToContext(ctx, l)

		// Wrap the original stream so handlers always receive a stream
		// from which they can get the language aware context.
		languageStream := &serverStreamWrapper{ctx: ctx, ServerStream: ss}

		return handler(srv, languageStream)
	}
}

// serverStreamWrapper holds the language aware context for the server stream.
type serverStreamWrapper struct {
	ctx context.Context
	grpc.ServerStream
}

func (w *serverStreamWrapper) Context() context.Context {
	return w.ctx
}
