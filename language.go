package nls

import (
	"context"
	"net/http"
	"strings"

	"google.golang.org/grpc/metadata"
)

type contextKey string

func (c contextKey) String() string {
	return "nls/" + string(c)
}

const ctxKeyLanguage = contextKey("languageKey")

// LanguageToContext adds language preferences to the current supplied context.
func LanguageToContext(ctx context.Context, lang []string) context.Context {
	return context.WithValue(ctx, ctxKeyLanguage, lang)
}

// LanguageFromContext extracts language preferences from the supplied context if any exist.
func LanguageFromContext(ctx context.Context) []string {
	languages, ok := ctx.Value(ctxKeyLanguage).([]string)
	if !ok {
		return nil
	}

	return languages
}

// LanguageToMap stores language preferences in a metadata map, for
// propagation on queue messages and similar carriers.
func LanguageToMap(m map[string]string, lang []string) map[string]string {
	m["lang"] = strings.Join(lang, ",")
	return m
}

// LanguageFromMap extracts language preferences stored by LanguageToMap.
func LanguageFromMap(m map[string]string) []string {
	lang, ok := m["lang"]
	if !ok {
		return nil
	}
	return strings.Split(lang, ",")
}

// ExtractLanguageFromHTTPRequest pulls the caller's language preferences
// from the lang form value and the Accept-Language header, in that order.
func ExtractLanguageFromHTTPRequest(req *http.Request) []string {
	lang := req.FormValue("lang")

	acceptedLang := ExtractLanguageFromHTTPHeader(req.Header)

	var languages []string
	if lang != "" {
		languages = append(languages, lang)
	}

	return append(languages, acceptedLang...)
}

// ExtractLanguageFromHTTPHeader pulls language preferences from the Accept-Language header.
func ExtractLanguageFromHTTPHeader(header http.Header) []string {
	acceptLanguageHeader := header.Get("Accept-Language")
	return strings.Split(acceptLanguageHeader, ",")
}

// ExtractLanguageFromGrpcRequest pulls language preferences from incoming grpc metadata.
func ExtractLanguageFromGrpcRequest(ctx context.Context) []string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return []string{}
	}

	header, ok := md["accept-language"]
	if !ok || len(header) == 0 {
		return []string{}
	}
	acceptLangHeader := header[0]
	return strings.Split(acceptLangHeader, ",")
}
