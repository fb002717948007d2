package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/tulivu/nls"
	nlshttp "github.com/tulivu/nls/interceptors/http"
)

type LanguageMiddlewareTestSuite struct {
	suite.Suite
}

func TestLanguageMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(LanguageMiddlewareTestSuite))
}

func (s *LanguageMiddlewareTestSuite) TestLanguageMiddleware() {
	testCases := []struct {
		name         string
		acceptLang   string
		expectedLang string
	}{
		{
			name:         "accept-language header",
			acceptLang:   "en-US,en;q=0.9",
			expectedLang: "en",
		},
		{
			name:         "swahili accept-language",
			acceptLang:   "sw",
			expectedLang: "sw",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			handler := nlshttp.LanguageMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				lang := nls.LanguageFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(strings.Join(lang, ",")))
			}))

			req := httptest.NewRequest("GET", "/test", nil)
			req.Header.Set("Accept-Language", tc.acceptLang)

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			s.Contains(w.Body.String(), tc.expectedLang)
		})
	}
}

func (s *LanguageMiddlewareTestSuite) TestResolvesWithRequestLanguage() {
	resolver, err := nls.New("messages",
		nls.WithMessagesDir("../../testdata"),
		nls.WithLanguages("en", "sw"))
	s.Require().NoError(err)

	handler := nlshttp.LanguageMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(resolver.Resolve(r.Context(), "greeting")))
	}))

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Accept-Language", "sw")

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	s.Equal("Habari", w.Body.String())
}
