package nls_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/metadata"

	"github.com/tulivu/nls"
)

type LanguageTestSuite struct {
	suite.Suite
}

func TestLanguageSuite(t *testing.T) {
	suite.Run(t, new(LanguageTestSuite))
}

func (s *LanguageTestSuite) TestLanguageContextManagement() {
	ctx := context.Background()
	s.Nil(nls.LanguageFromContext(ctx))

	ctx = nls.LanguageToContext(ctx, []string{"en", "sw"})
	s.Equal([]string{"en", "sw"}, nls.LanguageFromContext(ctx))
}

func (s *LanguageTestSuite) TestLanguageMapManagement() {
	m := map[string]string{"world": "data"}

	m = nls.LanguageToMap(m, []string{"en", "sw"})
	s.Equal("en,sw", m["lang"])

	s.Equal([]string{"en", "sw"}, nls.LanguageFromMap(m))

	s.Nil(nls.LanguageFromMap(map[string]string{}))
}

func (s *LanguageTestSuite) TestExtractLanguageFromHTTPRequest() {
	testCases := []struct {
		name       string
		formLang   string
		acceptLang string
		expected   []string
	}{
		{
			name:       "accept language header only",
			acceptLang: "en-US,en;q=0.9",
			expected:   []string{"en-US", "en;q=0.9"},
		},
		{
			name:       "form value takes precedence",
			formLang:   "sw",
			acceptLang: "en",
			expected:   []string{"sw", "en"},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			target := "/test"
			if tc.formLang != "" {
				target += "?lang=" + tc.formLang
			}

			req := httptest.NewRequest("GET", target, nil)
			req.Header.Set("Accept-Language", tc.acceptLang)

			languages := nls.ExtractLanguageFromHTTPRequest(req)
			s.Equal(tc.expected, languages)
		})
	}
}

func (s *LanguageTestSuite) TestExtractLanguageFromGrpcRequest() {
	md := metadata.New(map[string]string{"accept-language": "en,sw"})
	ctx := metadata.NewIncomingContext(context.Background(), md)

	s.Equal([]string{"en", "sw"}, nls.ExtractLanguageFromGrpcRequest(ctx))

	s.Empty(nls.ExtractLanguageFromGrpcRequest(context.Background()))
}
