package nls

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// catalog formats tried per language, in order.
var catalogExtensions = []string{"toml", "json"}

// newBundle eagerly loads the message catalogs for every configured
// language. A language whose catalog cannot be found fails the whole
// load; a half loaded bundle is worse than a loud construction error.
func newBundle(name string, s *settings) (*i18n.Bundle, error) {
	defaultTag, err := language.Parse(s.defaultLanguage)
	if err != nil {
		defaultTag = language.English
	}

	bundle := i18n.NewBundle(defaultTag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	for _, lang := range s.languages {
		if err = loadCatalog(bundle, name, lang, s); err != nil {
			return nil, err
		}
	}

	return bundle, nil
}

// loadCatalog loads one language's catalog, trying each supported
// format in turn. Parse failures surface immediately, only files that
// do not exist fall through to the next format.
func loadCatalog(bundle *i18n.Bundle, name, lang string, s *settings) error {
	var lastErr error

	for _, ext := range catalogExtensions {
		catalogFile := fmt.Sprintf("%s.%s.%s", name, lang, ext)

		var err error
		if s.fsys != nil {
			_, err = bundle.LoadMessageFileFS(s.fsys, path.Join(s.dir, catalogFile))
		} else {
			_, err = bundle.LoadMessageFile(filepath.Join(s.dir, catalogFile))
		}

		if err == nil {
			return nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("nls: loading catalog for bundle %q language %q: %w", name, lang, err)
		}
		lastErr = err
	}

	return fmt.Errorf("nls: no catalog for bundle %q language %q: %w (%w)", name, lang, ErrBundleNotFound, lastErr)
}
