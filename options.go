package nls

import (
	"io/fs"

	"github.com/tulivu/nls/config"
)

// Option configures a resolver at construction time.
type Option func(s *settings)

type settings struct {
	dir             string
	fsys            fs.FS
	languages       []string
	defaultLanguage string
	showKeys        bool
}

func defaultSettings() *settings {
	return &settings{
		dir:             "localization",
		languages:       []string{"en"},
		defaultLanguage: "en",
	}
}

// WithMessagesDir sets the directory message catalogs are loaded from.
func WithMessagesDir(dir string) Option {
	return func(s *settings) {
		if dir != "" {
			s.dir = dir
		}
	}
}

// WithMessagesFS loads message catalogs from the supplied file system
// instead of the local disk. Useful with embed.FS so catalogs ship
// inside the binary.
func WithMessagesFS(fsys fs.FS) Option {
	return func(s *settings) {
		s.fsys = fsys
	}
}

// WithLanguages sets the languages whose catalogs are loaded at
// construction. Every listed language must have a catalog.
func WithLanguages(languages ...string) Option {
	return func(s *settings) {
		if len(languages) > 0 {
			s.languages = languages
		}
	}
}

// WithDefaultLanguage sets the language used when a caller supplies no
// language preference of its own.
func WithDefaultLanguage(language string) Option {
	return func(s *settings) {
		if language != "" {
			s.defaultLanguage = language
		}
	}
}

// WithShowMessageKeys toggles the debug mode that echoes keys back
// instead of resolving them.
func WithShowMessageKeys(show bool) Option {
	return func(s *settings) {
		s.showKeys = show
	}
}

// WithConfig applies resolver settings from a configuration object,
// typically one filled from the environment via config.FromEnv.
func WithConfig(cfg config.ConfigurationMessages) Option {
	return func(s *settings) {
		WithMessagesDir(cfg.MessagesDir())(s)
		WithLanguages(cfg.Languages()...)(s)
		WithDefaultLanguage(cfg.DefaultLanguage())(s)
		s.showKeys = cfg.ShowMessageKeys()
	}
}
