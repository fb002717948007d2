// Package config sources resolver configuration from the environment.
package config

import (
	"context"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
)

type contextKey string

func (c contextKey) String() string {
	return "nls/config/" + string(c)
}

const ctxKeyConfiguration = contextKey("configurationKey")

// ToContext adds configuration to the current supplied context.
func ToContext(ctx context.Context, config any) context.Context {
	return context.WithValue(ctx, ctxKeyConfiguration, config)
}

// FromContext extracts configuration from the supplied context if any exist.
func FromContext[T any](ctx context.Context) T {
	if cfg, ok := ctx.Value(ctxKeyConfiguration).(T); ok {
		return cfg
	}
	var zero T
	return zero
}

// FromEnv convenience method to process configs.
func FromEnv[T any]() (T, error) {
	return env.ParseAs[T]()
}

// FillEnv convenience method to fill a config object with environment data.
func FillEnv(v any) error {
	return env.Parse(v)
}

// MessagesDefault carries the resolver's environment backed settings.
// ShowMessageKeys is held as its raw string so an unparseable value
// degrades to normal lookup mode instead of failing configuration.
type MessagesDefault struct {
	ShowMessageKeysValue string `envDefault:"false" env:"showMessageKeys" yaml:"show_message_keys"`

	MessagesFolder          string   `envDefault:"localization" env:"MESSAGES_FOLDER"           yaml:"messages_folder"`
	MessagesBundleName      string   `envDefault:"messages"     env:"MESSAGES_BUNDLE_NAME"      yaml:"messages_bundle_name"`
	MessagesLanguages       []string `envDefault:"en"           env:"MESSAGES_LANGUAGES"        yaml:"messages_languages"`
	MessagesDefaultLanguage string   `envDefault:"en"           env:"MESSAGES_DEFAULT_LANGUAGE" yaml:"messages_default_language"`

	LogLevel string `envDefault:"info" env:"LOG_LEVEL" yaml:"log_level"`
}

type ConfigurationMessages interface {
	ShowMessageKeys() bool
	BundleName() string
	MessagesDir() string
	Languages() []string
	DefaultLanguage() string
}

var _ ConfigurationMessages = new(MessagesDefault)

func (c *MessagesDefault) ShowMessageKeys() bool {
	show, err := strconv.ParseBool(strings.TrimSpace(c.ShowMessageKeysValue))
	if err != nil {
		return false
	}
	return show
}

func (c *MessagesDefault) BundleName() string {
	if strings.TrimSpace(c.MessagesBundleName) == "" {
		return "messages"
	}
	return c.MessagesBundleName
}

func (c *MessagesDefault) MessagesDir() string {
	if strings.TrimSpace(c.MessagesFolder) == "" {
		return "localization"
	}
	return c.MessagesFolder
}

func (c *MessagesDefault) Languages() []string {
	return c.MessagesLanguages
}

func (c *MessagesDefault) DefaultLanguage() string {
	if strings.TrimSpace(c.MessagesDefaultLanguage) == "" {
		return "en"
	}
	return c.MessagesDefaultLanguage
}

type ConfigurationLogLevel interface {
	LoggingLevel() string
	LoggingLevelIsDebug() bool
}

var _ ConfigurationLogLevel = new(MessagesDefault)

func (c *MessagesDefault) LoggingLevel() string {
	return c.LogLevel
}

func (c *MessagesDefault) LoggingLevelIsDebug() bool {
	return c.LoggingLevel() == "debug" || c.LoggingLevel() == "trace"
}
