package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	// DebugModeEnv is the environment variable for debug mode.
	DebugModeEnv = "DEBUG_MODE"

	// HTTPServerPortEnv is the environment variable for HTTP server port.
	HTTPServerPortEnv = "HTTP_SERVER_PORT"

	// MetricsServerPortEnv is the environment variable for metrics server port.
	MetricsServerPortEnv = "METRICS_SERVER_PORT"

	// CatalogPathEnv is the environment variable for the catalog JSON file path.
	CatalogPathEnv = "CATALOG_PATH"

	// PrefsPathEnv is the environment variable for the preference store file path.
	PrefsPathEnv = "PREFS_PATH"

	// WhatsAppPhoneEnv is the environment variable for the WhatsApp order destination.
	WhatsAppPhoneEnv = "WHATSAPP_PHONE"

	// OrderEmailEnv is the environment variable for the email order destination.
	OrderEmailEnv = "ORDER_EMAIL"

	// EmailStrategyEnv selects the email delivery strategy: "mailto" or "clipboard".
	EmailStrategyEnv = "EMAIL_STRATEGY"

	// WebmailHostEnv is the webmail host used by the clipboard strategy's fallback link.
	WebmailHostEnv = "WEBMAIL_HOST"

	// ChatTypingDelayMSEnv is the simulated chat typing delay in milliseconds.
	ChatTypingDelayMSEnv = "CHAT_TYPING_DELAY_MS"

	// EnvFilePath is the environment variable for .env file path (only for local/test environment).
	EnvFilePath = "ENV_PATH"

	// DefaultEnvFilePath is the default path to the .env file.
	DefaultEnvFilePath = ".env"

	// DefaultEmailStrategy is used when EMAIL_STRATEGY is unset.
	DefaultEmailStrategy = "mailto"

	// DefaultChatTypingDelayMS is used when CHAT_TYPING_DELAY_MS is unset.
	DefaultChatTypingDelayMS = "1200"
)

var (
	// ErrMissingConfig is returned when required configuration values are missing.
	ErrMissingConfig = errors.New("missing config data")

	// ErrInvalidConfig is returned when a configuration value is out of range.
	ErrInvalidConfig = errors.New("invalid config data")
)

// Config represents the application configuration.
type Config struct {
	DebugMode     bool
	HTTPServer    Server
	MetricsServer Server
	Catalog       Catalog
	Prefs         Prefs
	Delivery      Delivery
	Chat          Chat
}

// Server represents server configuration settings.
type Server struct {
	Port string
}

// Catalog represents catalog data source settings.
type Catalog struct {
	Path string
}

// Prefs represents preference store settings.
type Prefs struct {
	Path string
}

// Delivery represents the fixed per-deployment order destinations.
type Delivery struct {
	WhatsAppPhone string
	OrderEmail    string
	EmailStrategy string
	WebmailHost   string
}

// Chat represents chat widget settings.
type Chat struct {
	TypingDelayMS string
}

func allNonEmpty(keyValues map[string]string) error {
	for key, value := range keyValues {
		if value == "" {
			slog.Error("configuration validation failed", slog.String("key", key), slog.String("error", "value is empty"))
			return fmt.Errorf("%w for key: %s", ErrMissingConfig, key)
		}
	}
	return nil
}

func allNumbers(keyValues map[string]string) error {
	for key, value := range keyValues {
		_, err := strconv.Atoi(value)
		if err != nil {
			slog.Error("configuration validation failed", slog.String("key", key), slog.String("value", value), slog.String("error", err.Error()))
			return fmt.Errorf("invalid number for key %s: %w", key, err)
		}
	}
	return nil
}

func (c *Config) validate() error {
	// Validate server ports
	if err := allNonEmpty(map[string]string{
		HTTPServerPortEnv:    c.HTTPServer.Port,
		MetricsServerPortEnv: c.MetricsServer.Port,
	}); err != nil {
		return fmt.Errorf("server port configuration incomplete: %w", err)
	}
	if err := allNumbers(map[string]string{
		HTTPServerPortEnv:    c.HTTPServer.Port,
		MetricsServerPortEnv: c.MetricsServer.Port,
		ChatTypingDelayMSEnv: c.Chat.TypingDelayMS,
	}); err != nil {
		return fmt.Errorf("invalid numeric configuration: %w", err)
	}

	// Validate data paths
	if err := allNonEmpty(map[string]string{
		CatalogPathEnv: c.Catalog.Path,
		PrefsPathEnv:   c.Prefs.Path,
	}); err != nil {
		return fmt.Errorf("data path configuration incomplete: %w", err)
	}

	// Validate delivery destinations
	if err := allNonEmpty(map[string]string{
		WhatsAppPhoneEnv: c.Delivery.WhatsAppPhone,
		OrderEmailEnv:    c.Delivery.OrderEmail,
	}); err != nil {
		return fmt.Errorf("delivery configuration incomplete: %w", err)
	}
	switch c.Delivery.EmailStrategy {
	case "mailto":
	case "clipboard":
		// The clipboard strategy offers a webmail-compose fallback link, so
		// the host becomes required.
		if err := allNonEmpty(map[string]string{
			WebmailHostEnv: c.Delivery.WebmailHost,
		}); err != nil {
			return fmt.Errorf("delivery configuration incomplete: %w", err)
		}
	default:
		slog.Error("configuration validation failed", slog.String("key", EmailStrategyEnv), slog.String("value", c.Delivery.EmailStrategy))
		return fmt.Errorf("%w: %s must be mailto or clipboard", ErrInvalidConfig, EmailStrategyEnv)
	}

	return nil
}

func getEnvAsBool(name string, defaultValue bool) bool {
	if val, err := strconv.ParseBool(os.Getenv(name)); err == nil {
		return val
	}
	return defaultValue
}

func getEnvOrDefault(name, defaultValue string) string {
	if val := os.Getenv(name); val != "" {
		return val
	}
	return defaultValue
}

// ApplyEnvFile loads environment variables from the specified .env files.
func ApplyEnvFile(files ...string) error {
	err := godotenv.Load(files...)
	if err != nil {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

// LoadFromEnv loads configuration from environment variables and validates it.
func LoadFromEnv() (*Config, error) {
	envPath := os.Getenv(EnvFilePath)
	if envPath == "" {
		envPath = DefaultEnvFilePath
	}
	err := ApplyEnvFile(envPath)
	if err != nil {
		// just log the error, maybe all envs are set in another way
		slog.Info("failed to load from .env", slog.Any("err", err))
	}

	conf := &Config{
		DebugMode: getEnvAsBool(DebugModeEnv, false),
		HTTPServer: Server{
			Port: os.Getenv(HTTPServerPortEnv),
		},
		MetricsServer: Server{
			Port: os.Getenv(MetricsServerPortEnv),
		},
		Catalog: Catalog{
			Path: os.Getenv(CatalogPathEnv),
		},
		Prefs: Prefs{
			Path: os.Getenv(PrefsPathEnv),
		},
		Delivery: Delivery{
			WhatsAppPhone: os.Getenv(WhatsAppPhoneEnv),
			OrderEmail:    os.Getenv(OrderEmailEnv),
			EmailStrategy: getEnvOrDefault(EmailStrategyEnv, DefaultEmailStrategy),
			WebmailHost:   os.Getenv(WebmailHostEnv),
		},
		Chat: Chat{
			TypingDelayMS: getEnvOrDefault(ChatTypingDelayMSEnv, DefaultChatTypingDelayMS),
		},
	}

	if err := conf.validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return conf, nil
}
