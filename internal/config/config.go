package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server   ServerConfig
	Shopify  ShopifyConfig
	WhatsApp WhatsAppConfig
	Orders   OrdersConfig
	Summary  SummaryConfig
	LogLevel string
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// ShopifyConfig carries the webhook shared secret used for HMAC verification.
type ShopifyConfig struct {
	WebhookSecret string
}

// WhatsAppConfig contains credentials and options for the Meta WhatsApp Cloud API.
type WhatsAppConfig struct {
	AccessToken   string
	PhoneNumberID string
	BaseURL       string
	APIVersion    string
	Template      TemplateConfig
}

// TemplateConfig pins the registered template contract: name, language and
// whether the template declares a URL button that takes the order token.
type TemplateConfig struct {
	Name      string
	Language  string
	HasButton bool
}

// OrdersConfig holds extraction defaults.
type OrdersConfig struct {
	DefaultCountryCode string
}

// SummaryConfig holds the dispatch-summary scheduler settings.
type SummaryConfig struct {
	CronSchedule string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		Shopify: ShopifyConfig{
			WebhookSecret: os.Getenv("SHOPIFY_WEBHOOK_SECRET"),
		},
		WhatsApp: WhatsAppConfig{
			AccessToken:   os.Getenv("WHATSAPP_TOKEN"),
			PhoneNumberID: os.Getenv("WHATSAPP_PHONE_NUMBER_ID"),
			BaseURL:       getenvWithDefault("WHATSAPP_BASE_URL", "https://graph.facebook.com"),
			APIVersion:    getenvWithDefault("WHATSAPP_API_VERSION", "v20.0"),
			Template: TemplateConfig{
				Name:      getenvWithDefault("WHATSAPP_TEMPLATE_NAME", "order_confirmation"),
				Language:  getenvWithDefault("WHATSAPP_TEMPLATE_LANGUAGE", "en_GB"),
				HasButton: getenvBool("WHATSAPP_TEMPLATE_HAS_BUTTON", false),
			},
		},
		Orders: OrdersConfig{
			DefaultCountryCode: getenvWithDefault("DEFAULT_COUNTRY_CODE", "IN"),
		},
		Summary: SummaryConfig{
			CronSchedule: getenvWithDefault("SUMMARY_CRON_SCHEDULE", "0 * * * *"),
		},
		LogLevel: getenvWithDefault("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	if c.Shopify.WebhookSecret == "" {
		return errors.New("SHOPIFY_WEBHOOK_SECRET must be provided")
	}

	switch {
	case c.WhatsApp.AccessToken == "":
		return errors.New("WHATSAPP_TOKEN must be provided")
	case c.WhatsApp.PhoneNumberID == "":
		return errors.New("WHATSAPP_PHONE_NUMBER_ID must be provided")
	}

	if c.WhatsApp.BaseURL == "" {
		return errors.New("WHATSAPP_BASE_URL must not be empty")
	}

	if c.WhatsApp.APIVersion == "" {
		return errors.New("WHATSAPP_API_VERSION must not be empty")
	}

	if c.WhatsApp.Template.Name == "" {
		return errors.New("WHATSAPP_TEMPLATE_NAME must not be empty")
	}

	if c.WhatsApp.Template.Language == "" {
		return errors.New("WHATSAPP_TEMPLATE_LANGUAGE must not be empty")
	}

	if c.Orders.DefaultCountryCode == "" {
		return errors.New("DEFAULT_COUNTRY_CODE must not be empty")
	}

	if c.Summary.CronSchedule == "" {
		return errors.New("SUMMARY_CRON_SCHEDULE must be provided")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
