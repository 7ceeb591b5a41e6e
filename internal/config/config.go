package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"

	"adspark-ai-wizard/internal/config/configs"
	"adspark-ai-wizard/internal/core/campaign"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// The nested structs are tagged with envPrefix so their fields are parsed
// with the given prefix. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	HTTP configs.HTTP   `envPrefix:"HTTP_"`
	Log  configs.Logger `envPrefix:"LOG_"`

	// Store picks the persistence backend; Psql is used when it is postgres.
	Store configs.Store    `envPrefix:"STORE_"`
	Psql  configs.Postgres `envPrefix:"PSQL_"`

	Provider   configs.Provider   `envPrefix:"PROVIDER_"`
	Generation configs.Generation `envPrefix:"GEN_"`
	Scraper    configs.Scraper    `envPrefix:"SCRAPER_"`
	Google     configs.Google     `envPrefix:"GOOGLE_"`
}

// Load reads configuration from environment variables into a Config.
// Generation profiles start from the built-in profiles so that only the
// overridden counts need to be set.
func Load() (Config, error) {
	cfg := Config{
		Generation: configs.Generation{
			Full:  configs.ProfileFrom(campaign.DefaultProfile()),
			Quick: configs.ProfileFrom(campaign.QuickProfile()),
		},
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if cfg.Provider.APIKey == "" {
		cfg.Provider.APIKey = os.Getenv("LOVABLE_API_KEY")
	}
	return cfg, nil
}

// Validate rejects combinations the application cannot start with. A
// missing provider key is not an error here; generation reports it per
// request.
func (c Config) Validate() error {
	switch c.Store.Driver {
	case configs.StoreDriverPostgres, configs.StoreDriverSQLite:
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	switch c.Provider.Kind {
	case configs.ProviderGateway, configs.ProviderGemini:
	default:
		return fmt.Errorf("unknown provider %q", c.Provider.Kind)
	}
	if c.Provider.Temperature < 0 || c.Provider.Temperature > 2 {
		return fmt.Errorf("provider temperature %v out of range [0, 2]", c.Provider.Temperature)
	}
	if c.Provider.MaxTokens <= 0 || c.Provider.QuickMaxTokens <= 0 {
		return fmt.Errorf("provider max tokens must be positive")
	}
	if c.Provider.Timeout <= 0 {
		return fmt.Errorf("provider timeout must be positive")
	}
	if c.Generation.RetryOnInvalid < 0 {
		return fmt.Errorf("retry on invalid must not be negative")
	}
	if c.HTTP.RequestTimeout > 0 {
		attempts := 1 + c.Generation.RetryOnInvalid
		if c.HTTP.RequestTimeout <= c.Provider.Timeout*time.Duration(attempts) {
			return fmt.Errorf("http request timeout %s must exceed provider timeout %s times %d attempts",
				c.HTTP.RequestTimeout, c.Provider.Timeout, attempts)
		}
	}
	if err := c.Generation.Full.Campaign().Check(); err != nil {
		return fmt.Errorf("full profile: %w", err)
	}
	if err := c.Generation.Quick.Campaign().Check(); err != nil {
		return fmt.Errorf("quick profile: %w", err)
	}
	return nil
}
