package configs

import "time"

// Scraper configures website scraping.
type Scraper struct {
	UserAgent string        `env:"USER_AGENT" envDefault:"Mozilla/5.0 (compatible; AdSparkBot/1.0)"`
	Timeout   time.Duration `env:"TIMEOUT" envDefault:"15s"`
	MaxBytes  int64         `env:"MAX_BYTES" envDefault:"2097152"`
}
