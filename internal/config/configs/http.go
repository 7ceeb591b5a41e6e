package configs

import "time"

// HTTP configures the API server.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// ReadHeaderTimeout bounds reading request headers.
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" envDefault:"10s"`
	// RequestTimeout bounds a whole request. It must exceed the provider
	// timeout times the generation attempts; zero disables it.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"150s"`
	// AllowedOrigin is sent as Access-Control-Allow-Origin.
	AllowedOrigin string `env:"ALLOWED_ORIGIN" envDefault:"*"`
}
