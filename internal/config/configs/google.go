package configs

// Google configures OAuth and the Ads reporting API. The integration is
// disabled unless both client id and secret are set.
type Google struct {
	ClientID     string `env:"CLIENT_ID"`
	ClientSecret string `env:"CLIENT_SECRET"`
	RedirectURI  string `env:"REDIRECT_URI" envDefault:"http://localhost:5173/auth/callback"`
	// TokenURL overrides the Google token endpoint.
	TokenURL string `env:"TOKEN_URL"`

	DeveloperToken string `env:"ADS_DEVELOPER_TOKEN"`
	AdsBaseURL     string `env:"ADS_BASE_URL" envDefault:"https://googleads.googleapis.com"`
	AdsAPIVersion  string `env:"ADS_API_VERSION" envDefault:"v16"`
}

// Enabled reports whether OAuth credentials are configured.
func (g Google) Enabled() bool {
	return g.ClientID != "" && g.ClientSecret != ""
}
