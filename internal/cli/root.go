// Package cli implements adsparkctl, the operator command line of the
// campaign generator.
package cli

import (
	"github.com/spf13/cobra"

	"adspark-ai-wizard/internal/db"
)

var (
	userID  string
	jsonOut  bool
)

var rootCmd = &cobra.Command{
	Use:   "adsparkctl",
	Short: "AdSpark - generate Google Ads campaigns from a business description",
	Long: `adsparkctl drives the AdSpark campaign generator from a terminal.

Configuration is read from the same environment variables as the API
server (STORE_DRIVER, PSQL_ADDRESS, PROVIDER_API_KEY, ...).`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&userID, "user", getEnvOrDefault("ADSPARK_USER", db.DemoUser), "user id owning drafts and campaigns")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "print JSON instead of tables")
}
