package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"adspark-ai-wizard/db/migrations"
	"adspark-ai-wizard/internal/app"
	"adspark-ai-wizard/internal/config"
	"adspark-ai-wizard/internal/config/configs"
	"adspark-ai-wizard/internal/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the embedded Postgres migrations",
	Long: `Apply the embedded migrations to the database at PSQL_ADDRESS.

The SQLite store creates its schema when it is opened and needs no
migration.`,
	RunE: runMigrate,
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert demo drafts and campaigns for the demo user",
	RunE:  runSeed,
}

func init() {
	rootCmd.AddCommand(migrateCmd, seedCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.Store.Driver != configs.StoreDriverPostgres {
		fmt.Fprintf(cmd.OutOrStdout(), "Store driver is %s; nothing to migrate.\n", cfg.Store.Driver)
		return nil
	}
	if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Database migrated to version %d\n", migrations.Version)
	return nil
}

func runSeed(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *app.App) error {
		if err := db.Seed(ctx, a.Drafts, a.Campaigns); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Seeded demo data for user %s\n", db.DemoUser)
		return nil
	})
}
