package configs

const (
	StoreDriverPostgres = "postgres"
	StoreDriverSQLite   = "sqlite"
)

// Store selects where drafts and saved campaigns live.
type Store struct {
	Driver     string `env:"DRIVER" envDefault:"postgres"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"adspark.db"`
}
