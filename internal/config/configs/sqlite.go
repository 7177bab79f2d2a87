package configs

// SQLite configures the embedded SQLite backend used for local runs.
type SQLite struct {
	// Path is the database file. It is created if missing.
	Path          string `env:"PATH" envDefault:"ads.db"`
	RunMigrations bool   `env:"RUN_MIGRATIONS" envDefault:"true"`
}
