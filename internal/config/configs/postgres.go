package configs

// Postgres holds options for the PostgreSQL table store. The connection
// string itself comes from Backend.URL.
type Postgres struct {
	// RunMigrations controls whether database migrations are executed on
	// startup. Only honoured by main.
	RunMigrations bool `env:"RUN_MIGRATIONS" envDefault:"false"`
	// Seed inserts the demo dataset after migrations.
	Seed bool `env:"SEED" envDefault:"false"`
	// MaxConns and MinConns size the pool. Zero keeps pgx defaults.
	MaxConns int32 `env:"MAX_CONNS" envDefault:"0"`
	MinConns int32 `env:"MIN_CONNS" envDefault:"0"`
}
