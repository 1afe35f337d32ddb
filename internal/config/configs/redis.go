package configs

import "time"

// Redis configures the session store. An empty URL keeps sessions in
// process memory, which only suits a single instance.
type Redis struct {
	URL         string        `env:"URL"`
	DialTimeout time.Duration `env:"DIAL_TIMEOUT" envDefault:"5s"`
	PoolSize    int           `env:"POOL_SIZE" envDefault:"0"`
}
