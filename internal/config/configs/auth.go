package configs

import "time"

// Auth configures token issuing and the bootstrap admin account.
type Auth struct {
	Secret   string        `env:"JWT_SECRET,required"`
	Issuer   string        `env:"JWT_ISSUER" envDefault:"bagpresto"`
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
	// AdminEmail and AdminPassword create the admin account on startup
	// when both are set and no such user exists yet.
	AdminEmail    string `env:"ADMIN_EMAIL"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
}
