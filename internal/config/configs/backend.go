package configs

import "net/url"

// Backend holds the two connection settings without which the service
// cannot start: the table store URL and the public API key every client
// must present.
type Backend struct {
	// URL is a PostgreSQL connection string. It should include the
	// sslmode parameter if required.
	URL url.URL `env:"URL,required"`
	// APIKey is compared against the apikey request header.
	APIKey string `env:"API_KEY,required"`
}
