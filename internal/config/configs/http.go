package configs

import "time"

// HTTP defines configuration for the HTTP server. RequestTimeout bounds
// every request, including the table store calls it makes, so a hung
// collaborator cannot leave a caller waiting forever.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// RequestTimeout is the deadline attached to each request context.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
	// MaxUploadBytes caps multipart bodies; the logo limit itself is
	// enforced by the wizard rules.
	MaxUploadBytes int64 `env:"MAX_UPLOAD_BYTES" envDefault:"4194304"`
}
