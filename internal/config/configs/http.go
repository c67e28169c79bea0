package configs

// HTTP defines configuration for the HTTP server.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// MaxUploadBytes caps one report upload request. Defaults to 32 MiB.
	MaxUploadBytes int64 `env:"MAX_UPLOAD_BYTES" envDefault:"33554432"`
	// AllowedOrigins lists the CORS origins of the dashboard front-end,
	// comma separated. CORS is disabled when empty.
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}
