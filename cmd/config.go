package cmd

// Config carries the runtime settings read from the environment. The
// database settings are optional: when DBHost is empty the service runs
// on the in-memory registry.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
}

// HasDatabase reports whether a database connection is configured.
func (c Config) HasDatabase() bool {
	return c.DBHost != ""
}
