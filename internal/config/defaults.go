package config

// Default values for optional configuration fields.
const (
	DefaultDBPort     = 5432
	DefaultDBSSLMode  = "prefer"
	DefaultOutputDir  = "."
	LineEndingCRLF    = "crlf"
	LineEndingLF      = "lf"
	DefaultLineEnding = LineEndingCRLF
)

func (c *Config) applyDefaults() {
	// Database defaults
	if c.Database.Port == 0 {
		c.Database.Port = DefaultDBPort
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = DefaultDBSSLMode
	}

	// Output defaults
	if c.Output.Dir == "" {
		c.Output.Dir = DefaultOutputDir
	}
	if c.Output.LineEnding == "" {
		c.Output.LineEnding = DefaultLineEnding
	}
}
