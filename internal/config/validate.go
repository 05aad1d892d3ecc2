package config

import (
	"errors"
	"fmt"
)

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	if err := c.Database.validate(SectionPostgres); err != nil {
		return err
	}

	switch c.Output.LineEnding {
	case LineEndingCRLF, LineEndingLF:
	default:
		return fmt.Errorf("output.line_ending must be %q or %q, got %q", LineEndingCRLF, LineEndingLF, c.Output.LineEnding)
	}
	if c.Output.Dir == "" {
		return errors.New("output.dir is required")
	}

	return nil
}

func (db *DBConfig) validate(prefix string) error {
	if db.Host == "" {
		return fmt.Errorf("%s.host is required", prefix)
	}
	if db.Name == "" {
		return fmt.Errorf("%s.dbname is required", prefix)
	}
	if db.User == "" {
		return fmt.Errorf("%s.user is required", prefix)
	}
	if db.Port < 1 || db.Port > 65535 {
		return fmt.Errorf("%s.port must be between 1 and 65535, got %d", prefix, db.Port)
	}
	if db.ConnectTimeout < 0 {
		return fmt.Errorf("%s.connect_timeout must be >= 0", prefix)
	}
	return nil
}
