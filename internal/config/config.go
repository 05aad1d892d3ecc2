package config

// Config is the root configuration for an extract run.
type Config struct {
	Database DBConfig     `yaml:"postgresql"`
	Output   OutputConfig `yaml:"output"`
}

// DBConfig holds the PostgreSQL connection parameters.
type DBConfig struct {
	Host           string `ini:"host" yaml:"host"`
	Port           int    `ini:"port" yaml:"port"`
	Name           string `ini:"dbname" yaml:"dbname"`
	User           string `ini:"user" yaml:"user"`
	Password       string `ini:"password" yaml:"password"` // optional; PGPASSWORD / .pgpass otherwise
	SSLMode        string `ini:"sslmode" yaml:"sslmode"`
	ConnectTimeout int    `ini:"connect_timeout" yaml:"connect_timeout"` // seconds, 0 = driver default
}

// OutputConfig controls where and how the EOD file is written.
type OutputConfig struct {
	Dir        string `ini:"dir" yaml:"dir"`
	LineEnding string `ini:"line_ending" yaml:"line_ending"` // "crlf" or "lf"
}

// UseCRLF reports whether records are terminated with \r\n.
func (o OutputConfig) UseCRLF() bool {
	return o.LineEnding != LineEndingLF
}
