package types

// Config represents the configuration for the calculator-mcp server
type Config struct {
	StateFile string `json:"state_file,omitempty" yaml:"state_file,omitempty"`
	LogLevel  string `json:"log_level,omitempty" yaml:"log_level,omitempty"`
}
