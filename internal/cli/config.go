package cli

import (
	"fmt"
	"os"
)

// Output formats
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config holds CLI configuration
type Config struct {
	ServerURL string
	Output    string
}

// DefaultConfig returns a Config from the WORDTILES_* environment, with defaults
func DefaultConfig() *Config {
	return &Config{
		ServerURL: getEnvOrDefault("WORDTILES_SERVER", "http://localhost:8080"),
		Output:    getEnvOrDefault("WORDTILES_OUTPUT", OutputText),
	}
}

// Validate checks the output format
func (c *Config) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON:
		return nil
	default:
		return fmt.Errorf("invalid output format %q: must be %s or %s", c.Output, OutputText, OutputJSON)
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
