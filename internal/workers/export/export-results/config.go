// internal/workers/export/export-results/config.go
package exportresults

import "time"

type Config struct {
	Timeout      time.Duration
	EmailEnabled bool
	SMSEnabled   bool
	FromEmail    string
	// MaxRows caps the number of ranked leads rendered into one export.
	MaxRows int
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 30 * time.Second,
		MaxRows: 500,
	}
}
