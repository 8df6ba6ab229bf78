// internal/workers/ranking/rank-leads/config.go
package rankleads

import "time"

type Config struct {
	Timeout time.Duration
	// SlowRankWarn logs a warning when one ranking pass takes longer.
	SlowRankWarn time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout:      30 * time.Second,
		SlowRankWarn: 500 * time.Millisecond,
	}
}
