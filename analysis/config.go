package analysis

import "go.uber.org/zap"

// Config holds construction options for an Analyzer.
type Config struct {
	Capacity int         // Initial storage capacity hint (default: length of the initial batch)
	Logger   *zap.Logger // Debug event sink (default: no-op)
}

// DefaultConfig returns the default analyzer configuration.
func DefaultConfig() *Config {
	return &Config{
		Logger: zap.NewNop(),
	}
}
