package config

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Trust:     TrustEmbedded,
		Output:    "console",
		LogLevel:  "warn",
		LogFormat: "text",
		NoColor:   BoolPtr(false),
		Verbose:   BoolPtr(false),
	}
}

// IsDefault returns true if the config matches defaults
func (c *Config) IsDefault() bool {
	d := DefaultConfig()
	return c.Trust == d.Trust &&
		c.CAFile == d.CAFile &&
		len(c.Headers) == 0 &&
		c.Output == d.Output &&
		c.LogLevel == d.LogLevel &&
		c.LogFormat == d.LogFormat &&
		c.GetNoColor() == d.GetNoColor() &&
		c.GetVerbose() == d.GetVerbose()
}
