package config

// NewDefaultConfig creates a configuration with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "prod",
		Server: ServerConfig{
			Port: 3434,
			Host: "localhost",
		},
		Tavily: TavilyConfig{
			BaseURL: "https://api.tavily.com",
			Timeout: "30s",
		},
		Logging: LoggingConfig{
			Level:   "info",
			Outputs: []string{"console", "file"},
		},
	}
}
