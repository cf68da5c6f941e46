package weatherinfo

import "time"

type Config struct {
	BaseURL  string
	APIKey   string
	Timeout  time.Duration
	CacheTTL time.Duration
}

func (c *Config) applyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = "https://api.openweathermap.org"
	}
	if c.Timeout <= 0 {
		c.Timeout = 10 * time.Second
	}
}
