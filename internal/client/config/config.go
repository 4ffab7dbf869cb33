package config

import "time"

// Config holds runtime settings for the SkillSwap CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the backend gRPC endpoint.
//   - OnlineCheckInterval: how often the client probes server reachability.
//   - SplashDuration: how long the splash screen stays up before auth.
//   - DownloadDir: directory (relative to cwd) fetched attachments go to.
type Config struct {
	ServerEndpointAddr  string
	OnlineCheckInterval time.Duration
	SplashDuration      time.Duration
	DownloadDir         string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.OnlineCheckInterval = 3 * time.Second
	c.SplashDuration = 2500 * time.Millisecond
	c.DownloadDir = "downloads"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
