package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the chatsync CLI.
type Config struct {
	ServerEndpointAddr string
	DatabasePath       string
	ReconnectInterval  time.Duration
	DownloadDir        string
}

func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.DatabasePath = "chatsync.db"
	c.ReconnectInterval = 3 * time.Second
	c.DownloadDir = "downloads"
}

// LoadConfig builds a Config from os.Args.
func LoadConfig() *Config {
	return Load(os.Args[1:])
}

// Load applies defaults, then the JSON file named by -c/-config, then flags.
func Load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
