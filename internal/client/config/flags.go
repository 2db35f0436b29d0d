package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/chatsync/internal/flagx"
)

// parseFlags overlays -a, -d, -i and -o. Other arguments are ignored.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-d", "-i", "-o"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "local database path")
	fs.StringVar(&cfg.DownloadDir, "o", cfg.DownloadDir, "directory for downloaded attachments")
	reconnect := fs.Int("i", int(cfg.ReconnectInterval.Seconds()), "watch reconnect interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.ReconnectInterval = time.Duration(*reconnect) * time.Second
}
