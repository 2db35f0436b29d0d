package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/chatsync/internal/flagx"
	"github.com/dmitrijs2005/chatsync/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	ServerEndpointAddr *string         `json:"server_endpoint_addr"`
	DatabasePath       *string         `json:"database_path"`
	ReconnectInterval  *timex.Duration `json:"reconnect_interval"`
	DownloadDir        *string         `json:"download_dir"`
}

// parseJson overlays values from the file named by -c/-config. Read or
// unmarshal errors panic.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerEndpointAddr != nil {
		cfg.ServerEndpointAddr = *jc.ServerEndpointAddr
	}
	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.ReconnectInterval != nil {
		cfg.ReconnectInterval = jc.ReconnectInterval.Duration
	}
	if jc.DownloadDir != nil {
		cfg.DownloadDir = *jc.DownloadDir
	}
}
