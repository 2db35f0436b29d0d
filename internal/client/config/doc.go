// Package config loads runtime configuration for the chatsync CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the backend gRPC endpoint
//	-d string   path of the local SQLite replica
//	-i int      reconnect interval of the should-sync watch (seconds)
//
// # JSON schema
//
// Intervals use timex.Duration, so values can be strings like "3s" or
// integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "database_path": "chatsync.db",
//	  "reconnect_interval": "3s"
//	}
package config
