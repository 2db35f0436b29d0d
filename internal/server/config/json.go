package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/chatsync/internal/flagx"
	"github.com/dmitrijs2005/chatsync/internal/timex"
)

// JsonConfig mirrors Config for unmarshalling. Fields left out of the file
// keep the value they had before the overlay.
type JsonConfig struct {
	EndpointAddrGRPC             *string         `json:"endpoint_addr_grpc"`
	EndpointAddrHTTP             *string         `json:"endpoint_addr_http"`
	DatabaseDSN                  *string         `json:"database_dsn"`
	RedisURL                     *string         `json:"redis_url"`
	SecretKey                    *string         `json:"secret_key"`
	AccessTokenValidityDuration  *timex.Duration `json:"access_token_validity_duration"`
	RefreshTokenValidityDuration *timex.Duration `json:"refresh_token_validity_duration"`
	PushConcurrency              *int            `json:"push_concurrency"`
	S3RootUser                   *string         `json:"s3_root_user"`
	S3RootPassword               *string         `json:"s3_root_password"`
	S3Bucket                     *string         `json:"s3_bucket"`
	S3Region                     *string         `json:"s3_region"`
	S3BaseEndpoint               *string         `json:"s3_base_endpoint"`
	PasswordCodeValidityDuration *timex.Duration `json:"password_code_validity_duration"`
	FCMProjectID                 *string         `json:"fcm_project_id"`
	FCMCredentialsFile           *string         `json:"fcm_credentials_file"`
	FCMEndpoint                  *string         `json:"fcm_endpoint"`
	FCMPackageName               *string         `json:"fcm_package_name"`
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// parseJson loads the file named by -c/-config in args, if any, and overlays
// it onto config. An unreadable file or invalid JSON panics.
func parseJson(config *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	set(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	set(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	set(&config.DatabaseDSN, c.DatabaseDSN)
	set(&config.RedisURL, c.RedisURL)
	set(&config.SecretKey, c.SecretKey)
	if c.AccessTokenValidityDuration != nil {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.RefreshTokenValidityDuration != nil {
		config.RefreshTokenValidityDuration = c.RefreshTokenValidityDuration.Duration
	}
	set(&config.PushConcurrency, c.PushConcurrency)
	set(&config.S3RootUser, c.S3RootUser)
	set(&config.S3RootPassword, c.S3RootPassword)
	set(&config.S3Bucket, c.S3Bucket)
	set(&config.S3Region, c.S3Region)
	set(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	if c.PasswordCodeValidityDuration != nil {
		config.PasswordCodeValidityDuration = c.PasswordCodeValidityDuration.Duration
	}
	set(&config.FCMProjectID, c.FCMProjectID)
	set(&config.FCMCredentialsFile, c.FCMCredentialsFile)
	set(&config.FCMEndpoint, c.FCMEndpoint)
	set(&config.FCMPackageName, c.FCMPackageName)
}
