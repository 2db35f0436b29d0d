package config

import (
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const envPrefix = "CHATSYNC_"

// loadDotEnv reads .env from the working directory when it exists.
// Variables already present in the environment take precedence.
func loadDotEnv() {
	_ = godotenv.Load()
}

// parseEnv overlays CHATSYNC_* variables onto config. Unparseable numeric or
// duration values panic, the same way a broken JSON file does.
func parseEnv(config *Config, lookup func(string) (string, bool)) {
	str := func(name string, dst *string) {
		if v, ok := lookup(envPrefix + name); ok {
			*dst = v
		}
	}
	dur := func(name string, dst *time.Duration) {
		if v, ok := lookup(envPrefix + name); ok {
			d, err := time.ParseDuration(v)
			if err != nil {
				panic(err)
			}
			*dst = d
		}
	}

	str("GRPC_ADDR", &config.EndpointAddrGRPC)
	str("HTTP_ADDR", &config.EndpointAddrHTTP)
	str("DATABASE_DSN", &config.DatabaseDSN)
	str("REDIS_URL", &config.RedisURL)
	str("SECRET_KEY", &config.SecretKey)
	dur("ACCESS_TOKEN_TTL", &config.AccessTokenValidityDuration)
	dur("REFRESH_TOKEN_TTL", &config.RefreshTokenValidityDuration)
	if v, ok := lookup(envPrefix + "PUSH_CONCURRENCY"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			panic(err)
		}
		config.PushConcurrency = n
	}
	str("S3_ROOT_USER", &config.S3RootUser)
	str("S3_ROOT_PASSWORD", &config.S3RootPassword)
	str("S3_BUCKET", &config.S3Bucket)
	str("S3_REGION", &config.S3Region)
	str("S3_BASE_ENDPOINT", &config.S3BaseEndpoint)
	dur("PASSWORD_CODE_TTL", &config.PasswordCodeValidityDuration)
	str("FCM_PROJECT_ID", &config.FCMProjectID)
	str("FCM_CREDENTIALS_FILE", &config.FCMCredentialsFile)
	str("FCM_ENDPOINT", &config.FCMEndpoint)
	str("FCM_PACKAGE_NAME", &config.FCMPackageName)
}

// Env converts a map into a lookup function for Load.
func Env(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}
