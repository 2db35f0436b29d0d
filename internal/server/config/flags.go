package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/chatsync/internal/flagx"
)

// parseFlags overlays the short flags:
//
//	-a string   gRPC bind address
//	-w string   HTTP bind address
//	-d string   database DSN ("memory://" for the in-memory store)
//	-q string   Redis URL
//	-s string   JWT HMAC secret key
//	-t int      access token validity, minutes
//	-r int      refresh token validity, minutes
//	-n int      push concurrency
//	-u, -p, -b, -g, -e   S3 user, password, bucket, region, endpoint
//	-k string   Firebase project id
func parseFlags(config *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-w", "-d", "-q", "-s", "-t", "-r", "-n", "-u", "-p", "-b", "-g", "-e", "-k"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "gRPC address")
	fs.StringVar(&config.EndpointAddrHTTP, "w", config.EndpointAddrHTTP, "HTTP address")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.RedisURL, "q", config.RedisURL, "redis URL")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	accessTokenValidity := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access token validity (minutes)")
	refreshTokenValidity := fs.Int("r", int(config.RefreshTokenValidityDuration.Minutes()), "refresh token validity (minutes)")

	fs.IntVar(&config.PushConcurrency, "n", config.PushConcurrency, "records applied in parallel per push group")
	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.FCMProjectID, "k", config.FCMProjectID, "Firebase project id")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AccessTokenValidityDuration = time.Duration(*accessTokenValidity) * time.Minute
	config.RefreshTokenValidityDuration = time.Duration(*refreshTokenValidity) * time.Minute
}
