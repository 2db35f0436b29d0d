package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/chatsync/internal/server/config"
	"github.com/dmitrijs2005/chatsync/internal/server/models"
	"github.com/dmitrijs2005/chatsync/internal/server/repositories/repomanager"
)

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:                    "k",
		AccessTokenValidityDuration:  time.Hour,
		RefreshTokenValidityDuration: 2 * time.Hour,
		S3Region:                     "us-east-1",
		S3RootUser:                   "minioadmin",
		S3RootPassword:               "minioadmin",
		S3BaseEndpoint:               "http://127.0.0.1:9000",
		S3Bucket:                     "attachments",
	}
}

func seedUser(t *testing.T, repos repomanager.RepositoryManager, id string) {
	t.Helper()
	seedUserWithRole(t, repos, id, models.RoleUser)
}

func seedUserWithRole(t *testing.T, repos repomanager.RepositoryManager, id string, role models.Role) {
	t.Helper()
	_, err := repos.Users(nil).Create(context.Background(), &models.User{ID: id, Name: "user " + id, Email: id + "@example.com", Role: role})
	require.NoError(t, err)
}

func seedRoom(t *testing.T, repos repomanager.RepositoryManager, id string, members ...string) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, repos.Rooms(nil).Upsert(ctx, &models.Room{ID: id}))
	for _, m := range members {
		require.NoError(t, repos.Members(nil).Upsert(ctx, id, m))
	}
}
