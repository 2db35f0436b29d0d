package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/chatsync/internal/common"
	"github.com/dmitrijs2005/chatsync/internal/logging"
	"github.com/dmitrijs2005/chatsync/internal/server/models"
	"github.com/dmitrijs2005/chatsync/internal/server/repositories/repomanager"
)

func TestRegisterDevice_MovesTokenBetweenUsers(t *testing.T) {
	repos := repomanager.NewMemoryRepositoryManager()
	svc := NewDeviceService(repos, logging.Discard())
	ctx := context.Background()

	_, err := svc.RegisterDevice(ctx, "a", "phone", "tok", models.PlatformAndroid)
	require.NoError(t, err)
	_, err = svc.RegisterDevice(ctx, "b", "phone", "tok", models.PlatformAndroid)
	require.NoError(t, err)

	devs, err := repos.Devices(nil).ListByUsers(ctx, []string{"a", "b"}, models.PlatformAndroid)
	require.NoError(t, err)
	require.Len(t, devs, 1)
	assert.Equal(t, "b", devs[0].UserID)
}

func TestRegisterDevice_Validation(t *testing.T) {
	svc := NewDeviceService(repomanager.NewMemoryRepositoryManager(), logging.Discard())
	ctx := context.Background()

	_, err := svc.RegisterDevice(ctx, "a", "phone", " ", models.PlatformIOS)
	assert.ErrorIs(t, err, common.ErrorValidation)
	_, err = svc.RegisterDevice(ctx, "a", "phone", "tok", models.DevicePlatform("palm"))
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestUnregisterDevices_OnlyOwn(t *testing.T) {
	repos := repomanager.NewMemoryRepositoryManager()
	svc := NewDeviceService(repos, logging.Discard())
	ctx := context.Background()

	_, err := svc.RegisterDevice(ctx, "a", "phone", "t1", models.PlatformAndroid)
	require.NoError(t, err)
	_, err = svc.RegisterDevice(ctx, "b", "tablet", "t2", models.PlatformAndroid)
	require.NoError(t, err)

	require.NoError(t, svc.UnregisterDevices(ctx, "a", []string{"t1", "t2"}))
	require.NoError(t, svc.UnregisterDevices(ctx, "a", nil))

	devs, err := repos.Devices(nil).ListByUsers(ctx, []string{"a", "b"}, models.PlatformAndroid)
	require.NoError(t, err)
	require.Len(t, devs, 1)
	assert.Equal(t, "t2", devs[0].Token)
}
