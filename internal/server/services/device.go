package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/chatsync/internal/common"
	"github.com/dmitrijs2005/chatsync/internal/dbx"
	"github.com/dmitrijs2005/chatsync/internal/logging"
	"github.com/dmitrijs2005/chatsync/internal/server/models"
	"github.com/dmitrijs2005/chatsync/internal/server/repositories/repomanager"
)

// DeviceService manages push notification targets.
type DeviceService struct {
	repomanager repomanager.RepositoryManager
	log         logging.Logger
}

func NewDeviceService(m repomanager.RepositoryManager, log logging.Logger) *DeviceService {
	return &DeviceService{repomanager: m, log: log.With("module", "devices")}
}

// RegisterDevice binds token to userID. A token registered by anyone else
// before is moved over, since a physical device has one owner at a time.
func (s *DeviceService) RegisterDevice(ctx context.Context, userID, name, token string, platform models.DevicePlatform) (*models.Device, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, fmt.Errorf("%w: token is required", common.ErrorValidation)
	}
	if !platform.Valid() {
		return nil, fmt.Errorf("%w: unknown platform %q", common.ErrorValidation, platform)
	}

	d := &models.Device{
		ID:       uuid.NewString(),
		UserID:   userID,
		Name:     name,
		Token:    token,
		Platform: platform,
	}
	err := s.repomanager.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Devices(tx)
		if err := repo.DeleteByToken(ctx, token); err != nil {
			return err
		}
		return repo.Create(ctx, d)
	})
	if err != nil {
		return nil, err
	}
	s.log.Debug(ctx, "device registered", "user_id", userID, "platform", string(platform))
	return d, nil
}

// UnregisterDevices drops the caller's devices with the given tokens.
func (s *DeviceService) UnregisterDevices(ctx context.Context, userID string, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}
	return s.repomanager.Devices(s.repomanager.Conn()).DeleteByTokens(ctx, userID, tokens)
}
