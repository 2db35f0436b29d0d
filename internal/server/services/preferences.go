package services

import (
	"context"
	"time"

	"github.com/dmitrijs2005/chatsync/internal/common"
	"github.com/dmitrijs2005/chatsync/internal/dbx"
	"github.com/dmitrijs2005/chatsync/internal/server/authz"
	"github.com/dmitrijs2005/chatsync/internal/server/models"
	"github.com/dmitrijs2005/chatsync/internal/server/repositories/repomanager"
)

type PreferencesService struct {
	repomanager repomanager.RepositoryManager
}

func NewPreferencesService(m repomanager.RepositoryManager) *PreferencesService {
	return &PreferencesService{repomanager: m}
}

// UpdateRoomPreferences stores the caller's mute settings for a room. It
// needs update:own:room and a membership, since preferences hang off the
// membership row. The changed row makes the room reappear in the caller's
// next pull.
func (s *PreferencesService) UpdateRoomPreferences(ctx context.Context, userID, roomID string, isMuted, shouldStillNotify bool, mutedUntil *time.Time) (*models.RoomPreferences, error) {
	p := &models.RoomPreferences{
		UserID:            userID,
		RoomID:            roomID,
		IsMuted:           isMuted,
		ShouldStillNotify: shouldStillNotify,
		MutedUntil:        mutedUntil,
	}
	err := s.repomanager.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := widestGrant(ctx, s.repomanager.Users(tx), userID, authz.ActionUpdate, authz.ResourceRoom); err != nil {
			return err
		}
		ok, err := s.repomanager.Members(tx).IsMember(ctx, roomID, userID)
		if err != nil {
			return err
		}
		if !ok {
			return common.ErrorNotFound
		}
		return s.repomanager.Preferences(tx).Upsert(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}
