package pushnotify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/chatsync/internal/common"
	"github.com/dmitrijs2005/chatsync/internal/logging"
	"github.com/dmitrijs2005/chatsync/internal/server/models"
	"github.com/dmitrijs2005/chatsync/internal/server/repositories/repomanager"
)

// NewMessage is emitted by the push engine for every message row it inserted.
type NewMessage struct {
	MessageID string `json:"message_id"`
	RoomID    string `json:"room_id"`
	SenderID  string `json:"sender_id"`
}

// Worker turns a NewMessage into a Notification for the room's other members.
type Worker struct {
	repos  repomanager.RepositoryManager
	sender Sender
	log    logging.Logger
	now    func() time.Time
}

func NewWorker(repos repomanager.RepositoryManager, sender Sender, log logging.Logger) *Worker {
	return &Worker{
		repos:  repos,
		sender: sender,
		log:    log.With("module", "pushnotify"),
		now:    time.Now,
	}
}

func (w *Worker) HandleNewMessage(ctx context.Context, ev NewMessage) error {
	conn := w.repos.Conn()

	msg, err := w.repos.Messages(conn).FindByID(ctx, ev.MessageID)
	if errors.Is(err, common.ErrorNotFound) || (err == nil && msg.IsDeleted) {
		w.log.Debug(ctx, "message gone, skipping notification", "message_id", ev.MessageID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("load message: %w", err)
	}

	room, err := w.repos.Rooms(conn).FindByID(ctx, msg.RoomID)
	if errors.Is(err, common.ErrorNotFound) || (err == nil && room.IsDeleted) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load room: %w", err)
	}

	memberships, err := w.repos.Members(conn).ListByRooms(ctx, []string{room.ID})
	if err != nil {
		return fmt.Errorf("load members: %w", err)
	}
	prefs, err := w.repos.Preferences(conn).ListByRoom(ctx, room.ID)
	if err != nil {
		return fmt.Errorf("load preferences: %w", err)
	}
	silenced := make(map[string]bool, len(prefs))
	now := w.now()
	for _, p := range prefs {
		silenced[p.UserID] = p.Silenced(now)
	}

	var recipients []string
	for _, m := range memberships {
		if m.IsDeleted || m.UserID == msg.UserID || silenced[m.UserID] {
			continue
		}
		recipients = append(recipients, m.UserID)
	}
	if len(recipients) == 0 {
		w.log.Debug(ctx, "sending notification skipped, no recipients", "room_id", room.ID)
		return nil
	}

	devices, err := w.repos.Devices(conn).ListByUsers(ctx, recipients, models.PlatformAndroid)
	if err != nil {
		return fmt.Errorf("load devices: %w", err)
	}
	tokens := make([]string, 0, len(devices))
	for _, d := range devices {
		tokens = append(tokens, d.Token)
	}
	if len(tokens) == 0 {
		w.log.Debug(ctx, "sending notification skipped, no token", "room_id", room.ID)
		return nil
	}

	title := w.title(ctx, room, msg.UserID)
	w.log.Info(ctx, "sending notification", "room_id", room.ID, "tokens", len(tokens))

	return w.sender.Send(ctx, Notification{
		Title:       title,
		CollapseKey: room.ID,
		Tokens:      tokens,
		Data: map[string]string{
			"title":     title,
			"senderId":  msg.UserID,
			"messageId": msg.ID,
			"roomId":    room.ID,
		},
	})
}

func (w *Worker) title(ctx context.Context, room *models.Room, senderID string) string {
	if room.Name != nil && *room.Name != "" {
		return *room.Name
	}
	sender, err := w.repos.Users(w.repos.Conn()).FindByID(ctx, senderID)
	if err == nil && sender.Name != "" {
		return sender.Name
	}
	return DefaultTitle
}
