package cli

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/chatsync/internal/client/client"
	"github.com/dmitrijs2005/chatsync/internal/cryptox"
	"github.com/dmitrijs2005/chatsync/internal/filex"
	"github.com/dmitrijs2005/chatsync/internal/netx"
	pb "github.com/dmitrijs2005/chatsync/internal/proto"
	"github.com/dmitrijs2005/chatsync/internal/timex"
	"github.com/dmitrijs2005/chatsync/internal/wire"
)

const historyLimit = 20

// resolveRoom accepts a room id or a unique id prefix.
func (a *App) resolveRoom(ctx context.Context, ref string) (wire.RoomRecord, error) {
	rooms, err := a.repos.Replica.Rooms(ctx)
	if err != nil {
		return wire.RoomRecord{}, err
	}
	var match []wire.RoomRecord
	for _, r := range rooms {
		if r.ID == ref {
			return r, nil
		}
		if strings.HasPrefix(r.ID, ref) {
			match = append(match, r)
		}
	}
	switch len(match) {
	case 0:
		return wire.RoomRecord{}, fmt.Errorf("room %q not found", ref)
	case 1:
		return match[0], nil
	default:
		return wire.RoomRecord{}, fmt.Errorf("room prefix %q is ambiguous", ref)
	}
}

func (a *App) displayName(ctx context.Context, userID string) string {
	if u, err := a.repos.Replica.User(ctx, userID); err == nil {
		return u.Name
	}
	return shortID(userID)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func (a *App) roomTitle(ctx context.Context, r wire.RoomRecord, self string) string {
	if r.Name != nil && *r.Name != "" {
		return *r.Name
	}
	members, err := a.repos.Replica.Members(ctx, r.ID)
	if err != nil {
		return shortID(r.ID)
	}
	var names []string
	for _, m := range members {
		if m.UserID != self {
			names = append(names, a.displayName(ctx, m.UserID))
		}
	}
	if len(names) == 0 {
		return "(just you)"
	}
	return strings.Join(names, ", ")
}

func (a *App) Rooms(ctx context.Context) error {
	self, err := a.currentUser()
	if err != nil {
		return err
	}
	rooms, err := a.repos.Replica.Rooms(ctx)
	if err != nil {
		return err
	}
	if len(rooms) == 0 {
		a.printf("No rooms yet\n")
		return nil
	}
	for _, r := range rooms {
		unread := ""
		if r.LastChangeAt != nil && (r.LastReadAt == nil || *r.LastReadAt < *r.LastChangeAt) && r.LastMessageID != nil {
			unread = " *"
		}
		muted := ""
		if r.IsMuted {
			muted = " (muted)"
		}
		a.printf("%s  %s%s%s\n", shortID(r.ID), a.roomTitle(ctx, r, self), muted, unread)
	}
	return nil
}

// History prints the latest messages of a room and marks them seen.
func (a *App) History(ctx context.Context, args []string) error {
	self, err := a.currentUser()
	if err != nil {
		return err
	}
	if len(args) < 1 {
		return errUsage("history <room>")
	}
	room, err := a.resolveRoom(ctx, args[0])
	if err != nil {
		return err
	}
	msgs, err := a.repos.Replica.Messages(ctx, room.ID, historyLimit)
	if err != nil {
		return err
	}
	a.printf("== %s ==\n", a.roomTitle(ctx, room, self))
	a.printMessages(ctx, msgs)
	a.mu.Lock()
	delete(a.cursors, room.ID)
	a.mu.Unlock()
	if len(msgs) == 0 {
		return nil
	}
	seen := client.MarkSeen(self, msgs, a.now())
	if len(seen.ReadReceipts.Created) == 0 {
		return nil
	}
	return a.repos.Replica.Enqueue(ctx, seen)
}

func (a *App) printMessages(ctx context.Context, msgs []wire.MessageRecord) {
	for _, m := range msgs {
		at := timex.FromMillis(m.CreatedAt)
		if m.CreatedAt == 0 && m.SentAt != nil {
			at = timex.FromMillis(*m.SentAt)
		}
		body := m.Cipher
		if env, ok := client.ParseFileEnvelope(m.Cipher); ok {
			body = fmt.Sprintf("[file %s] (download %s)", env.Name, env.AttachmentID)
		}
		a.printf("[%s] %s: %s\n", at.Local().Format("15:04"), a.displayName(ctx, m.UserID), body)
	}
}

// Older pages back through a room's history on the server. Each call
// continues where the previous one stopped; history resets the position.
func (a *App) Older(ctx context.Context, args []string) error {
	if _, err := a.currentUser(); err != nil {
		return err
	}
	if len(args) < 1 {
		return errUsage("older <room>")
	}
	room, err := a.resolveRoom(ctx, args[0])
	if err != nil {
		return err
	}

	a.mu.Lock()
	before, started := a.cursors[room.ID]
	a.mu.Unlock()
	if started && before == nil {
		a.printf("No older messages\n")
		return nil
	}

	page, err := a.api.GetMessages(ctx, room.ID, before, historyLimit)
	if err != nil {
		return err
	}
	// The page is newest first; print it in reading order.
	msgs := slices.Clone(page.Messages)
	slices.Reverse(msgs)
	a.printMessages(ctx, msgs)

	next := page.Cursor
	if !page.HasMore {
		next = nil
	}
	a.mu.Lock()
	a.cursors[room.ID] = next
	a.mu.Unlock()
	if next == nil {
		a.printf("-- beginning of %s --\n", a.roomTitle(ctx, room, ""))
	}
	return nil
}

// Send queues a message and syncs when online. args[1:] is the text; with
// no text the message is read as multiple lines.
func (a *App) Send(ctx context.Context, args []string) error {
	self, err := a.currentUser()
	if err != nil {
		return err
	}
	if len(args) < 1 {
		return errUsage("send <room> [text]")
	}
	room, err := a.resolveRoom(ctx, args[0])
	if err != nil {
		return err
	}
	text := strings.Join(args[1:], " ")
	if text == "" {
		if text, err = GetMultiline(a.reader, "Message", a.out); err != nil {
			return err
		}
	}
	if text == "" {
		return errors.New("empty message")
	}

	_, changes := client.NewMessage(self, room.ID, text, a.now())
	if err := a.repos.Replica.Enqueue(ctx, changes); err != nil {
		return err
	}
	return a.syncIfOnline(ctx)
}

// NewRoom creates a room with the given members. args: name followed by
// member user ids; use "-" for an unnamed room.
func (a *App) NewRoom(ctx context.Context, args []string) error {
	self, err := a.currentUser()
	if err != nil {
		return err
	}
	if len(args) < 1 {
		return errUsage("newroom <name|-> [user-id...]")
	}
	name := args[0]
	if name == "-" {
		name = ""
	}
	roomID, changes := client.NewRoom(self, name, args[1:], a.now())
	if err := a.repos.Replica.Enqueue(ctx, changes); err != nil {
		return err
	}
	a.printf("Room %s created\n", shortID(roomID))
	return a.syncIfOnline(ctx)
}

func (a *App) Leave(ctx context.Context, args []string) error {
	self, err := a.currentUser()
	if err != nil {
		return err
	}
	if len(args) < 1 {
		return errUsage("leave <room>")
	}
	room, err := a.resolveRoom(ctx, args[0])
	if err != nil {
		return err
	}
	if err := a.repos.Replica.Enqueue(ctx, client.LeaveRoom(self, room.ID)); err != nil {
		return err
	}
	return a.syncIfOnline(ctx)
}

func (a *App) syncIfOnline(ctx context.Context) error {
	if a.Mode() != ModeOnline {
		a.printf("Queued, will be sent on next sync\n")
		return nil
	}
	return a.Sync(ctx)
}

func (a *App) Users(ctx context.Context) error {
	self, err := a.currentUser()
	if err != nil {
		return err
	}
	users, err := a.repos.Replica.Users(ctx)
	if err != nil {
		return err
	}
	for _, u := range users {
		if u.ID == self {
			continue
		}
		flags := ""
		if u.IsFollowedByMe != nil && *u.IsFollowedByMe {
			flags += " [following]"
		}
		if u.IsFollowingMe != nil && *u.IsFollowingMe {
			flags += " [follows you]"
		}
		a.printf("%s  %s <%s>%s\n", u.ID, u.Name, u.Email, flags)
	}
	return nil
}

// Search looks users up on the server by name. The pattern matches anywhere
// in the name, case-insensitively.
func (a *App) Search(ctx context.Context, args []string) error {
	if _, err := a.currentUser(); err != nil {
		return err
	}
	if len(args) < 1 || len(args) > 3 {
		return errUsage("search <name> [skip] [take]")
	}
	q := client.UserSearch{Name: "%" + args[0] + "%", OrderBy: "name"}
	for i, dst := range []*int{&q.Skip, &q.Take} {
		if len(args) <= i+1 {
			break
		}
		n, err := strconv.Atoi(args[i+1])
		if err != nil || n < 0 {
			return errUsage("search <name> [skip] [take]")
		}
		*dst = n
	}

	users, err := a.api.ListUsers(ctx, q)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		a.printf("No users found\n")
		return nil
	}
	for _, u := range users {
		a.printf("%s  %s <%s>\n", u.ID, u.Name, u.Email)
	}
	return nil
}

func (a *App) Follow(ctx context.Context, args []string, follow bool) error {
	if _, err := a.currentUser(); err != nil {
		return err
	}
	if len(args) < 1 {
		return errUsage("follow|unfollow <user-id>")
	}
	var err error
	if follow {
		err = a.api.Follow(ctx, args[0])
	} else {
		err = a.api.Unfollow(ctx, args[0])
	}
	if err != nil {
		return err
	}
	return a.Sync(ctx)
}

// Mute mutes a room for the given number of minutes, or until unmuted when
// minutes is omitted.
func (a *App) Mute(ctx context.Context, args []string, mute bool) error {
	if _, err := a.currentUser(); err != nil {
		return err
	}
	if len(args) < 1 {
		return errUsage("mute <room> [minutes] | unmute <room>")
	}
	room, err := a.resolveRoom(ctx, args[0])
	if err != nil {
		return err
	}
	req := &pb.RoomPreferences{RoomId: room.ID, IsMuted: mute}
	if mute && len(args) > 1 {
		minutes, err := strconv.Atoi(args[1])
		if err != nil || minutes <= 0 {
			return errUsage("mute <room> [minutes]")
		}
		until := timex.Millis(a.now().Add(time.Duration(minutes) * time.Minute))
		req.MutedUntil = &until
	}
	if _, err := a.api.UpdateRoomPreferences(ctx, req); err != nil {
		return err
	}
	return a.Sync(ctx)
}

func (a *App) RegisterDevice(ctx context.Context, args []string) error {
	if _, err := a.currentUser(); err != nil {
		return err
	}
	if len(args) < 3 {
		return errUsage("device <name> <push-token> <android|ios|web>")
	}
	d, err := a.api.RegisterDevice(ctx, args[0], args[1], args[2])
	if err != nil {
		return err
	}
	a.printf("Device %s registered\n", d.GetId())
	return nil
}

func (a *App) UploadURL(ctx context.Context) error {
	if _, err := a.currentUser(); err != nil {
		return err
	}
	u, err := a.api.UploadURL(ctx)
	if err != nil {
		return err
	}
	a.printf("key: %s\nurl: %s\n", u.GetKey(), u.GetUrl())
	return nil
}

// Attach encrypts a local file, uploads it and queues the message that
// announces it. The upload itself needs a connection.
func (a *App) Attach(ctx context.Context, args []string) error {
	self, err := a.currentUser()
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return errUsage("attach <room> <path>")
	}
	room, err := a.resolveRoom(ctx, args[0])
	if err != nil {
		return err
	}

	sealed, err := cryptox.SealFile(args[1])
	if err != nil {
		return err
	}
	u, err := a.api.UploadURL(ctx)
	if err != nil {
		return err
	}
	if err := netx.Upload(ctx, u.GetUrl(), sealed.Ciphertext); err != nil {
		return err
	}

	attID, changes, err := client.NewAttachment(self, room.ID, u.GetKey(), args[1], sealed, a.now())
	if err != nil {
		return err
	}
	if err := a.repos.Replica.Enqueue(ctx, changes); err != nil {
		return err
	}
	a.printf("Attached %s as %s\n", args[1], attID)
	return a.syncIfOnline(ctx)
}

// Download fetches an attachment, decrypts it with the key from its message
// and saves it under dir (default "downloads").
func (a *App) Download(ctx context.Context, args []string) error {
	if _, err := a.currentUser(); err != nil {
		return err
	}
	if len(args) < 1 || len(args) > 2 {
		return errUsage("download <attachment-id> [dir]")
	}
	dir := a.config.DownloadDir
	if len(args) == 2 {
		dir = args[1]
	}

	att, err := a.repos.Replica.Attachment(ctx, args[0])
	if err != nil {
		return err
	}
	msg, err := a.repos.Replica.Message(ctx, att.MessageID)
	if err != nil {
		return err
	}
	env, ok := client.ParseFileEnvelope(msg.Cipher)
	if !ok || env.AttachmentID != att.ID {
		return fmt.Errorf("attachment %s: no key in message %s", att.ID, att.MessageID)
	}

	url, err := a.api.DownloadURL(ctx, att.ID)
	if err != nil {
		return err
	}
	blob, err := netx.Download(ctx, url)
	if err != nil {
		return err
	}
	plain, err := cryptox.Open(blob, env.Key, env.Nonce)
	if err != nil {
		return fmt.Errorf("decrypt %s: %w", att.ID, err)
	}
	path, err := filex.Save(dir, env.Name, plain)
	if err != nil {
		return err
	}
	a.printf("Saved %s\n", path)
	return nil
}

// Watch starts background sync driven by the ShouldSync stream.
func (a *App) Watch(ctx context.Context) error {
	if _, err := a.currentUser(); err != nil {
		return err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.stopWatch != nil {
		a.printf("Already watching\n")
		return nil
	}
	watchCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	a.stopWatch, a.watchDone = cancel, done

	go func() {
		defer close(done)
		_ = a.syncer.Watch(watchCtx, a.config.ReconnectInterval, func(s client.SyncStats) {
			if s.Pulled > 0 {
				a.printf("\n%d new changes\n", s.Pulled)
			}
		})
	}()
	a.printf("Watching for changes\n")
	return nil
}

func (a *App) StopWatch() {
	a.mu.Lock()
	stop, done := a.stopWatch, a.watchDone
	a.stopWatch, a.watchDone = nil, nil
	a.mu.Unlock()
	if stop == nil {
		return
	}
	stop()
	<-done
}
