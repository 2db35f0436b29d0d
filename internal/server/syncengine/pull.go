package syncengine

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/chatsync/internal/server/models"
	"github.com/dmitrijs2005/chatsync/internal/timex"
	"github.com/dmitrijs2005/chatsync/internal/wire"
)

// epoch is the watermark of a first sync.
var epoch = time.Unix(0, 0).UTC()

// pullState is the snapshot one Pull works on plus the records it emits.
type pullState struct {
	userID    string
	since     time.Time
	followers map[string]struct{}
	following map[string]struct{}

	rooms    map[string]*models.Room
	prefs    map[string]*models.RoomPreferences
	users    map[string]*models.User
	members  map[string][]*models.Membership
	messages map[string][]*models.Message
	receipts map[string][]*models.ReadReceipt
	atts     map[string][]*models.Attachment
	lastSeen map[string]time.Time

	outUsers    *accumulator[wire.UserRecord]
	outRooms    *accumulator[wire.RoomRecord]
	outMembers  *accumulator[wire.MemberRecord]
	outMessages *accumulator[wire.MessageRecord]
	outReceipts *accumulator[wire.ReadReceiptRecord]
	outAtts     *accumulator[wire.AttachmentRecord]
}

// Pull returns every change visible to userID since lastPulledAt
// (milliseconds, nil for a first sync). The returned timestamp is read from
// the store clock after all reads and is the watermark for the next call.
func (e *Engine) Pull(ctx context.Context, userID string, lastPulledAt *int64) (*wire.PullResult, error) {
	since := epoch
	if lastPulledAt != nil {
		since = timex.FromMillis(*lastPulledAt)
	}

	st, active, err := e.loadPull(ctx, userID, since)
	if err != nil {
		return nil, err
	}
	now, err := e.repos.Now(ctx)
	if err != nil {
		return nil, fmt.Errorf("read clock: %w", err)
	}

	for _, roomID := range active {
		st.collectRoom(roomID)
	}

	result := &wire.PullResult{
		Changes: wire.Changes{
			Users:        wire.Extract(st.outUsers.Items()),
			Rooms:        wire.Extract(st.outRooms.Items()),
			RoomMembers:  wire.Extract(st.outMembers.Items()),
			Messages:     wire.Extract(st.outMessages.Items()),
			ReadReceipts: wire.Extract(st.outReceipts.Items()),
			Attachments:  wire.Extract(st.outAtts.Items()),
		},
		Timestamp: timex.Millis(now),
	}

	e.log.Debug(ctx, "pull",
		"user_id", userID,
		"since", timex.Millis(since),
		"rooms", len(result.Changes.Rooms.Updated),
		"messages", len(result.Changes.Messages.Updated),
	)
	return result, nil
}

// loadPull reads the snapshot and returns the ids of the rooms the user is
// an active member of. Tombstones of rooms and own memberships are emitted
// here since nothing else of those rooms is visible.
func (e *Engine) loadPull(ctx context.Context, userID string, since time.Time) (*pullState, []string, error) {
	conn := e.repos.Conn()
	usersRepo := e.repos.Users(conn)
	membersRepo := e.repos.Members(conn)
	receiptsRepo := e.repos.ReadReceipts(conn)

	me, err := usersRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("load user: %w", err)
	}
	followers, err := usersRepo.Followers(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("load followers: %w", err)
	}
	following, err := usersRepo.Following(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("load following: %w", err)
	}

	st := &pullState{
		userID:      userID,
		since:       since,
		followers:   toSet(followers),
		following:   toSet(following),
		rooms:       make(map[string]*models.Room),
		prefs:       make(map[string]*models.RoomPreferences),
		users:       map[string]*models.User{me.ID: me},
		members:     make(map[string][]*models.Membership),
		messages:    make(map[string][]*models.Message),
		receipts:    make(map[string][]*models.ReadReceipt),
		atts:        make(map[string][]*models.Attachment),
		outUsers:    newAccumulator[wire.UserRecord](),
		outRooms:    newAccumulator[wire.RoomRecord](),
		outMembers:  newAccumulator[wire.MemberRecord](),
		outMessages: newAccumulator[wire.MessageRecord](),
		outReceipts: newAccumulator[wire.ReadReceiptRecord](),
		outAtts:     newAccumulator[wire.AttachmentRecord](),
	}
	if st.changed(me.UpdatedAt) {
		st.outUsers.Put(st.userRecord(me))
	}

	own, err := membersRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("load memberships: %w", err)
	}
	roomIDs := make([]string, 0, len(own))
	for _, m := range own {
		roomIDs = append(roomIDs, m.RoomID)
	}
	if len(roomIDs) == 0 {
		return st, nil, nil
	}

	rooms, err := e.repos.Rooms(conn).FindByIDs(ctx, roomIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("load rooms: %w", err)
	}
	for _, r := range rooms {
		st.rooms[r.ID] = r
	}
	prefs, err := e.repos.Preferences(conn).ListByUser(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("load preferences: %w", err)
	}
	for _, p := range prefs {
		st.prefs[p.RoomID] = p
	}

	var active []string
	for _, m := range own {
		room, ok := st.rooms[m.RoomID]
		if !ok {
			continue
		}
		switch {
		case m.IsDeleted:
			if st.changed(m.UpdatedAt) {
				st.outMembers.Put(memberRecord(m))
			}
		case room.IsDeleted:
			if st.changed(room.UpdatedAt) {
				st.outRooms.Put(roomRecord(room))
			}
		default:
			active = append(active, room.ID)
		}
	}
	if len(active) == 0 {
		return st, nil, nil
	}

	memberships, err := membersRepo.ListByRooms(ctx, active)
	if err != nil {
		return nil, nil, fmt.Errorf("load room members: %w", err)
	}
	userIDs := []string{userID}
	for _, m := range memberships {
		st.members[m.RoomID] = append(st.members[m.RoomID], m)
		if !m.IsDeleted {
			userIDs = append(userIDs, m.UserID)
		}
	}

	messages, err := e.repos.Messages(conn).ListByRooms(ctx, active)
	if err != nil {
		return nil, nil, fmt.Errorf("load messages: %w", err)
	}
	var changedIDs []string
	for _, msg := range messages {
		st.messages[msg.RoomID] = append(st.messages[msg.RoomID], msg)
		if st.changed(msg.UpdatedAt) && !msg.IsDeleted {
			changedIDs = append(changedIDs, msg.ID)
			userIDs = append(userIDs, msg.UserID)
		}
	}

	receipts, err := receiptsRepo.ListChangedByRooms(ctx, active, since)
	if err != nil {
		return nil, nil, fmt.Errorf("load read receipts: %w", err)
	}
	for _, rr := range receipts {
		st.receipts[rr.RoomID] = append(st.receipts[rr.RoomID], rr)
	}
	if st.lastSeen, err = receiptsRepo.LastSeenByUser(ctx, userID, active); err != nil {
		return nil, nil, fmt.Errorf("load last seen: %w", err)
	}

	if len(changedIDs) > 0 {
		atts, err := e.repos.Attachments(conn).ListByMessages(ctx, changedIDs)
		if err != nil {
			return nil, nil, fmt.Errorf("load attachments: %w", err)
		}
		for _, a := range atts {
			st.atts[a.MessageID] = append(st.atts[a.MessageID], a)
		}
	}

	users, err := usersRepo.FindByIDs(ctx, userIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("load users: %w", err)
	}
	for _, u := range users {
		st.users[u.ID] = u
	}
	return st, active, nil
}

func (st *pullState) changed(t time.Time) bool {
	return t.After(st.since)
}

func (st *pullState) collectRoom(roomID string) {
	room := st.rooms[roomID]
	roomChanged := st.changed(room.UpdatedAt)

	for _, m := range st.members[roomID] {
		if m.IsDeleted {
			if roomChanged && st.changed(m.UpdatedAt) {
				st.outMembers.Put(memberRecord(m))
			}
			continue
		}
		if u, ok := st.users[m.UserID]; ok && st.changed(u.UpdatedAt) {
			st.outUsers.Put(st.userRecord(u))
		}
		if roomChanged {
			st.outMembers.Put(memberRecord(m))
		}
	}

	for _, rr := range st.receipts[roomID] {
		st.outReceipts.Put(readReceiptRecord(rr))
	}

	var (
		last        *models.Message
		emittedMsgs bool
	)
	for _, msg := range st.messages[roomID] {
		if !msg.IsDeleted && msg.Type != models.MessageTypeSharedKey {
			if last == nil || !msg.CreatedAt.Before(last.CreatedAt) {
				last = msg
			}
		}
		if !st.changed(msg.UpdatedAt) {
			continue
		}
		emittedMsgs = true
		st.outMessages.Put(messageRecord(msg))
		if msg.IsDeleted {
			continue
		}
		for _, a := range st.atts[msg.ID] {
			st.outAtts.Put(attachmentRecord(a))
		}
		if u, ok := st.users[msg.UserID]; ok {
			st.outUsers.Put(st.userRecord(u))
		}
	}

	prefs := st.prefs[roomID]
	prefsChanged := prefs != nil && st.changed(prefs.UpdatedAt)
	if !roomChanged && !emittedMsgs && !prefsChanged {
		return
	}

	rec := roomRecord(room)
	if last != nil {
		rec.LastMessageID = &last.ID
		rec.LastChangeAt = timex.MillisPtr(&last.CreatedAt)
	} else {
		rec.LastChangeAt = timex.MillisPtr(&room.UpdatedAt)
	}
	if seen, ok := st.lastSeen[roomID]; ok {
		rec.LastReadAt = timex.MillisPtr(&seen)
	}
	if prefs != nil {
		rec.IsMuted = prefs.IsMuted
		rec.ShouldStillNotify = prefs.ShouldStillNotify
		rec.MutedUntil = timex.MillisPtr(prefs.MutedUntil)
	}
	st.outRooms.Put(rec)
}

// userRecord adds the follow flags relative to the pulling user. They stay
// nil on the user's own record.
func (st *pullState) userRecord(u *models.User) wire.UserRecord {
	rec := userRecord(u)
	if u.ID == st.userID {
		return rec
	}
	_, followsMe := st.followers[u.ID]
	_, followedByMe := st.following[u.ID]
	rec.IsFollowingMe = &followsMe
	rec.IsFollowedByMe = &followedByMe
	return rec
}

func toSet(ids []string) map[string]struct{} {
	m := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		m[id] = struct{}{}
	}
	return m
}
