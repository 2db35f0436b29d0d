package syncengine

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/chatsync/internal/logging"
	"github.com/dmitrijs2005/chatsync/internal/server/models"
	"github.com/dmitrijs2005/chatsync/internal/server/notify"
	"github.com/dmitrijs2005/chatsync/internal/server/pushnotify"
	"github.com/dmitrijs2005/chatsync/internal/server/repositories/memory"
	"github.com/dmitrijs2005/chatsync/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/chatsync/internal/wire"
)

// tickingClock advances one millisecond per reading so every write gets a
// distinct timestamp.
type tickingClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *tickingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(time.Millisecond)
	return c.t
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []notify.Event
}

func (p *recordingPublisher) Publish(_ context.Context, ev notify.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return nil
}

func (p *recordingPublisher) Events() []notify.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]notify.Event(nil), p.events...)
}

type recordingDispatcher struct {
	mu     sync.Mutex
	events []pushnotify.NewMessage
}

func (d *recordingDispatcher) Dispatch(_ context.Context, ev pushnotify.NewMessage) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, ev)
	return nil
}

func (d *recordingDispatcher) Events() []pushnotify.NewMessage {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]pushnotify.NewMessage(nil), d.events...)
}

type fixture struct {
	ctx        context.Context
	clock      *tickingClock
	repos      repomanager.RepositoryManager
	engine     *Engine
	publisher  *recordingPublisher
	dispatcher *recordingDispatcher
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()
	clock := &tickingClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	repos := repomanager.NewMemoryRepositoryManager(memory.WithClock(clock.Now))
	f := &fixture{
		ctx:        context.Background(),
		clock:      clock,
		repos:      repos,
		publisher:  &recordingPublisher{},
		dispatcher: &recordingDispatcher{},
	}
	opts = append([]Option{
		WithPublisher(f.publisher),
		WithDispatcher(f.dispatcher),
		WithConcurrency(4),
	}, opts...)
	f.engine = New(repos, logging.Discard(), opts...)
	return f
}

func (f *fixture) users(t *testing.T, ids ...string) {
	t.Helper()
	for _, id := range ids {
		_, err := f.repos.Users(nil).Create(f.ctx, &models.User{ID: id, Name: "user " + id, Email: id + "@example.com", Role: models.RoleUser})
		require.NoError(t, err)
	}
}

func (f *fixture) room(t *testing.T, id string, name *string, members ...string) {
	t.Helper()
	require.NoError(t, f.repos.Rooms(nil).Upsert(f.ctx, &models.Room{ID: id, Name: name}))
	for _, m := range members {
		require.NoError(t, f.repos.Members(nil).Upsert(f.ctx, id, m))
	}
}

func (f *fixture) message(t *testing.T, id, roomID, userID string, typ models.MessageType) {
	t.Helper()
	_, err := f.repos.Messages(nil).Upsert(f.ctx, &models.Message{ID: id, Cipher: "c-" + id, Type: typ, UserID: userID, RoomID: roomID})
	require.NoError(t, err)
}

func (f *fixture) pull(t *testing.T, userID string, since *int64) *wire.PullResult {
	t.Helper()
	res, err := f.engine.Pull(f.ctx, userID, since)
	require.NoError(t, err)
	return res
}

func (f *fixture) push(t *testing.T, userID string, changes *wire.Changes) {
	t.Helper()
	ok, err := f.engine.Push(f.ctx, userID, "session-"+userID, 0, changes)
	require.NoError(t, err)
	require.True(t, ok)
	f.engine.Wait()
}

func (f *fixture) isMember(t *testing.T, roomID, userID string) bool {
	t.Helper()
	ok, err := f.repos.Members(nil).IsMember(f.ctx, roomID, userID)
	require.NoError(t, err)
	return ok
}

func ids[T wire.Record](records []T) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.RecordID())
	}
	return out
}

func find[T wire.Record](records []T, id string) (T, bool) {
	for _, r := range records {
		if r.RecordID() == id {
			return r, true
		}
	}
	var zero T
	return zero, false
}

func ptr[T any](v T) *T { return &v }
