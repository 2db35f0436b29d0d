package client

import (
	"context"
	"errors"
	"io"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/chatsync/internal/client/repositories/replica"
	"github.com/dmitrijs2005/chatsync/internal/logging"
	pb "github.com/dmitrijs2005/chatsync/internal/proto"
	"github.com/dmitrijs2005/chatsync/internal/wire"
)

type syncAPI interface {
	Pull(ctx context.Context, lastPulledAt *int64) (*wire.PullResult, error)
	Push(ctx context.Context, lastPulledAt int64, changes *wire.Changes) error
	ShouldSync(ctx context.Context, roomIDs []string) (pb.ChatSync_ShouldSyncClient, error)
}

// Syncer reconciles the local replica with the server: pull, apply, then
// push whatever the outbox holds.
type Syncer struct {
	api   syncAPI
	store *replica.Store
	log   logging.Logger

	mu sync.Mutex
}

func NewSyncer(api syncAPI, store *replica.Store, log logging.Logger) *Syncer {
	return &Syncer{api: api, store: store, log: log}
}

// SyncStats reports what one Sync moved.
type SyncStats struct {
	Pulled    int
	Pushed    int
	Timestamp int64
}

func countChanges(c *wire.Changes) int {
	return len(c.Users.Created) + len(c.Users.Updated) + len(c.Users.Deleted) +
		len(c.Rooms.Created) + len(c.Rooms.Updated) + len(c.Rooms.Deleted) +
		len(c.RoomMembers.Created) + len(c.RoomMembers.Updated) + len(c.RoomMembers.Deleted) +
		len(c.Messages.Created) + len(c.Messages.Updated) + len(c.Messages.Deleted) +
		len(c.ReadReceipts.Created) + len(c.ReadReceipts.Updated) + len(c.ReadReceipts.Deleted) +
		len(c.Attachments.Created) + len(c.Attachments.Updated) + len(c.Attachments.Deleted)
}

// Sync runs one pull/push round. Calls are serialized.
func (s *Syncer) Sync(ctx context.Context) (SyncStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var stats SyncStats

	last, err := s.store.LastPulledAt(ctx)
	if err != nil {
		return stats, err
	}
	res, err := s.api.Pull(ctx, last)
	if err != nil {
		return stats, err
	}
	if err := s.store.Apply(ctx, res); err != nil {
		return stats, err
	}
	stats.Pulled = countChanges(&res.Changes)
	stats.Timestamp = res.Timestamp

	pending, seq, err := s.store.Pending(ctx)
	if err != nil {
		return stats, err
	}
	if seq == 0 {
		return stats, nil
	}
	if err := s.api.Push(ctx, res.Timestamp, pending); err != nil {
		return stats, err
	}
	if err := s.store.Ack(ctx, seq); err != nil {
		return stats, err
	}
	stats.Pushed = countChanges(pending)

	s.log.Debug(ctx, "synced", "pulled", stats.Pulled, "pushed", stats.Pushed, "timestamp", stats.Timestamp)
	return stats, nil
}

// Watch keeps a ShouldSync stream open and syncs on every signal. The
// stream is reopened after interval when it drops, and whenever a sync
// changes the set of known rooms. Watch returns when ctx is done.
func (s *Syncer) Watch(ctx context.Context, interval time.Duration, onSync func(SyncStats)) error {
	for {
		err := s.watchOnce(ctx, onSync)
		if ctx.Err() != nil {
			return nil
		}
		if err != nil {
			s.log.Warn(ctx, "sync stream interrupted", "error", err, "retry_in", interval.String())
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(interval):
			}
		}
	}
}

func (s *Syncer) watchOnce(ctx context.Context, onSync func(SyncStats)) error {
	stats, err := s.Sync(ctx)
	if err != nil {
		return err
	}
	if onSync != nil {
		onSync(stats)
	}

	rooms, err := s.store.RoomIDs(ctx)
	if err != nil {
		return err
	}
	slices.Sort(rooms)

	streamCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	stream, err := s.api.ShouldSync(streamCtx, rooms)
	if err != nil {
		return err
	}

	for {
		if _, err := stream.Recv(); err != nil {
			if errors.Is(err, io.EOF) {
				return io.ErrUnexpectedEOF
			}
			return err
		}

		stats, err := s.Sync(ctx)
		if err != nil {
			return err
		}
		if onSync != nil {
			onSync(stats)
		}

		now, err := s.store.RoomIDs(ctx)
		if err != nil {
			return err
		}
		slices.Sort(now)
		if !slices.Equal(rooms, now) {
			// resubscribe immediately with the new room set
			return nil
		}
	}
}
