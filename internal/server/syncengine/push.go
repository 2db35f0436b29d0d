package syncengine

import (
	"context"
	"errors"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/chatsync/internal/common"
	"github.com/dmitrijs2005/chatsync/internal/dbx"
	"github.com/dmitrijs2005/chatsync/internal/server/notify"
	"github.com/dmitrijs2005/chatsync/internal/server/pushnotify"
	"github.com/dmitrijs2005/chatsync/internal/wire"
)

// outcome is what an applied record contributes to the rest of the push.
type outcome struct {
	room        string
	established bool
	created     *pushnotify.NewMessage
}

// pushRun holds the state shared by the groups of one Push call.
type pushRun struct {
	e         *Engine
	userID    string
	changes   *wire.Changes
	batchJoin map[string]bool

	mu          sync.Mutex
	affected    map[string]struct{}
	established map[string]bool
	created     []pushnotify.NewMessage
}

// Push applies changes on behalf of userID. Tables are processed in
// dependency order; records of one table are applied concurrently, each in
// its own transaction. A rejected or failing record is logged and skipped,
// so Push reports true whenever it runs to completion.
func (e *Engine) Push(ctx context.Context, userID, sessionID string, lastPulledAt int64, changes *wire.Changes) (bool, error) {
	if changes == nil {
		return true, nil
	}
	run := &pushRun{
		e:           e,
		userID:      userID,
		changes:     changes,
		batchJoin:   batchJoins(changes, userID),
		affected:    make(map[string]struct{}),
		established: make(map[string]bool),
	}

	e.log.Debug(ctx, "push", "user_id", userID, "last_pulled_at", lastPulledAt)

	run.pushUsers(ctx)
	run.pushRooms(ctx)
	run.pushMembers(ctx)
	run.pushMessages(ctx)
	run.pushReadReceipts(ctx)
	run.pushAttachments(ctx)

	run.fanOut(ctx, sessionID)
	return true, nil
}

// batchJoins lists the rooms the batch declares userID a member of.
func batchJoins(changes *wire.Changes, userID string) map[string]bool {
	joins := make(map[string]bool)
	for _, list := range [][]wire.MemberRecord{changes.RoomMembers.Created, changes.RoomMembers.Updated} {
		for _, rec := range list {
			key, err := rec.Key()
			if err == nil && key.UserID == userID {
				joins[key.RoomID] = true
			}
		}
	}
	return joins
}

type step struct {
	id    string
	apply func(ctx context.Context, tx dbx.DBTX) (outcome, error)
}

// each runs the steps of one table concurrently and waits for all of them.
func (r *pushRun) each(ctx context.Context, table string, steps []step) {
	if len(steps) == 0 {
		return
	}
	var g errgroup.Group
	g.SetLimit(r.e.concurrency)
	for _, s := range steps {
		s := s
		g.Go(func() error {
			var out outcome
			err := r.e.repos.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
				var err error
				out, err = s.apply(ctx, tx)
				return err
			})
			if err != nil {
				r.logRejected(ctx, table, s.id, err)
				return nil
			}
			r.record(out)
			return nil
		})
	}
	_ = g.Wait()
}

func (r *pushRun) record(out outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if out.room != "" {
		r.affected[out.room] = struct{}{}
	}
	if out.established {
		r.established[out.room] = true
	}
	if out.created != nil {
		r.created = append(r.created, *out.created)
	}
}

func (r *pushRun) isEstablished(roomID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.established[roomID]
}

func (r *pushRun) logRejected(ctx context.Context, table, id string, err error) {
	switch {
	case errors.Is(err, common.ErrorForbidden),
		errors.Is(err, common.ErrorNotFound),
		errors.Is(err, common.ErrorValidation),
		errors.Is(err, common.ErrorConflict),
		errors.Is(err, common.ErrorAlreadyExists):
		r.e.log.Warn(ctx, "push record rejected", "user_id", r.userID, "table", table, "id", id, "reason", err.Error())
	default:
		r.e.log.Error(ctx, "push record failed", "user_id", r.userID, "table", table, "id", id, "error", err)
	}
}

// fanOut publishes the affected rooms and dispatches notifications for new
// messages. Both run after Push has returned.
func (r *pushRun) fanOut(ctx context.Context, sessionID string) {
	e := r.e
	ctx = context.WithoutCancel(ctx)

	if e.dispatcher != nil && len(r.created) > 0 {
		created := r.created
		e.wg.Add(1)
		go func() {
			defer e.wg.Done()
			for _, ev := range created {
				if err := e.dispatcher.Dispatch(ctx, ev); err != nil {
					e.log.Error(ctx, "dispatch notification failed", "message_id", ev.MessageID, "error", err)
				}
			}
		}()
	}

	if e.publisher == nil || len(r.affected) == 0 {
		return
	}
	roomIDs := make([]string, 0, len(r.affected))
	for id := range r.affected {
		roomIDs = append(roomIDs, id)
	}
	sort.Strings(roomIDs)

	e.wg.Add(1)
	go func() {
		defer e.wg.Done()

		memberships, err := e.repos.Members(e.repos.Conn()).ListByRooms(ctx, roomIDs)
		if err != nil {
			e.log.Error(ctx, "load affected room members failed", "error", err)
			return
		}
		byRoom := make(map[string][]string, len(roomIDs))
		for _, m := range memberships {
			if !m.IsDeleted {
				byRoom[m.RoomID] = append(byRoom[m.RoomID], m.UserID)
			}
		}
		ev := notify.Event{PublisherID: r.userID, PublisherSession: sessionID}
		for _, id := range roomIDs {
			ev.Rooms = append(ev.Rooms, notify.RoomRef{ID: id, MemberIDs: byRoom[id]})
		}
		if err := e.publisher.Publish(ctx, ev); err != nil {
			e.log.Error(ctx, "publish should-sync failed", "error", err)
		}
	}()
}
