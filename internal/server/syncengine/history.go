package syncengine

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/chatsync/internal/common"
	"github.com/dmitrijs2005/chatsync/internal/timex"
	"github.com/dmitrijs2005/chatsync/internal/wire"
)

const (
	DefaultHistoryLimit = 10
	MaxHistoryLimit     = 50
)

// historyHorizon stands in for "no upper bound" on a first page.
var historyHorizon = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)

// History pages backwards through a room's active messages. before is an
// exclusive created_at bound in epoch millis; nil starts at the newest
// message. Rooms that are deleted or that the caller is not a member of are
// reported as not found.
func (e *Engine) History(ctx context.Context, userID, roomID string, before *int64, limit int) (*wire.MessagePage, error) {
	if limit == 0 {
		limit = DefaultHistoryLimit
	}
	if limit < 1 || limit > MaxHistoryLimit {
		return nil, invalid("limit must be 1 to %d", MaxHistoryLimit)
	}

	conn := e.repos.Conn()
	room, err := e.repos.Rooms(conn).FindByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	member, err := e.repos.Members(conn).IsMember(ctx, roomID, userID)
	if err != nil {
		return nil, err
	}
	if room.IsDeleted || !member {
		return nil, fmt.Errorf("%w: room %s", common.ErrorNotFound, roomID)
	}

	bound := historyHorizon
	if before != nil {
		bound = timex.FromMillis(*before)
	}
	msgs, err := e.repos.Messages(conn).ListBefore(ctx, roomID, bound, limit+1)
	if err != nil {
		return nil, err
	}

	page := &wire.MessagePage{Messages: make([]wire.MessageRecord, 0, limit)}
	if len(msgs) > limit {
		page.HasMore = true
		msgs = msgs[:limit]
	}
	for _, m := range msgs {
		page.Messages = append(page.Messages, messageRecord(m))
	}
	if n := len(page.Messages); n > 0 {
		cursor := page.Messages[n-1].CreatedAt
		page.Cursor = &cursor
	}
	return page, nil
}
