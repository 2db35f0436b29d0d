package syncengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/chatsync/internal/common"
	"github.com/dmitrijs2005/chatsync/internal/server/models"
	"github.com/dmitrijs2005/chatsync/internal/wire"
)

func pageIDs(page *wire.MessagePage) []string {
	out := make([]string, 0, len(page.Messages))
	for _, m := range page.Messages {
		out = append(out, m.ID)
	}
	return out
}

func TestHistory_PagesBackwards(t *testing.T) {
	f := newFixture(t)
	f.users(t, "a", "b")
	f.room(t, "r1", nil, "a", "b")
	for _, id := range []string{"m1", "m2", "m3", "m4", "m5"} {
		f.message(t, id, "r1", "b", models.MessageTypeDefault)
	}
	require.NoError(t, f.repos.Messages(nil).SoftDelete(f.ctx, "m4", "b"))

	first, err := f.engine.History(f.ctx, "a", "r1", nil, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"m5", "m3"}, pageIDs(first))
	assert.True(t, first.HasMore)
	require.NotNil(t, first.Cursor)
	assert.Equal(t, first.Messages[1].CreatedAt, *first.Cursor)

	second, err := f.engine.History(f.ctx, "a", "r1", first.Cursor, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"m2", "m1"}, pageIDs(second))
	assert.False(t, second.HasMore)

	last, err := f.engine.History(f.ctx, "a", "r1", second.Cursor, 2)
	require.NoError(t, err)
	assert.Empty(t, last.Messages)
	assert.Nil(t, last.Cursor)
	assert.False(t, last.HasMore)
}

func TestHistory_RequiresActiveMembership(t *testing.T) {
	f := newFixture(t)
	f.users(t, "a", "b", "c")
	f.room(t, "r1", nil, "a", "b")
	f.room(t, "gone", nil, "a")
	require.NoError(t, f.repos.Rooms(nil).SoftDelete(f.ctx, "gone"))

	_, err := f.engine.History(f.ctx, "c", "r1", nil, 0)
	assert.ErrorIs(t, err, common.ErrorNotFound)
	_, err = f.engine.History(f.ctx, "a", "gone", nil, 0)
	assert.ErrorIs(t, err, common.ErrorNotFound)
	_, err = f.engine.History(f.ctx, "a", "nowhere", nil, 0)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = f.engine.History(f.ctx, "a", "r1", nil, MaxHistoryLimit+1)
	assert.ErrorIs(t, err, common.ErrorValidation)

	page, err := f.engine.History(f.ctx, "a", "r1", nil, 0)
	require.NoError(t, err)
	assert.Empty(t, page.Messages)
}
