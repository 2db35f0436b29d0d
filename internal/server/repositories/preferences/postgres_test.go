package preferences

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/chatsync/internal/common"
	"github.com/dmitrijs2005/chatsync/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresRepository(db), mock
}

var prefColumns = []string{"user_id", "room_id", "is_muted", "should_still_notify", "muted_until", "created_at", "updated_at"}

func TestFind(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT .* FROM room_preferences WHERE user_id = \$1 AND room_id = \$2`).
		WithArgs("u1", "r1").
		WillReturnRows(sqlmock.NewRows(prefColumns).AddRow("u1", "r1", true, false, now, now, now))
	mock.ExpectQuery(`FROM room_preferences`).WillReturnError(sql.ErrNoRows)

	p, err := repo.Find(context.Background(), "u1", "r1")
	require.NoError(t, err)
	assert.True(t, p.IsMuted)
	assert.NotNil(t, p.MutedUntil)

	_, err = repo.Find(context.Background(), "u1", "r2")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestListByUserAndRoom(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now()

	mock.ExpectQuery(`FROM room_preferences WHERE user_id = \$1`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(prefColumns).AddRow("u1", "r1", false, false, nil, now, now))
	mock.ExpectQuery(`FROM room_preferences WHERE room_id = \$1`).
		WithArgs("r1").
		WillReturnRows(sqlmock.NewRows(prefColumns).
			AddRow("u1", "r1", false, false, nil, now, now).
			AddRow("u2", "r1", true, true, nil, now, now))

	byUser, err := repo.ListByUser(context.Background(), "u1")
	require.NoError(t, err)
	assert.Len(t, byUser, 1)

	byRoom, err := repo.ListByRoom(context.Background(), "r1")
	require.NoError(t, err)
	assert.Len(t, byRoom, 2)
}

func TestUpsert(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`(?s)INSERT INTO room_preferences .* ON CONFLICT \(user_id, room_id\)`).
		WithArgs("u1", "r1", true, false, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Upsert(context.Background(), &models.RoomPreferences{UserID: "u1", RoomID: "r1", IsMuted: true}))
}
