package readreceipts

import (
	"context"
	"database/sql"
	"errors"
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

func TestFindByID(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT .* FROM read_receipts WHERE id = \$1`).
		WithArgs("rr1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "message_id", "room_id", "received_at", "seen_at", "created_at", "updated_at", "is_deleted"}).
			AddRow("rr1", "u1", "m1", "r1", nil, now, now, now, false))
	mock.ExpectQuery(`FROM read_receipts`).WillReturnError(sql.ErrNoRows)

	rr, err := repo.FindByID(context.Background(), "rr1")
	require.NoError(t, err)
	assert.Equal(t, "r1", rr.RoomID)
	assert.NotNil(t, rr.SeenAt)

	_, err = repo.FindByID(context.Background(), "rr2")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestListChangedByRooms(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	since := time.UnixMilli(1000)
	now := time.Now()

	mock.ExpectQuery(`SELECT .* FROM read_receipts WHERE updated_at > \$1 AND room_id IN \(\$2, \$3\)`).
		WithArgs(since, "r1", "r2").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "message_id", "room_id", "received_at", "seen_at", "created_at", "updated_at", "is_deleted"}).
			AddRow("rr1", "u1", "m1", "r1", now, nil, now, now, false))

	got, err := repo.ListChangedByRooms(context.Background(), []string{"r1", "r2"}, since)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.NotNil(t, got[0].ReceivedAt)
	assert.Nil(t, got[0].SeenAt)
}

func TestLastSeenByUser(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	seen := time.UnixMilli(5000)

	mock.ExpectQuery(`(?s)SELECT room_id, max\(seen_at\) FROM read_receipts.*WHERE user_id = \$1.*room_id IN \(\$2\).*GROUP BY room_id`).
		WithArgs("u1", "r1").
		WillReturnRows(sqlmock.NewRows([]string{"room_id", "max"}).AddRow("r1", seen))

	got, err := repo.LastSeenByUser(context.Background(), "u1", []string{"r1"})
	require.NoError(t, err)
	assert.Equal(t, map[string]time.Time{"r1": seen}, got)

	empty, err := repo.LastSeenByUser(context.Background(), "u1", nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestUpsert_NeverRegresses(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	seen := time.UnixMilli(5000)

	q := `(?s)INSERT INTO read_receipts .* received_at = COALESCE\(EXCLUDED\.received_at, read_receipts\.received_at\),\s+seen_at = COALESCE\(EXCLUDED\.seen_at, read_receipts\.seen_at\).* WHERE read_receipts\.user_id = EXCLUDED\.user_id`
	mock.ExpectExec(q).
		WithArgs("rr1", "u1", "m1", "r1", nil, seen).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(q).
		WillReturnError(errors.New("fk"))

	rr := &models.ReadReceipt{ID: "rr1", UserID: "u1", MessageID: "m1", RoomID: "r1", SeenAt: &seen}
	require.NoError(t, repo.Upsert(context.Background(), rr))
	assert.ErrorIs(t, repo.Upsert(context.Background(), rr), common.ErrorConflict)
	assert.ErrorContains(t, repo.Upsert(context.Background(), rr), "db error: fk")
}

func TestSoftDelete(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`(?s)UPDATE read_receipts SET is_deleted = true.*WHERE id = \$1 AND user_id = \$2`).
		WithArgs("rr1", "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SoftDelete(context.Background(), "rr1", "u1"))
}
