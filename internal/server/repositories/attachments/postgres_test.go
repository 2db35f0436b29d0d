package attachments

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

var attachmentColumns = []string{"id", "cipher_uri", "type", "width", "height", "user_id", "message_id", "room_id", "created_at", "updated_at", "is_deleted"}

func TestFindByID(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT .* FROM attachments WHERE id = \$1 AND is_deleted = false`).
		WithArgs("a1").
		WillReturnRows(sqlmock.NewRows(attachmentColumns).AddRow("a1", "s3://k", "image", 640, 480, "u1", "m1", "r1", now, now, false))
	mock.ExpectQuery(`FROM attachments`).WillReturnError(sql.ErrNoRows)

	a, err := repo.FindByID(context.Background(), "a1")
	require.NoError(t, err)
	require.NotNil(t, a.Width)
	assert.Equal(t, 640, *a.Width)
	assert.Equal(t, models.AttachmentTypeImage, a.Type)

	_, err = repo.FindByID(context.Background(), "a2")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestListByMessages(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT .* FROM attachments WHERE message_id IN \(\$1, \$2\)`).
		WithArgs("m1", "m2").
		WillReturnRows(sqlmock.NewRows(attachmentColumns).AddRow("a1", "s3://k", "document", nil, nil, "u1", "m1", "r1", now, now, false))

	got, err := repo.ListByMessages(context.Background(), []string{"m1", "m2"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Nil(t, got[0].Width)
}

func TestUpsert(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	w := 10

	q := `(?s)INSERT INTO attachments .* ON CONFLICT \(id\).* WHERE attachments\.user_id = EXCLUDED\.user_id;`
	mock.ExpectExec(q).
		WithArgs("a1", "s3://k", "video", w, nil, "u1", "m1", "r1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q).
		WillReturnResult(sqlmock.NewResult(0, 0))

	a := &models.Attachment{ID: "a1", CipherURI: "s3://k", Type: models.AttachmentTypeVideo, Width: &w, UserID: "u1", MessageID: "m1", RoomID: "r1"}
	require.NoError(t, repo.Upsert(context.Background(), a))
	assert.ErrorIs(t, repo.Upsert(context.Background(), a), common.ErrorConflict)
}
