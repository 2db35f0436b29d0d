package refreshtokens

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/chatsync/internal/common"
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

func TestCreate(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`(?s)INSERT INTO refresh_tokens \(token, user_id, session_id, expires_at\)\s+VALUES \(\$1, \$2, \$3, \$4\)`).
		WithArgs("tok", "u1", "s1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), "u1", "s1", "tok", time.Hour))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_Error(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`INSERT INTO refresh_tokens`).WillReturnError(errors.New("down"))

	err := repo.Create(context.Background(), "u1", "s1", "tok", time.Hour)
	assert.ErrorContains(t, err, "db error: down")
}

func TestFind(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	exp := time.Now().Add(time.Hour)

	mock.ExpectQuery(`(?s)SELECT token, user_id, session_id, expires_at, created_at\s+FROM refresh_tokens\s+WHERE token = \$1`).
		WithArgs("tok").
		WillReturnRows(sqlmock.NewRows([]string{"token", "user_id", "session_id", "expires_at", "created_at"}).AddRow("tok", "u1", "s1", exp, time.Now()))

	rt, err := repo.Find(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, "u1", rt.UserID)
	assert.Equal(t, "s1", rt.SessionID)
	assert.Equal(t, exp, rt.Expires)
}

func TestFind_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`FROM refresh_tokens`).WithArgs("nope").WillReturnError(sql.ErrNoRows)

	_, err := repo.Find(context.Background(), "nope")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestDelete(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`DELETE FROM refresh_tokens WHERE token = \$1`).
		WithArgs("tok").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), "tok"))
}
