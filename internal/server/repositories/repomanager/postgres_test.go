package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/chatsync/internal/dbx"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func TestFactories_ReturnRepos(t *testing.T) {
	db, _ := newDB(t)
	m := NewPostgresRepositoryManager(db)

	assert.NotNil(t, m.Users(db))
	assert.NotNil(t, m.RefreshTokens(db))
	assert.NotNil(t, m.Rooms(db))
	assert.NotNil(t, m.Members(db))
	assert.NotNil(t, m.Messages(db))
	assert.NotNil(t, m.ReadReceipts(db))
	assert.NotNil(t, m.Attachments(db))
	assert.NotNil(t, m.Preferences(db))
	assert.NotNil(t, m.Devices(db))
	assert.Equal(t, db, m.Conn())
}

func TestWithTx_UsesTransaction(t *testing.T) {
	db, mock := newDB(t)
	m := NewPostgresRepositoryManager(db)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := m.WithTx(context.Background(), func(ctx context.Context, tx dbx.DBTX) error {
		_, ok := tx.(*sql.Tx)
		assert.True(t, ok)
		return nil
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrations(t *testing.T) {
	db, _ := newDB(t)
	orig := gooseUpContext
	t.Cleanup(func() { gooseUpContext = orig })

	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		if dir != "." {
			return errors.New("unexpected dir")
		}
		return nil
	}
	require.NoError(t, NewPostgresRepositoryManager(db).RunMigrations(context.Background(), db))

	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("boom")
	}
	assert.EqualError(t, NewPostgresRepositoryManager(db).RunMigrations(context.Background(), db), "boom")
}

func TestMemoryManager(t *testing.T) {
	m := NewMemoryRepositoryManager()
	require.NoError(t, m.RunMigrations(context.Background(), nil))
	called := false
	require.NoError(t, m.WithTx(context.Background(), func(ctx context.Context, tx dbx.DBTX) error {
		called = true
		return nil
	}))
	assert.True(t, called)
}

func TestNow_ReadsDatabaseClock(t *testing.T) {
	db, mock := newDB(t)
	m := NewPostgresRepositoryManager(db)
	dbNow := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT now()`)).
		WillReturnRows(sqlmock.NewRows([]string{"now"}).AddRow(dbNow))

	got, err := m.Now(context.Background())
	require.NoError(t, err)
	assert.True(t, dbNow.Equal(got))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNow_Error(t *testing.T) {
	db, mock := newDB(t)
	m := NewPostgresRepositoryManager(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT now()`)).WillReturnError(errors.New("conn reset"))

	_, err := m.Now(context.Background())
	assert.ErrorContains(t, err, "conn reset")
}
