package repomanager

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/chatsync/internal/dbx"
	"github.com/dmitrijs2005/chatsync/internal/server/migrations"
	"github.com/dmitrijs2005/chatsync/internal/server/repositories/attachments"
	"github.com/dmitrijs2005/chatsync/internal/server/repositories/devices"
	"github.com/dmitrijs2005/chatsync/internal/server/repositories/members"
	"github.com/dmitrijs2005/chatsync/internal/server/repositories/messages"
	"github.com/dmitrijs2005/chatsync/internal/server/repositories/preferences"
	"github.com/dmitrijs2005/chatsync/internal/server/repositories/readreceipts"
	"github.com/dmitrijs2005/chatsync/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/chatsync/internal/server/repositories/rooms"
	"github.com/dmitrijs2005/chatsync/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repositories.
type PostgresRepositoryManager struct {
	*dbx.SQLRunner
}

func NewPostgresRepositoryManager(db *sql.DB) *PostgresRepositoryManager {
	return &PostgresRepositoryManager{SQLRunner: dbx.NewSQLRunner(db)}
}

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) RefreshTokens(db dbx.DBTX) refreshtokens.Repository {
	return refreshtokens.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Rooms(db dbx.DBTX) rooms.Repository {
	return rooms.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Members(db dbx.DBTX) members.Repository {
	return members.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Messages(db dbx.DBTX) messages.Repository {
	return messages.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) ReadReceipts(db dbx.DBTX) readreceipts.Repository {
	return readreceipts.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Attachments(db dbx.DBTX) attachments.Repository {
	return attachments.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Preferences(db dbx.DBTX) preferences.Repository {
	return preferences.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Devices(db dbx.DBTX) devices.Repository {
	return devices.NewPostgresRepository(db)
}

// Now asks the database for its transaction timestamp, so watermarks and
// updated_at values come from one clock.
func (m *PostgresRepositoryManager) Now(ctx context.Context) (time.Time, error) {
	var now time.Time
	if err := m.Conn().QueryRowContext(ctx, `SELECT now()`).Scan(&now); err != nil {
		return time.Time{}, fmt.Errorf("read database clock: %w", err)
	}
	return now, nil
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded goose migrations.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, ".")
}

var _ RepositoryManager = (*PostgresRepositoryManager)(nil)
