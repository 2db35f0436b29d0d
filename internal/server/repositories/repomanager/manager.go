// Package repomanager vends repositories bound to a connection or
// transaction and runs schema migrations.
package repomanager

import (
	"context"
	"database/sql"
	"time"

	"github.com/dmitrijs2005/chatsync/internal/dbx"
	"github.com/dmitrijs2005/chatsync/internal/server/repositories/attachments"
	"github.com/dmitrijs2005/chatsync/internal/server/repositories/devices"
	"github.com/dmitrijs2005/chatsync/internal/server/repositories/members"
	"github.com/dmitrijs2005/chatsync/internal/server/repositories/messages"
	"github.com/dmitrijs2005/chatsync/internal/server/repositories/preferences"
	"github.com/dmitrijs2005/chatsync/internal/server/repositories/readreceipts"
	"github.com/dmitrijs2005/chatsync/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/chatsync/internal/server/repositories/rooms"
	"github.com/dmitrijs2005/chatsync/internal/server/repositories/users"
)

type RepositoryManager interface {
	dbx.Runner

	RunMigrations(context.Context, *sql.DB) error
	// Now reads the store's clock, the same one that stamps updated_at.
	Now(ctx context.Context) (time.Time, error)
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Rooms(db dbx.DBTX) rooms.Repository
	Members(db dbx.DBTX) members.Repository
	Messages(db dbx.DBTX) messages.Repository
	ReadReceipts(db dbx.DBTX) readreceipts.Repository
	Attachments(db dbx.DBTX) attachments.Repository
	Preferences(db dbx.DBTX) preferences.Repository
	Devices(db dbx.DBTX) devices.Repository
}
