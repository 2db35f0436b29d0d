// Package memory is an in-process implementation of every repository.
// It backs the "memory://" DSN for local development and the sync engine
// tests. Transactions are not isolated: WithTx simply runs fn.
package memory

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/chatsync/internal/dbx"
	"github.com/dmitrijs2005/chatsync/internal/server/models"
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

type pair struct {
	a, b string
}

type Store struct {
	mu  sync.RWMutex
	now func() time.Time

	users       map[string]*models.User
	follows     map[pair]struct{}
	tokens      map[string]*models.RefreshToken
	rooms       map[string]*models.Room
	members     map[pair]*models.Membership
	messages    map[string]*models.Message
	receipts    map[string]*models.ReadReceipt
	attachments map[string]*models.Attachment
	prefs       map[pair]*models.RoomPreferences
	devices     map[string]*models.Device
}

type Option func(*Store)

// WithClock replaces time.Now as the source of created_at/updated_at.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		now:         time.Now,
		users:       make(map[string]*models.User),
		follows:     make(map[pair]struct{}),
		tokens:      make(map[string]*models.RefreshToken),
		rooms:       make(map[string]*models.Room),
		members:     make(map[pair]*models.Membership),
		messages:    make(map[string]*models.Message),
		receipts:    make(map[string]*models.ReadReceipt),
		attachments: make(map[string]*models.Attachment),
		prefs:       make(map[pair]*models.RoomPreferences),
		devices:     make(map[string]*models.Device),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Store) RunMigrations(context.Context, *sql.DB) error { return nil }

// Conn returns nil; the memory repositories ignore their DBTX.
func (s *Store) Conn() dbx.DBTX { return nil }

// Now returns the store clock.
func (s *Store) Now(context.Context) (time.Time, error) { return s.now(), nil }

func (s *Store) WithTx(ctx context.Context, fn func(ctx context.Context, tx dbx.DBTX) error) error {
	return fn(ctx, nil)
}

func (s *Store) Users(dbx.DBTX) users.Repository                 { return usersRepo{s} }
func (s *Store) RefreshTokens(dbx.DBTX) refreshtokens.Repository { return tokensRepo{s} }
func (s *Store) Rooms(dbx.DBTX) rooms.Repository                 { return roomsRepo{s} }
func (s *Store) Members(dbx.DBTX) members.Repository             { return membersRepo{s} }
func (s *Store) Messages(dbx.DBTX) messages.Repository           { return messagesRepo{s} }
func (s *Store) ReadReceipts(dbx.DBTX) readreceipts.Repository   { return receiptsRepo{s} }
func (s *Store) Attachments(dbx.DBTX) attachments.Repository     { return attachmentsRepo{s} }
func (s *Store) Preferences(dbx.DBTX) preferences.Repository     { return preferencesRepo{s} }
func (s *Store) Devices(dbx.DBTX) devices.Repository             { return devicesRepo{s} }

func clone[T any](v *T) *T {
	c := *v
	return &c
}

func set(ids []string) map[string]struct{} {
	m := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		m[id] = struct{}{}
	}
	return m
}

func sortByCreated[T any](items []*T, key func(*T) (time.Time, string)) {
	sort.Slice(items, func(i, j int) bool {
		ti, ii := key(items[i])
		tj, ij := key(items[j])
		if !ti.Equal(tj) {
			return ti.Before(tj)
		}
		return ii < ij
	})
}
