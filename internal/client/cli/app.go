package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/chatsync/internal/client/client"
	"github.com/dmitrijs2005/chatsync/internal/client/config"
	"github.com/dmitrijs2005/chatsync/internal/logging"

	_ "modernc.org/sqlite"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config *config.Config
	log    logging.Logger
	db     *sql.DB
	api    *client.GRPCClient
	repos  *client.Repositories
	syncer *client.Syncer
	reader *bufio.Reader
	out    io.Writer
	now    func() time.Time

	mu        sync.Mutex
	userID    string
	userName  string
	mode      Mode
	stopWatch context.CancelFunc
	watchDone chan struct{}
	// cursors holds, per room, where the next older page starts. A nil
	// entry means the beginning was reached.
	cursors map[string]*int64
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	api, err := client.NewChatSyncClientService(c.ServerEndpointAddr)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return newApp(c, log, db, api, bufio.NewReader(os.Stdin), os.Stdout), nil
}

func newApp(c *config.Config, log logging.Logger, db *sql.DB, api *client.GRPCClient, in *bufio.Reader, out io.Writer) *App {
	repos := client.NewRepositories(db)
	a := &App{
		config: c,
		log:    log,
		db:     db,
		api:    api,
		repos:  repos,
		syncer: client.NewSyncer(api, repos.Replica, log),
		reader: in,
		out:    out,
		now:    time.Now,

		cursors: make(map[string]*int64),
	}
	api.OnRefresh(a.saveTokens)
	return a
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()
	if changed {
		a.printf("Switched to %s mode\n", mode)
	}
}

func (a *App) Mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) isLoggedIn() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.userID != ""
}

func (a *App) currentUser() (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.userID == "" {
		return "", client.ErrNotSignedIn
	}
	return a.userID, nil
}

// Run resumes a stored session if there is one and starts the REPL. It
// blocks until the user exits or ctx is done.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := a.resume(ctx); err != nil {
		a.log.Warn(ctx, "could not resume session", "error", err)
	}

	go a.StartOnlineStatusWatcher(ctx, a.config.ReconnectInterval)

	a.Root(ctx)
	return nil
}

func (a *App) Close() {
	a.StopWatch()
	if err := a.api.Close(); err != nil {
		a.log.Warn(context.Background(), "close grpc client", "error", err)
	}
	if err := a.db.Close(); err != nil {
		a.log.Warn(context.Background(), "close database", "error", err)
	}
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
			err := a.api.Ping(pingCtx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
