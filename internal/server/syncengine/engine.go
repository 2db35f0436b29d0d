// Package syncengine implements the offline-first synchronization protocol:
// Pull computes everything a user may see that changed since a watermark,
// Push applies a client change set record by record and signals the other
// sessions of the affected rooms to pull again.
//
// The engine is stateless. Every call reads and writes through the
// repository manager and is parameterized by the calling user.
package syncengine

import (
	"sync"

	"github.com/dmitrijs2005/chatsync/internal/logging"
	"github.com/dmitrijs2005/chatsync/internal/server/notify"
	"github.com/dmitrijs2005/chatsync/internal/server/pushnotify"
	"github.com/dmitrijs2005/chatsync/internal/server/repositories/repomanager"
)

const defaultConcurrency = 8

type Engine struct {
	repos       repomanager.RepositoryManager
	publisher   notify.Publisher
	dispatcher  pushnotify.Dispatcher
	log         logging.Logger
	concurrency int

	wg sync.WaitGroup
}

type Option func(*Engine)

// WithPublisher sets where should-sync events go after a push.
func WithPublisher(p notify.Publisher) Option {
	return func(e *Engine) { e.publisher = p }
}

// WithDispatcher sets the receiver of NewMessage events.
func WithDispatcher(d pushnotify.Dispatcher) Option {
	return func(e *Engine) { e.dispatcher = d }
}

// WithConcurrency bounds how many records of one table a push applies at once.
func WithConcurrency(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.concurrency = n
		}
	}
}

func New(repos repomanager.RepositoryManager, log logging.Logger, opts ...Option) *Engine {
	e := &Engine{
		repos:       repos,
		log:         log.With("module", "syncengine"),
		concurrency: defaultConcurrency,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Wait blocks until background publishing and dispatching started by
// earlier pushes has finished.
func (e *Engine) Wait() {
	e.wg.Wait()
}
