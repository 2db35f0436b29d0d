package pushnotify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/hibiken/asynq"

	"github.com/dmitrijs2005/chatsync/internal/logging"
)

const (
	// TaskNewMessage is the asynq task type carrying a NewMessage payload.
	TaskNewMessage = "push:new_message"
	// Queue is the asynq queue notification tasks are enqueued on.
	Queue = "notifications"
)

// Dispatcher hands a NewMessage to whatever delivers notifications.
// Dispatch must not block on delivery.
type Dispatcher interface {
	Dispatch(ctx context.Context, ev NewMessage) error
}

// InlineDispatcher runs the worker in a goroutine of the current process.
// It is used when no Redis is configured.
type InlineDispatcher struct {
	worker *Worker
	log    logging.Logger
	wg     sync.WaitGroup
}

func NewInlineDispatcher(worker *Worker, log logging.Logger) *InlineDispatcher {
	return &InlineDispatcher{worker: worker, log: log.With("module", "pushnotify")}
}

func (d *InlineDispatcher) Dispatch(ctx context.Context, ev NewMessage) error {
	ctx = context.WithoutCancel(ctx)
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		if err := d.worker.HandleNewMessage(ctx, ev); err != nil {
			d.log.Error(ctx, "sending notification failed", "message_id", ev.MessageID, "error", err)
		}
	}()
	return nil
}

// Wait blocks until every dispatched notification has been handled.
func (d *InlineDispatcher) Wait() {
	d.wg.Wait()
}

// AsynqDispatcher enqueues NewMessage tasks on Redis.
type AsynqDispatcher struct {
	client *asynq.Client
}

func NewAsynqDispatcher(opt asynq.RedisConnOpt) *AsynqDispatcher {
	return &AsynqDispatcher{client: asynq.NewClient(opt)}
}

func (d *AsynqDispatcher) Dispatch(ctx context.Context, ev NewMessage) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encode task: %w", err)
	}
	_, err = d.client.EnqueueContext(ctx, asynq.NewTask(TaskNewMessage, payload),
		asynq.Queue(Queue),
		asynq.MaxRetry(3),
		asynq.Timeout(30*time.Second),
	)
	if err != nil {
		return fmt.Errorf("enqueue %s: %w", TaskNewMessage, err)
	}
	return nil
}

func (d *AsynqDispatcher) Close() error {
	return d.client.Close()
}

// NewServeMux routes TaskNewMessage to the worker.
func NewServeMux(worker *Worker) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskNewMessage, func(ctx context.Context, t *asynq.Task) error {
		var ev NewMessage
		if err := json.Unmarshal(t.Payload(), &ev); err != nil {
			return errors.Join(err, asynq.SkipRetry)
		}
		return worker.HandleNewMessage(ctx, ev)
	})
	return mux
}

// Server consumes the notifications queue.
type Server struct {
	srv *asynq.Server
	mux *asynq.ServeMux
}

func NewServer(opt asynq.RedisConnOpt, worker *Worker, concurrency int, log logging.Logger) *Server {
	log = log.With("module", "pushnotify")
	srv := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues:      map[string]int{Queue: 1},
		ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
			log.Error(ctx, "notification task failed", "type", task.Type(), "error", err)
		}),
	})
	return &Server{srv: srv, mux: NewServeMux(worker)}
}

// Run starts the server and blocks until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	if err := s.srv.Start(s.mux); err != nil {
		return err
	}
	<-ctx.Done()
	s.srv.Shutdown()
	return nil
}
