// Package job runs background work on Asynq, a Redis-backed task queue.
//
// The API process both enqueues tasks (asynq.Client) and runs the worker
// server (asynq.Server) that executes them.
package job

import (
	"context"

	"github.com/deppfellow/travel-api/internal/config"
	"github.com/deppfellow/travel-api/internal/lib/email"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

type welcomeSender interface {
	SendWelcomeEmail(ctx context.Context, to, username string) error
}

type enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
	Close() error
}

type JobService struct {
	client enqueuer
	server *asynq.Server
	logger *zerolog.Logger

	emails welcomeSender
}

// NewJobService builds the Asynq client and worker server on the configured Redis.
// Queue weights give "critical" roughly six of every ten workers.
func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisOpt := asynq.RedisClientOpt{Addr: cfg.Redis.Address}

	server := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 10,
		Queues: map[string]int{
			"critical": 6,
			"default":  3,
			"low":      1,
		},
	})

	return &JobService{
		client: asynq.NewClient(redisOpt),
		server: server,
		logger: logger,
	}
}

// InitHandlers builds the dependencies task handlers need.
func (j *JobService) InitHandlers(cfg *config.Config, logger *zerolog.Logger) {
	j.emails = email.NewClient(cfg, logger)
}

// EnqueueWelcomeEmail schedules the welcome email of a new account.
func (j *JobService) EnqueueWelcomeEmail(ctx context.Context, to, username string) error {
	task, err := NewWelcomeEmailTask(to, username)
	if err != nil {
		return err
	}

	info, err := j.client.EnqueueContext(ctx, task)
	if err != nil {
		return err
	}

	j.logger.Debug().Str("task_id", info.ID).Str("queue", info.Queue).Msg("enqueued welcome email")
	return nil
}

// Start registers the task handlers and starts the worker server.
func (j *JobService) Start() error {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskWelcome, j.handleWelcomeEmailTask)

	j.logger.Info().Msg("Starting background job server")
	return j.server.Start(mux)
}

// Stop waits for in-flight tasks and closes the Redis connections.
func (j *JobService) Stop() {
	j.logger.Info().Msg("Stopping background job server")
	j.server.Shutdown()
	if err := j.client.Close(); err != nil {
		j.logger.Error().Err(err).Msg("failed to close job client")
	}
}
