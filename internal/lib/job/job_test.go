package job

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	to, username string
	err          error
}

func (f *fakeSender) SendWelcomeEmail(_ context.Context, to, username string) error {
	f.to, f.username = to, username
	return f.err
}

type fakeClient struct {
	tasks []*asynq.Task
}

func (f *fakeClient) EnqueueContext(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	f.tasks = append(f.tasks, task)
	return &asynq.TaskInfo{ID: "t1", Queue: "default"}, nil
}

func (f *fakeClient) Close() error { return nil }

func newTestService(sender welcomeSender) (*JobService, *fakeClient) {
	logger := zerolog.Nop()
	client := &fakeClient{}
	return &JobService{client: client, logger: &logger, emails: sender}, client
}

func TestNewWelcomeEmailTask(t *testing.T) {
	t.Parallel()

	task, err := NewWelcomeEmailTask("an@example.com", "an")
	require.NoError(t, err)
	assert.Equal(t, TaskWelcome, task.Type())

	var p WelcomeEmailPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &p))
	assert.Equal(t, WelcomeEmailPayload{To: "an@example.com", Username: "an"}, p)
}

func TestEnqueueWelcomeEmail(t *testing.T) {
	t.Parallel()

	j, client := newTestService(&fakeSender{})
	require.NoError(t, j.EnqueueWelcomeEmail(context.Background(), "an@example.com", "an"))
	require.Len(t, client.tasks, 1)
	assert.Equal(t, TaskWelcome, client.tasks[0].Type())
}

func TestHandleWelcomeEmailTask(t *testing.T) {
	t.Parallel()

	t.Run("sends", func(t *testing.T) {
		sender := &fakeSender{}
		j, _ := newTestService(sender)
		task, _ := NewWelcomeEmailTask("an@example.com", "an")

		require.NoError(t, j.handleWelcomeEmailTask(context.Background(), task))
		assert.Equal(t, "an@example.com", sender.to)
		assert.Equal(t, "an", sender.username)
	})

	t.Run("send failure is retried", func(t *testing.T) {
		j, _ := newTestService(&fakeSender{err: errors.New("resend down")})
		task, _ := NewWelcomeEmailTask("an@example.com", "an")

		err := j.handleWelcomeEmailTask(context.Background(), task)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, asynq.SkipRetry)
	})

	t.Run("bad payload is not retried", func(t *testing.T) {
		j, _ := newTestService(&fakeSender{})
		err := j.handleWelcomeEmailTask(context.Background(), asynq.NewTask(TaskWelcome, []byte("{")))
		assert.ErrorIs(t, err, asynq.SkipRetry)
	})
}
