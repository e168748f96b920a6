package logger

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/event"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("warn"))
	assert.Equal(t, zerolog.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("info"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("nonsense"))
}

func TestLoggerService_DisabledIsSafe(t *testing.T) {
	t.Parallel()

	var nilService *LoggerService
	assert.Nil(t, nilService.GetApplication())
	nilService.RecordCustomEvent("anything", nil)

	service := &LoggerService{}
	assert.Nil(t, service.GetApplication())
	service.Shutdown()
}

func TestWithTraceContext_NilTransaction(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	base := zerolog.New(&buf)

	logger := WithTraceContext(base, nil)
	logger.Info().Msg("hello")
	assert.NotContains(t, buf.String(), "trace.id")
}

func succeeded(name string, d time.Duration) *event.CommandSucceededEvent {
	return &event.CommandSucceededEvent{
		CommandFinishedEvent: event.CommandFinishedEvent{
			CommandName:  name,
			DatabaseName: "travel",
			Duration:     d,
		},
	}
}

func TestMongoMonitor_SlowCommand(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	monitor := NewMongoMonitor(zerolog.New(&buf), &LoggerService{}, 100*time.Millisecond, false)

	monitor.Succeeded(context.Background(), succeeded("aggregate", 10*time.Millisecond))
	assert.Empty(t, buf.String(), "fast commands are silent when not verbose")

	monitor.Succeeded(context.Background(), succeeded("aggregate", 250*time.Millisecond))
	assert.Contains(t, buf.String(), "slow database command")
	assert.Contains(t, buf.String(), `"command":"aggregate"`)
	assert.Contains(t, buf.String(), `"level":"warn"`)
}

func TestMongoMonitor_VerboseAndFailed(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	monitor := NewMongoMonitor(zerolog.New(&buf), nil, 0, true)

	monitor.Succeeded(context.Background(), succeeded("find", time.Millisecond))
	assert.Contains(t, buf.String(), `"message":"database command"`)

	buf.Reset()
	monitor.Failed(context.Background(), &event.CommandFailedEvent{
		CommandFinishedEvent: event.CommandFinishedEvent{CommandName: "insert", DatabaseName: "travel"},
		Failure:              "E11000 duplicate key error",
	})
	assert.Contains(t, buf.String(), "database command failed")
	assert.Contains(t, buf.String(), "E11000")
}
