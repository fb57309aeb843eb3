package logger

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWithAlerts(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	sent := make(chan string, 4)
	log := (&Logger{zap.New(core)}).WithAlerts(zapcore.ErrorLevel, func(text string) { sent <- text })

	log.Error("plain error", ErrorField(errors.New("ignored")))
	log.Warn("flagged warning", AlertField())
	log.With(StringField("component", "calendar")).Error("scrape <failed>", ErrorField(errors.New("403")), AlertField())

	select {
	case text := <-sent:
		assert.Contains(t, text, "ERROR Alert")
		assert.Contains(t, text, "scrape &lt;failed&gt;")
		assert.Contains(t, text, "• component: calendar")
		assert.Contains(t, text, "• error: 403")
		assert.NotContains(t, text, "send_alert")
	case <-time.After(time.Second):
		t.Fatal("alert was not sent")
	}

	select {
	case text := <-sent:
		t.Fatalf("unexpected alert: %s", text)
	case <-time.After(50 * time.Millisecond):
	}

	require.Equal(t, 3, logs.Len(), "every entry still reaches the wrapped core")
}

func TestWithAlerts_FlagFromChildLogger(t *testing.T) {
	core, _ := observer.New(zapcore.DebugLevel)
	sent := make(chan string, 2)
	log := (&Logger{zap.New(core)}).WithAlerts(zapcore.ErrorLevel, func(text string) { sent <- text })

	log.With(AlertField(), StringField("job", "calendar")).Error("refresh failed")

	select {
	case text := <-sent:
		assert.Contains(t, text, "refresh failed")
		assert.Contains(t, text, "• job: calendar")
		assert.NotContains(t, text, "send_alert")
	case <-time.After(time.Second):
		t.Fatal("alert was not sent")
	}
}

func TestWithAlerts_NilSender(t *testing.T) {
	log := NewNop()
	assert.Same(t, log, log.WithAlerts(zapcore.ErrorLevel, nil))
}
