package logger

import (
	"fmt"
	"sort"
	"strings"

	"trading-journal/pkg/common"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// AlertFunc delivers a rendered alert. It is called on its own goroutine.
type AlertFunc func(text string)

// AlertCore forwards entries carrying AlertField at or above minLevel to send.
type AlertCore struct {
	core     zapcore.Core
	minLevel zapcore.Level
	send     AlertFunc
	fields   []zapcore.Field
}

// WithAlerts returns a logger whose flagged entries are also pushed through send.
func (l *Logger) WithAlerts(minLevel zapcore.Level, send AlertFunc) *Logger {
	if send == nil {
		return l
	}
	return &Logger{l.Logger.WithOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return &AlertCore{core: core, minLevel: minLevel, send: send}
	}))}
}

// AlertField flags an entry for the alert chat.
func AlertField() zap.Field {
	return zap.Bool(common.KEY_LOG_HOOK_SEND_ALERT, true)
}

func (a *AlertCore) Enabled(lvl zapcore.Level) bool {
	return a.core.Enabled(lvl)
}

func (a *AlertCore) With(fields []zapcore.Field) zapcore.Core {
	return &AlertCore{
		core:     a.core.With(fields),
		minLevel: a.minLevel,
		send:     a.send,
		fields:   append(append([]zapcore.Field{}, a.fields...), fields...),
	}
}

func (a *AlertCore) Check(entry zapcore.Entry, checkedEntry *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if a.Enabled(entry.Level) {
		return checkedEntry.AddCore(entry, a)
	}
	return checkedEntry
}

func (a *AlertCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	if entry.Level >= a.minLevel && (hasAlertFlag(a.fields) || hasAlertFlag(fields)) {
		text := renderAlert(entry, append(append([]zapcore.Field{}, a.fields...), fields...))
		go a.send(text)
	}
	return a.core.Write(entry, fields)
}

func (a *AlertCore) Sync() error {
	return a.core.Sync()
}

func hasAlertFlag(fields []zapcore.Field) bool {
	for _, f := range fields {
		if f.Key == common.KEY_LOG_HOOK_SEND_ALERT && f.Type == zapcore.BoolType && f.Integer == 1 {
			return true
		}
	}
	return false
}

// renderAlert formats the entry as Telegram HTML.
func renderAlert(entry zapcore.Entry, fields []zapcore.Field) string {
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range fields {
		if f.Key == common.KEY_LOG_HOOK_SEND_ALERT {
			continue
		}
		f.AddTo(enc)
	}

	keys := make([]string, 0, len(enc.Fields))
	for k := range enc.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	sb := &strings.Builder{}
	sb.WriteString(fmt.Sprintf("🚨 <b>%s Alert</b>\n\n<b>Message:</b> %s\n", entry.Level.CapitalString(), escape(entry.Message)))
	if len(keys) > 0 {
		sb.WriteString("\n<b>Fields:</b>\n")
		for _, k := range keys {
			sb.WriteString(fmt.Sprintf("• %s: %s\n", escape(k), escape(fmt.Sprint(enc.Fields[k]))))
		}
	}
	sb.WriteString(fmt.Sprintf("\n<b>Time:</b> %s", entry.Time.UTC().Format("2006-01-02 15:04:05")))
	return sb.String()
}

var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escape(s string) string {
	return htmlEscaper.Replace(s)
}
