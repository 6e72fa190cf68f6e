package logger

import (
	"os"
	"strings"

	"github.com/gookit/slog"
	"github.com/gookit/slog/handler"
)

// Logger 는 패키지 전역 로거가 만족해야 하는 메서드 집합이다.
type Logger interface {
	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Fields 는 한 줄의 로그에 붙는 top-level JSON 키다.
type Fields map[string]any

const defaultLevel = "info"

// Log 는 Init 전에도 info 레벨로 stdout 에 쓴다.
var Log Logger = NewLogger(defaultLevel)

// Init 은 전역 로거를 level 로 다시 만든다. 알 수 없는 이름은 slog 기본 레벨을 따른다.
func Init(level string) {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		level = defaultLevel
	}
	Log = NewLogger(level)
}

// NewLogger 는 level 이하의 레코드를 한 줄 JSON 으로 stdout 에 쓰는 로거를 만든다.
func NewLogger(level string) Logger {
	h := handler.NewConsoleWithLF(slog.NewLvFormatter(slog.LevelByName(level)))
	h.SetFormatter(newJSONFormatter())
	return slog.NewWithHandlers(h)
}

func newJSONFormatter() *slog.JSONFormatter {
	return slog.NewJSONFormatter(func(f *slog.JSONFormatter) {
		// channel, caller 등은 빼고 Fields 를 top-level 로 펼친다.
		f.Fields = []string{slog.FieldKeyDatetime, slog.FieldKeyLevel, slog.FieldKeyMessage}
		f.Aliases = slog.StringMap{
			slog.FieldKeyDatetime: "datetime",
			slog.FieldKeyLevel:    "level",
			slog.FieldKeyMessage:  "message",
		}
		f.TimeFormat = "2006-01-02T15:04:05"
	})
}

func InfoWithFields(msg string, fields Fields)  { logWithFields(slog.InfoLevel, msg, fields) }
func DebugWithFields(msg string, fields Fields) { logWithFields(slog.DebugLevel, msg, fields) }
func WarnWithFields(msg string, fields Fields)  { logWithFields(slog.WarnLevel, msg, fields) }
func ErrorWithFields(msg string, fields Fields) { logWithFields(slog.ErrorLevel, msg, fields) }

func logWithFields(level slog.Level, msg string, fields Fields) {
	m := slog.M{}
	for k, v := range fields {
		m[k] = v
	}
	if sn := os.Getenv("SERVICE_NAME"); sn != "" {
		if _, ok := m["service_name"]; !ok {
			m["service_name"] = sn
		}
	}

	if lg, ok := Log.(*slog.Logger); ok {
		lg.WithFields(m).Log(level, msg)
		return
	}

	// 교체된 구현에는 필드를 넘길 방법이 없다.
	switch level {
	case slog.DebugLevel:
		Log.Debug(msg)
	case slog.WarnLevel:
		Log.Warn(msg)
	case slog.ErrorLevel:
		Log.Error(msg)
	default:
		Log.Info(msg)
	}
}
