package event

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the logger shared by all packages.
var Log *logrus.Logger

// Hook publishes log entries to the event hub.
type Hook struct {
	hub *Hub
}

// NewHook returns a log hook for the given hub.
func NewHook(hub *Hub) *Hook {
	return &Hook{hub: hub}
}

// Fire publishes the entry as "log.<level>" event.
func (h *Hook) Fire(entry *logrus.Entry) error {
	h.hub.Publish(Message{
		Name: "log." + entry.Level.String(),
		Fields: Data{
			"time":    entry.Time,
			"level":   entry.Level.String(),
			"message": entry.Message,
		},
	})

	return nil
}

// Levels returns the levels the hook fires for.
func (h *Hook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// SetLevel changes the log level, unknown names are ignored.
func SetLevel(name string) {
	if level, err := logrus.ParseLevel(name); err != nil {
		Log.Warnf("config: unknown log level %q", name)
	} else {
		Log.SetLevel(level)
	}
}

func init() {
	hooks := logrus.LevelHooks{}
	hooks.Add(NewHook(SharedHub()))

	Log = &logrus.Logger{
		Out:       os.Stderr,
		Formatter: &logrus.TextFormatter{FullTimestamp: true},
		Hooks:     hooks,
		Level:     logrus.InfoLevel,
	}
}
