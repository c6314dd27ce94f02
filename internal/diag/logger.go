// Package diag carries the run's structured logging, progress terminal,
// and atomic counters — the ambient collaborators every real run needs
// alongside the core search algorithm.
package diag

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Logger wraps a logrus.Logger with the component/stage/code event shape
// the coordinator and its collaborators log through.
type Logger struct {
	log *logrus.Logger
}

// NewLogger builds a Logger at the given level (debug|info|warn|error,
// case-insensitive; unrecognized values fall back to info), writing
// structured fields through out.
func NewLogger(level string, out *RotatingFile) *Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)
	if out != nil {
		l.SetOutput(out)
	}
	return &Logger{log: l}
}

// Start logs a "start" event for comp and returns a Timer for the
// matching Finish call.
func (l *Logger) Start(comp, msg string) *Timer {
	l.log.WithFields(logrus.Fields{"comp": comp, "stage": "start"}).Info(msg)
	return &Timer{l: l, comp: comp, t0: time.Now()}
}

// Error logs an "error" event, classifying err via Classify.
func (l *Logger) Error(comp, msg string, err error) {
	l.log.WithFields(logrus.Fields{
		"comp":  comp,
		"stage": "error",
		"code":  string(Classify(err)),
	}).WithError(err).Error(msg)
}

// Warn logs a best-effort "warn" event — used for swallowed errors such as
// a failed stats-file write.
func (l *Logger) Warn(comp, msg string, err error) {
	entry := l.log.WithFields(logrus.Fields{"comp": comp, "stage": "warn"})
	if err != nil {
		entry = entry.WithError(err)
	}
	entry.Warn(msg)
}

// Timer measures a start-to-finish span for one logged operation.
type Timer struct {
	l    *Logger
	comp string
	t0   time.Time
}

// Finish logs the matching "finish" event with elapsed duration and an
// optional count (e.g. chunks processed, rectangles found).
func (t *Timer) Finish(msg string, count int64) {
	if t == nil || t.l == nil {
		return
	}
	t.l.log.WithFields(logrus.Fields{
		"comp":   t.comp,
		"stage":  "finish",
		"dur_ms": time.Since(t.t0).Milliseconds(),
		"count":  count,
	}).Info(msg)
}
