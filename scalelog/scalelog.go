// Package scalelog provides the structured logging used by the scale
// tooling (cmd/scaledump): a logrus logger with an
// optional Sentry hook, the same stack the teacher module declares for its
// own operator-facing logging.
package scalelog

import (
	"github.com/evalphobia/logrus_sentry"
	"github.com/sirupsen/logrus"
)

// Log is the package-level logger every scale-tooling command writes
// through. Init configures it; until then it logs to stderr at Info level
// with logrus's default text formatter.
var Log = logrus.New()

// Options configures Init.
type Options struct {
	// Level is parsed with logrus.ParseLevel; an empty string means Info.
	Level string
	// Color forces ANSI color codes in the text formatter, for interactive
	// terminal use (the "log.color" flag in flags.CommonFlags).
	Color bool
	// SentryDSN, if non-empty, attaches a logrus_sentry hook so Error and
	// above also get shipped to Sentry.
	SentryDSN string
}

// Init applies opts to Log, returning an error if the level string or the
// Sentry hook setup is invalid.
func Init(opts Options) error {
	level := logrus.InfoLevel
	if opts.Level != "" {
		parsed, err := logrus.ParseLevel(opts.Level)
		if err != nil {
			return err
		}
		level = parsed
	}
	Log.SetLevel(level)
	Log.SetFormatter(&logrus.TextFormatter{ForceColors: opts.Color})

	if opts.SentryDSN == "" {
		return nil
	}
	hook, err := logrus_sentry.NewSentryHook(opts.SentryDSN, []logrus.Level{
		logrus.PanicLevel,
		logrus.FatalLevel,
		logrus.ErrorLevel,
	})
	if err != nil {
		return err
	}
	hook.Timeout = 0
	Log.AddHook(hook)
	return nil
}

// WithField is a thin convenience wrapper so callers don't need to import
// logrus themselves just to tag a log line.
func WithField(key string, value interface{}) *logrus.Entry {
	return Log.WithField(key, value)
}
