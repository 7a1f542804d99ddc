// Package log provides structured logging backed by logrus with filesystem-based persistence.
package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/samber/lo"
	logrus "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vidshelf/vidshelf/filesystem"
	"github.com/vidshelf/vidshelf/key"
	"github.com/vidshelf/vidshelf/where"
)

// Fields is a set of structured key/value pairs attached to a log entry.
type Fields = logrus.Fields

// enabled indicates the persistent logging state for the active application instance.
var enabled bool

// Setup initializes the logging subsystem, including file handles, formatting, and severity levels based on global configuration.
// If logging is disabled, all subsequent log emissions are silently discarded.
func Setup() error {
	enabled = viper.GetBool(key.LogsWrite)
	if !enabled {
		return nil
	}

	dir := where.Logs()
	if dir == "" {
		return errors.New("log directory path is empty")
	}

	filename := fmt.Sprintf("%s.log", time.Now().Format("2006-01-02"))
	path := filepath.Join(dir, filename)

	if exists := lo.Must(filesystem.API().Exists(path)); !exists {
		lo.Must(filesystem.API().Create(path))
	}

	f, err := filesystem.API().OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	configure(f)
	return nil
}

// SetupWriter enables logging into w using the configured format and level.
func SetupWriter(w io.Writer) {
	enabled = true
	configure(w)
}

func configure(w io.Writer) {
	logrus.SetOutput(w)

	if viper.GetBool(key.LogsJson) {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{DisableColors: true})
	}

	parsed, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)
}

// Entry is a log line under construction carrying structured fields.
type Entry struct {
	inner *logrus.Entry
}

// With starts an entry annotated with the given fields.
func With(fields Fields) *Entry {
	return &Entry{inner: logrus.WithFields(fields)}
}

// WithError starts an entry annotated with err.
func WithError(err error) *Entry {
	return &Entry{inner: logrus.WithError(err)}
}

func (e *Entry) With(fields Fields) *Entry {
	return &Entry{inner: e.inner.WithFields(fields)}
}

func (e *Entry) WithError(err error) *Entry {
	return &Entry{inner: e.inner.WithError(err)}
}

func (e *Entry) Error(args ...interface{}) {
	if enabled {
		e.inner.Error(args...)
	}
}

func (e *Entry) Warn(args ...interface{}) {
	if enabled {
		e.inner.Warn(args...)
	}
}

func (e *Entry) Info(args ...interface{}) {
	if enabled {
		e.inner.Info(args...)
	}
}

func (e *Entry) Debug(args ...interface{}) {
	if enabled {
		e.inner.Debug(args...)
	}
}

func Error(args ...interface{}) {
	if enabled {
		logrus.Error(args...)
	}
}
func Errorf(format string, args ...interface{}) {
	if enabled {
		logrus.Errorf(format, args...)
	}
}
func Warn(args ...interface{}) {
	if enabled {
		logrus.Warn(args...)
	}
}
func Warnf(format string, args ...interface{}) {
	if enabled {
		logrus.Warnf(format, args...)
	}
}
func Info(args ...interface{}) {
	if enabled {
		logrus.Info(args...)
	}
}
func Infof(format string, args ...interface{}) {
	if enabled {
		logrus.Infof(format, args...)
	}
}
func Debug(args ...interface{}) {
	if enabled {
		logrus.Debug(args...)
	}
}
func Debugf(format string, args ...interface{}) {
	if enabled {
		logrus.Debugf(format, args...)
	}
}
