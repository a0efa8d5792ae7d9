// Package logger provides the shared application logger.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the application logger.
type Logger struct {
	*logrus.Logger
	logFile *lumberjack.Logger
}

var (
	instance *Logger
	once     sync.Once
)

// Get returns the singleton logger instance. The logger is usable before
// Init() has been called, writing to stdout at the info level.
func Get() *Logger {
	once.Do(func() {
		instance = &Logger{
			Logger: logrus.New(),
		}
	})
	return instance
}

// Init sets the log level and, if path is not empty, directs output to a
// rotating log file in addition to stdout. An unrecognised level falls back
// to info.
func (l *Logger) Init(level string, path string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("logger: %w", err)
		}

		l.logFile = &lumberjack.Logger{
			Filename:   path,
			MaxSize:    10,
			MaxBackups: 5,
			MaxAge:     7,
			Compress:   true,
		}
		l.SetOutput(io.MultiWriter(os.Stdout, l.logFile))
	} else {
		l.SetOutput(os.Stdout)
	}

	return nil
}

// Component returns an entry tagged with the named component.
func (l *Logger) Component(name string) *logrus.Entry {
	return l.WithField("component", name)
}

// Close closes the log file if one is open.
func (l *Logger) Close() {
	if l.logFile != nil {
		l.logFile.Close()
	}
}
