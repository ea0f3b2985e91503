package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/pbanos/sapling/config"
	"github.com/sirupsen/logrus"
)

const (
	timeFormat   = "2006-01-02 15:04:05"
	logFileName  = "sapling.log"
	defaultLevel = logrus.InfoLevel
)

/*
newLogger takes the log configuration and the verbose flag and returns a
logger for a run, tagged with a fresh run id. Logs go to stderr unless the
configuration sets a path, in which case they go to an hourly rotated file
in that directory.
*/
func newLogger(conf *config.Log, verbose bool) (*logrus.Entry, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: timeFormat,
	})
	level, err := logrus.ParseLevel(conf.Level)
	if err != nil {
		level = defaultLevel
	}
	if verbose {
		level = logrus.DebugLevel
	}
	logger.SetLevel(level)
	logger.SetOutput(os.Stderr)
	if conf.Path != "" {
		w, err := logWriter(conf.Path)
		if err != nil {
			return nil, err
		}
		logger.SetOutput(w)
	}
	return logger.WithField("run", uuid.New().String()), nil
}

// logWriter keeps log files for 30 days and rotates them every hour
func logWriter(path string) (*rotatelogs.RotateLogs, error) {
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("creating log directory %s: %v", path, err)
	}
	name := filepath.Join(path, logFileName)
	w, err := rotatelogs.New(
		name+".%Y%m%d%H",
		rotatelogs.WithLinkName(name),
		rotatelogs.WithMaxAge(720*time.Hour),
		rotatelogs.WithRotationTime(time.Hour),
	)
	if err != nil {
		return nil, fmt.Errorf("creating log writer: %v", err)
	}
	return w, nil
}
