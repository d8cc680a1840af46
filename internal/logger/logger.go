// Package logger configures the process-wide logrus logger.
package logger

import (
	"os"
	"strings"

	"items-api/config"

	"github.com/sirupsen/logrus"
)

// Setup applies level and format from cfg to the standard logrus logger.
// An unknown level falls back to info.
func Setup(cfg config.LogConfig) {
	logrus.SetOutput(os.Stdout)

	if strings.EqualFold(cfg.Format, "json") {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		logrus.WithField("level", cfg.Level).Warn("Unknown log level, using info")
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}
