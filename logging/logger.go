package logging

import (
	"io"

	"github.com/sirupsen/logrus"

	"geohash-kit/config"
)

// Fields represents structured logging fields
type Fields = logrus.Fields

// NewLogger creates a logger writing to out with the configured level and
// format.
func NewLogger(cfg config.LogConfig, out io.Writer) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(out)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	logger.SetLevel(level)

	if cfg.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
	return logger, nil
}
