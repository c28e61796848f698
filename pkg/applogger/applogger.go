package applogger

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/tsel-ticketmaster/tm-availability/config"
)

var (
	logger *logrus.Logger
	once   sync.Once
)

// GetLogrus returns the process-wide logger. JSON output so the entries are
// ingestible by the platform's log collector; debug level only when the
// application runs in debug mode.
func GetLogrus() *logrus.Logger {
	once.Do(func() {
		c := config.Get()

		logger = logrus.New()
		logger.SetOutput(os.Stdout)
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetLevel(logrus.InfoLevel)
		if c.Application.Debug {
			logger.SetLevel(logrus.DebugLevel)
		}
	})

	return logger
}
