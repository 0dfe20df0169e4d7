package logger

import (
	"github.com/sirupsen/logrus"
)

// Init configures the global logrus logger from the configured level.
// Unknown levels fall back to info rather than failing startup.
func Init(level string) {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.WithField("level", level).Warn("unknown log level, using info")
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
}
