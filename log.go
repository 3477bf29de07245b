package buttonpanel

import (
	"github.com/sirupsen/logrus"
)

var (
	appLogger = logrus.New()
)

func SetLogLevel(lvl logrus.Level) {
	appLogger.Level = lvl
}

// Logger returns a field logger for the named component.
func Logger(comp string) logrus.FieldLogger {
	return appLogger.WithField("comp", comp)
}
