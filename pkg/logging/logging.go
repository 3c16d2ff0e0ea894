package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Init configures the process-wide logrus logger: JSON output to stdout.
// Unknown level strings fall back to info.
func Init(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
	logrus.SetOutput(os.Stdout)
}
