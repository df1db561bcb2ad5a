// Package logging provides the shared logger for all denbox components.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var root = logrus.New()

func init() {
	root.SetOutput(os.Stderr)
	root.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	root.SetLevel(logrus.InfoLevel)
}

// GetLogger returns an entry scoped to the given component name.
func GetLogger(component string) *logrus.Entry {
	return root.WithField("component", component)
}

// SetDebug switches the shared logger between debug and info verbosity.
func SetDebug(debug bool) {
	if debug {
		root.SetLevel(logrus.DebugLevel)
		return
	}
	root.SetLevel(logrus.InfoLevel)
}

// SetOutput redirects all log output, used by tests to capture messages.
func SetOutput(w io.Writer) {
	root.SetOutput(w)
}
