package main

import "github.com/sirupsen/logrus"

// newLogger returns the structured logger main.go uses for the CLI's
// info lines (feature space built, reborn tree written) and for the fatal
// line on any pipeline error. The engine packages
// (ensemble, featurespace, bornagain, format) never log; they return
// errors and let the caller decide how to report them.
func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return log
}
