// Package sentry reports errors to Sentry when a DSN is configured.
package sentry

import (
	"time"

	sentry "github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"

	"github.com/snypenet/rate-my-music/logcolors"
)

var enabled bool

// Init configures error reporting. An empty DSN disables reporting and is
// not an error; a bad DSN is logged and reporting stays disabled.
func Init(dsn string) {
	if dsn == "" {
		log.Infof("%s DSN not set, error reporting disabled", logcolors.LogSentry)
		return
	}
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		TracesSampleRate: 1.0,
	}); err != nil {
		log.Warnf("%s Init failed: %v", logcolors.LogSentry, err)
		return
	}
	enabled = true
	log.Infof("%s Error reporting enabled", logcolors.LogSentry)
}

// ReportError forwards an error when reporting is enabled.
func ReportError(err error) {
	if !enabled || err == nil {
		return
	}
	sentry.CaptureException(err)
}

// ReportMessage forwards a message when reporting is enabled.
func ReportMessage(message string) {
	if !enabled {
		return
	}
	sentry.CaptureMessage(message)
}

// Flush drains buffered events before shutdown.
func Flush(timeout time.Duration) {
	if !enabled {
		return
	}
	sentry.Flush(timeout)
}
