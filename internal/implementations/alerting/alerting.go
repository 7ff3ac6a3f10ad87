package alerting

import (
	"github.com/getsentry/sentry-go"
)

// Sentry forwards internal failures to Sentry. Used for errors that are
// deliberately hidden from API callers but must reach an operator.
type Sentry struct{}

func NewSentry() *Sentry {
	return &Sentry{}
}

func (a *Sentry) CaptureError(err error) {
	sentry.CaptureException(err)
}

// Noop is used when no Sentry DSN is configured, the errors are still logged.
type Noop struct{}

func NewNoop() *Noop {
	return &Noop{}
}

func (a *Noop) CaptureError(err error) {}
