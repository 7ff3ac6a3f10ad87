package alerting

// Alerter delivers operator-facing failure signals. Failures that must stay
// invisible to the API caller (mail dispatch, store errors during a reset
// request) still have to reach an operator.
type Alerter interface {
	CaptureError(err error)
}
