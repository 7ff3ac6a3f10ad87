package alerting

import "sync"

type FakeAlerter struct {
	Captured []error
	lock     sync.Mutex
}

func NewFakeAlerter() *FakeAlerter {
	return &FakeAlerter{}
}

func (a *FakeAlerter) CaptureError(err error) {
	a.lock.Lock()
	defer a.lock.Unlock()
	a.Captured = append(a.Captured, err)
}

func (a *FakeAlerter) CapturedCount() int {
	a.lock.Lock()
	defer a.lock.Unlock()
	return len(a.Captured)
}
