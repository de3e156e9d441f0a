package chat

import "time"

// CancelFunc cancels a scheduled delivery. Cancelling after the task ran is a
// no-op.
type CancelFunc func()

// Scheduler runs a function after a delay. The indirection exists so the
// simulated typing delay is cancellable and tests can run it synchronously.
type Scheduler interface {
	Schedule(delay time.Duration, fn func()) CancelFunc
}

// TimerScheduler schedules on real timers.
type TimerScheduler struct{}

func (TimerScheduler) Schedule(delay time.Duration, fn func()) CancelFunc {
	timer := time.AfterFunc(delay, fn)
	return func() { timer.Stop() }
}

// ImmediateScheduler runs the function inline, ignoring the delay. Used in
// tests.
type ImmediateScheduler struct{}

func (ImmediateScheduler) Schedule(_ time.Duration, fn func()) CancelFunc {
	fn()
	return func() {}
}
