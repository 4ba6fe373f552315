package editor

// TimerState is the countdown clock's mode.
type TimerState int

const (
	TimerIdle TimerState = iota
	TimerRunning
	TimerPaused
)

// Timer is the writing countdown: a pure state machine ticked once per real
// second by its owner. On reaching zero it pauses itself and clamps there.
type Timer struct {
	initial   int
	remaining int
	state     TimerState
}

// NewTimer creates an idle timer with the given duration in seconds.
func NewTimer(seconds int) *Timer {
	return &Timer{initial: seconds, remaining: seconds, state: TimerIdle}
}

// Start begins or resumes the countdown. A running timer is unaffected; a
// finished timer stays at zero.
func (t *Timer) Start() {
	if t.remaining <= 0 {
		return
	}
	t.state = TimerRunning
}

// Pause stops the countdown, keeping the remaining time. No-op unless
// running.
func (t *Timer) Pause() {
	if t.state == TimerRunning {
		t.state = TimerPaused
	}
}

// Reset returns the timer to idle with the full initial duration, from any
// state.
func (t *Timer) Reset() {
	t.state = TimerIdle
	t.remaining = t.initial
}

// Tick advances the clock by one second. Only a running timer moves; at zero
// the timer pauses itself.
func (t *Timer) Tick() {
	if t.state != TimerRunning {
		return
	}
	t.remaining--
	if t.remaining <= 0 {
		t.remaining = 0
		t.state = TimerPaused
	}
}

func (t *Timer) State() TimerState { return t.state }

func (t *Timer) Running() bool { return t.state == TimerRunning }

// Remaining is the seconds left on the clock.
func (t *Timer) Remaining() int { return t.remaining }

// Clock splits the remaining time for display.
func (t *Timer) Clock() (minutes, seconds int) {
	return t.remaining / 60, t.remaining % 60
}
