package scan

import "time"

// DefaultPollInterval is how long the idle engine waits between checks for a
// reset request when nothing wakes it earlier.
const DefaultPollInterval = 250 * time.Millisecond

// Option configures an Engine during creation.
//
// Example:
//
//	e, err := scan.New(vp, buf, escape.Mandelbrot{}, palette.NewWheel(0, 0),
//	    scan.WithRedraw(canvas.Refresh),
//	    scan.WithPollInterval(100*time.Millisecond))
type Option func(*options)

type options struct {
	pollInterval time.Duration
	redraw       func()
	onState      func(State)
}

func defaultOptions() options {
	return options{
		pollInterval: DefaultPollInterval,
		redraw:       func() {},
		onState:      func(State) {},
	}
}

// WithPollInterval sets the idle poll interval. Non-positive values keep the
// default.
func WithPollInterval(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.pollInterval = d
		}
	}
}

// WithRedraw sets the callback invoked once per completed row and once when
// a pass finishes. It runs on the scan goroutine.
func WithRedraw(fn func()) Option {
	return func(o *options) {
		if fn != nil {
			o.redraw = fn
		}
	}
}

// WithStateListener sets a callback invoked on every state transition. It
// runs on the scan goroutine.
func WithStateListener(fn func(State)) Option {
	return func(o *options) {
		if fn != nil {
			o.onState = fn
		}
	}
}
