package tui

import "context"

// lifecycle tracks fetch activations. It is shared by all copies of a Model
// so a result can be checked against the activation it was issued for.
type lifecycle struct {
	activation int
	active     bool
	cancel     context.CancelFunc
}

// start begins a new activation, cancelling any previous one.
func (l *lifecycle) start() (context.Context, int) {
	l.stop()
	ctx, cancel := context.WithCancel(context.Background())
	l.activation++
	l.active = true
	l.cancel = cancel
	return ctx, l.activation
}

// settle releases the fetch context once its result has been applied.
func (l *lifecycle) settle() {
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
}

// stop cancels the in-flight fetch and marks the view inactive.
func (l *lifecycle) stop() {
	l.settle()
	l.active = false
}

// accepts reports whether a result tagged with activation may be applied.
func (l *lifecycle) accepts(activation int) (bool, string) {
	switch {
	case !l.active:
		return false, "inactive"
	case activation != l.activation:
		return false, "stale activation"
	default:
		return true, ""
	}
}
