package drag

import "log/slog"

// State is the tracking state of a drag session.
type State int

const (
	StateIdle State = iota
	StateDragging
)

func (s State) String() string {
	if s == StateDragging {
		return "dragging"
	}
	return "idle"
}

// session is the transient gesture state of one element. baseline is only
// meaningful while dragging.
type session struct {
	state    State
	baseline Point
	moved    bool
}

func (s *session) start(p Point) {
	if s.state != StateDragging {
		s.moved = false
	}
	s.state = StateDragging
	s.baseline = p
}

// track computes the delta against the baseline and rebases it to p.
func (s *session) track(p Point) (Delta, bool) {
	if s.state != StateDragging {
		return Delta{}, false
	}
	d := Compute(s.baseline, p)
	s.baseline = p
	s.moved = true
	return d, true
}

// stop clears the session and reports whether it moved.
func (s *session) stop() bool {
	moved := s.state == StateDragging && s.moved
	*s = session{}
	return moved
}

// Options configures a Controller. The zero value drags freely.
type Options struct {
	// Mode is "free", "horizontal" or "vertical". Empty means "free".
	Mode string
}

// Controller attaches drag behavior to a single element.
type Controller struct {
	el   Element
	mode Mode
	pub  Publisher
	sess session
}

// New returns a controller for el. An unrecognised mode or a nil element
// fails with an error matching ErrInvalidConfiguration. A nil pub discards
// events.
func New(el Element, opts Options, pub Publisher) (*Controller, error) {
	if el == nil {
		return nil, &ConfigError{Field: "element"}
	}
	mode := Free
	if opts.Mode != "" {
		m, err := ParseMode(opts.Mode)
		if err != nil {
			return nil, err
		}
		mode = m
	}
	if pub == nil {
		pub = Discard
	}
	return &Controller{el: el, mode: mode, pub: pub}, nil
}

// Mode returns the axis mode the controller was built with.
func (c *Controller) Mode() Mode { return c.mode }

// Active reports whether a drag session is in progress.
func (c *Controller) Active() bool { return c.sess.state == StateDragging }

// Baseline returns the reference point of the next move. ok is false when
// no session is active.
func (c *Controller) Baseline() (p Point, ok bool) {
	if !c.Active() {
		return Point{}, false
	}
	return c.sess.baseline, true
}

// PointerDown arms the session at p. Pressing again while armed only moves
// the baseline.
func (c *Controller) PointerDown(p Point) {
	c.sess.start(p)
}

// PointerMove processes a move sample. While idle it does nothing and
// returns false. Otherwise the element is moved by the permitted part of
// the delta since the previous sample, one drag event is published and the
// delta is returned.
func (c *Controller) PointerMove(p Point) (Delta, bool) {
	d, ok := c.sess.track(p)
	if !ok {
		return Delta{}, false
	}

	cur, parsed := ReadPosition(c.el, c.mode)
	if !parsed {
		slog.Debug("drag: element position unset or malformed, using 0",
			"left", c.el.Style(PropLeft), "top", c.el.Style(PropTop))
	}
	WritePosition(c.el, Apply(cur, d.Offset, c.mode), c.mode)

	notify(c.pub, d.Offset)
	return d, true
}

// PointerUp ends the session. It reports whether the session moved the
// element, so the host can swallow the click that follows a drag.
func (c *Controller) PointerUp() bool {
	return c.sess.stop()
}

// PointerLeave ends the session the same way PointerUp does.
func (c *Controller) PointerLeave() bool {
	return c.sess.stop()
}
