// Package drag implements click-and-drag repositioning for absolutely
// positioned elements.
//
// One Controller is attached per element. It tracks pointer-down, move and
// up/leave samples, computes the delta between consecutive samples, writes
// the element's new left/top values according to its axis Mode and
// publishes a "drag" Event carrying the offset.
//
// Usage:
//
//	c, err := drag.New(el, drag.Options{Mode: "horizontal"}, drag.PublisherFunc(func(e drag.Event) {
//	    fmt.Println(e.X, e.Y)
//	}))
//	if err != nil {
//	    return err
//	}
//	c.PointerDown(drag.Point{X: 10, Y: 10})
//	c.PointerMove(drag.Point{X: 15, Y: 20})
//	c.PointerUp()
//
// Controllers are not safe for concurrent use. They are meant to be driven
// from a single event loop.
package drag
