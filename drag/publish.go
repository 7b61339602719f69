package drag

// EventDrag is the name of the event published for every processed move.
const EventDrag = "drag"

// Event is the payload published to an element's listeners. It carries the
// offset of one move, not its direction.
type Event struct {
	Name string `json:"name"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

// Publisher delivers events to whoever listens on an element. Publish is
// called synchronously and its outcome is not observed.
type Publisher interface {
	Publish(Event)
}

// PublisherFunc adapts a function to a Publisher.
type PublisherFunc func(Event)

func (f PublisherFunc) Publish(e Event) { f(e) }

// Discard drops every event.
var Discard Publisher = PublisherFunc(func(Event) {})

func notify(p Publisher, off Offset) {
	p.Publish(Event{Name: EventDrag, X: off.X, Y: off.Y})
}
