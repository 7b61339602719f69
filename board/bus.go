package board

import "github.com/rileylov/dragboard/drag"

// bus fans drag events out to the listeners of each box. Delivery is
// synchronous and in subscription order.
type bus struct {
	listeners map[string][]func(drag.Event)
}

func newBus() *bus {
	return &bus{listeners: make(map[string][]func(drag.Event))}
}

func (b *bus) subscribe(id string, fn func(drag.Event)) {
	b.listeners[id] = append(b.listeners[id], fn)
}

// publisher returns the drag.Publisher bound to box id.
func (b *bus) publisher(id string) drag.Publisher {
	return drag.PublisherFunc(func(e drag.Event) {
		for _, fn := range b.listeners[id] {
			fn(e)
		}
	})
}
