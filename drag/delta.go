package drag

// Point is a pointer sample, in the same coordinate space as the element's
// position.
type Point struct {
	X int
	Y int
}

// Offset is a signed distance between two samples.
type Offset struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// HorizontalDirection is the x component of a Direction.
type HorizontalDirection string

// VerticalDirection is the y component of a Direction.
type VerticalDirection string

const (
	Left  HorizontalDirection = "left"
	Right HorizontalDirection = "right"
	Up    VerticalDirection   = "up"
	Down  VerticalDirection   = "down"
)

// Direction describes which way the pointer travelled between two samples.
type Direction struct {
	X HorizontalDirection
	Y VerticalDirection
}

// Delta is the movement between two consecutive samples.
type Delta struct {
	Direction Direction
	Offset    Offset
}

// Compute returns the movement from baseline to current. Equal x resolves
// to Left and equal y resolves to Up.
func Compute(baseline, current Point) Delta {
	d := Delta{
		Direction: Direction{X: Left, Y: Up},
		Offset: Offset{
			X: current.X - baseline.X,
			Y: current.Y - baseline.Y,
		},
	}
	if current.X > baseline.X {
		d.Direction.X = Right
	}
	if current.Y > baseline.Y {
		d.Direction.Y = Down
	}
	return d
}
