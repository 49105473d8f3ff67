package components

// Interaction represents the pointer state of an interactive UI node (e.g., button).
type Interaction int

const (
	// InteractionNone indicates the pointer is not over the node.
	InteractionNone Interaction = iota
	// InteractionHovered indicates the pointer is over the node but not pressed.
	InteractionHovered
	// InteractionPressed indicates the node is being pressed.
	InteractionPressed
)

func (i Interaction) String() string {
	switch i {
	case InteractionNone:
		return "None"
	case InteractionHovered:
		return "Hovered"
	case InteractionPressed:
		return "Pressed"
	default:
		return "Unknown"
	}
}

// InteractionComponent tracks the interaction state of a UI node.
// Changed is true only during the frame in which State took a new value.
type InteractionComponent struct {
	// State is the current interaction state.
	State Interaction
	// Changed reports whether State changed this frame.
	Changed bool
}

// ComputedRectComponent holds the screen-space rectangle produced by the layout pass.
type ComputedRectComponent struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
func (r ComputedRectComponent) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}
