package components

// Position represents a lantern's canvas position.
type Position struct {
	X, Y float32
}

// Velocity represents a lantern's drift velocity. Negative Y drifts upward.
type Velocity struct {
	X, Y float32
}

// Target is the constellation slot a lantern is migrating toward.
// A lantern carries this component only while the scene is in constellation mode.
type Target struct {
	X, Y float32
}
