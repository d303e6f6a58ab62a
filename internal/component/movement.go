// internal/component/movement.go
package component

// Position is a continuous 2D screen coordinate.
type Position struct {
	X, Y float64
}

// Velocity holds the scalar speed of a homing entity. Direction is derived
// each tick from the defender's position, so only the magnitude lives here.
type Velocity struct {
	Speed     float64
	BaseSpeed float64
}
