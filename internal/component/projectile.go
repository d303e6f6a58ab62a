// internal/component/projectile.go
package component

// Projectile flies from the defender toward the point its target occupied at
// fire time. The target position is captured once and not re-tracked.
type Projectile struct {
	TargetX, TargetY float64
	Speed            float64
	Direction        float64 // radians
}
