// internal/component/hostile.go
package component

// LifecyclePhase tracks a hostile from spawn to removal.
type LifecyclePhase int

const (
	PhaseSpawning LifecyclePhase = iota
	PhaseActive
	PhaseDying
	PhaseRemoved
)

// Hostile is a descending entity carrying the word that destroys it.
// TargetText is normalized once at creation and never changes; Health starts
// at the rune length of TargetText.
type Hostile struct {
	TargetText  string
	TargetRunes []rune
	Health      int
	TypedPrefix int
	Locked      bool
	Phase       LifecyclePhase
	DyingTimer  float64
}
