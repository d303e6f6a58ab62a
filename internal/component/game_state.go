// internal/component/game_state.go
package component

// GamePhase is the top-level run state.
type GamePhase int

const (
	PhasePlaying GamePhase = iota
	PhaseGameOver
)

// GameState holds the run-wide mutable state shared through the ECS.
type GameState struct {
	Phase GamePhase
	Score int
}
