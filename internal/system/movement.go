// internal/system/movement.go
package system

import (
	"math"

	"go-typing-defense/internal/component"
	"go-typing-defense/internal/config"
	"go-typing-defense/internal/entity"
	"go-typing-defense/internal/event"
)

// MovementSystem advances hostiles toward the defender and raises breach
// events. Homing is anisotropic: full speed along the defender-ward vertical
// axis, half speed laterally, which bends the approach paths instead of
// making them straight lines.
type MovementSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
}

func NewMovementSystem(ecs *entity.ECS, dispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{ecs: ecs, dispatcher: dispatcher}
}

func (s *MovementSystem) Update(deltaTime float64) {
	defPos, ok := s.ecs.Positions[s.ecs.DefenderID]
	if !ok {
		return
	}

	for _, id := range s.ecs.SpawnOrder {
		hostile := s.ecs.Hostiles[id]
		if hostile == nil || hostile.Phase == component.PhaseDying || hostile.Phase == component.PhaseRemoved {
			continue
		}
		pos := s.ecs.Positions[id]
		vel := s.ecs.Velocities[id]
		if pos == nil || vel == nil {
			continue
		}

		dx := defPos.X - pos.X
		dy := defPos.Y - pos.Y
		dist := math.Sqrt(dx*dx + dy*dy)
		if dist > 0 {
			pos.Y += (dy / dist) * vel.Speed * deltaTime
			pos.X += (dx / dist) * 0.5 * vel.Speed * deltaTime
		}

		if hostile.Phase == component.PhaseSpawning && pos.Y >= 0 {
			hostile.Phase = component.PhaseActive
		}

		// Breach: crossing the baseline and colliding with the defender
		// are treated identically. The listener clears the input lock
		// before the hostile is forced into dying.
		collided := math.Hypot(defPos.X-pos.X, defPos.Y-pos.Y) < config.CollisionRadius
		if pos.Y >= config.BaselineY || collided {
			s.dispatcher.Dispatch(event.Event{Type: event.HostileBreached, Data: id})
		}
	}
}
