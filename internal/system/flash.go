// internal/system/flash.go
package system

import (
	"go-typing-defense/internal/entity"
)

// FlashSystem winds down hit flashes and restores the hostile's base speed
// when the flash window ends.
type FlashSystem struct {
	ecs *entity.ECS
}

func NewFlashSystem(ecs *entity.ECS) *FlashSystem {
	return &FlashSystem{ecs: ecs}
}

func (s *FlashSystem) Update(deltaTime float64) {
	for id, flash := range s.ecs.HitFlashes {
		flash.Remaining -= deltaTime
		if flash.Remaining > 0 {
			continue
		}
		if vel, ok := s.ecs.Velocities[id]; ok {
			vel.Speed = vel.BaseSpeed
		}
		delete(s.ecs.HitFlashes, id)
	}
}
