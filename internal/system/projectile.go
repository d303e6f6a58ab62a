// internal/system/projectile.go
package system

import (
	"math"

	"go-typing-defense/internal/config"
	"go-typing-defense/internal/entity"
	"go-typing-defense/internal/types"
)

// ProjectileSystem flies tracer shots toward the point their target occupied
// at fire time. Damage was already applied when the keystroke was accepted,
// so arrival only removes the projectile.
type ProjectileSystem struct {
	ecs *entity.ECS
}

func NewProjectileSystem(ecs *entity.ECS) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	var dead []types.EntityID
	for id, proj := range s.ecs.Projectiles {
		pos := s.ecs.Positions[id]
		if pos == nil {
			dead = append(dead, id)
			continue
		}

		dx := proj.TargetX - pos.X
		dy := proj.TargetY - pos.Y
		dist := math.Sqrt(dx*dx + dy*dy)

		if dist <= proj.Speed*deltaTime || dist < config.ProjectileHitRadius {
			dead = append(dead, id)
			continue
		}
		pos.X += math.Cos(proj.Direction) * proj.Speed * deltaTime
		pos.Y += math.Sin(proj.Direction) * proj.Speed * deltaTime

		if pos.X < -config.ProjectileRadius || pos.X > config.ScreenWidth+config.ProjectileRadius ||
			pos.Y < -config.ProjectileRadius || pos.Y > config.ScreenHeight+config.ProjectileRadius {
			dead = append(dead, id)
		}
	}
	for _, id := range dead {
		s.ecs.RemoveProjectile(id)
	}
}
