// internal/entity/ecs.go
package entity

import (
	"go-typing-defense/internal/component"
	"go-typing-defense/internal/types"
)

// ECS stores components in plain maps keyed by entity ID. SpawnOrder keeps
// hostile IDs in creation order because map iteration is unordered and the
// input lock tie-break is defined as spawn order.
type ECS struct {
	GameTime float64
	NextID   types.EntityID

	Positions   map[types.EntityID]*component.Position
	Velocities  map[types.EntityID]*component.Velocity
	Hostiles    map[types.EntityID]*component.Hostile
	Projectiles map[types.EntityID]*component.Projectile
	HitFlashes  map[types.EntityID]*component.HitFlash

	SpawnOrder []types.EntityID

	DefenderID types.EntityID
	Defender   *component.Defender
	Wave       *component.Wave
	GameState  *component.GameState
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		Hostiles:    make(map[types.EntityID]*component.Hostile),
		Projectiles: make(map[types.EntityID]*component.Projectile),
		HitFlashes:  make(map[types.EntityID]*component.HitFlash),
		GameState:   &component.GameState{Phase: component.PhasePlaying},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveHostile deletes every component of a hostile and drops it from the
// spawn order.
func (ecs *ECS) RemoveHostile(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Hostiles, id)
	delete(ecs.HitFlashes, id)
	for i, sid := range ecs.SpawnOrder {
		if sid == id {
			ecs.SpawnOrder = append(ecs.SpawnOrder[:i], ecs.SpawnOrder[i+1:]...)
			break
		}
	}
}

// RemoveProjectile deletes a projectile and its position.
func (ecs *ECS) RemoveProjectile(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Projectiles, id)
}
