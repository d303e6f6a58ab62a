// internal/app/game.go
package app

import (
	"fmt"
	"math"

	"go-typing-defense/internal/component"
	"go-typing-defense/internal/config"
	"go-typing-defense/internal/entity"
	"go-typing-defense/internal/event"
	"go-typing-defense/internal/match"
	"go-typing-defense/internal/stats"
	"go-typing-defense/internal/system"
	"go-typing-defense/internal/types"
	"go-typing-defense/internal/utils"
	"go-typing-defense/internal/words"
)

// Options tunes a new game.
type Options struct {
	Lives int
	Seed  int64
}

// Game owns the authoritative simulation state and the per-frame update
// loop. Input events are applied synchronously as they arrive; ticks advance
// everything else.
type Game struct {
	ECS              *entity.ECS
	Dispatcher       *event.Dispatcher
	Rng              *utils.PRNGService
	MovementSystem   *system.MovementSystem
	FlashSystem      *system.FlashSystem
	ProjectileSystem *system.ProjectileSystem
	WaveSystem       *system.WaveSystem
	Engine           *match.Engine
	WaveStats        *stats.Accumulator
	TotalStats       *stats.Accumulator

	gameTime  float64
	finalized bool
	breach    *breachListener
}

// NewGame wires the ECS, the systems and the match engine together and
// starts wave 1.
func NewGame(source words.Source, dispatcher *event.Dispatcher, opts Options) (*Game, error) {
	if source == nil {
		return nil, fmt.Errorf("word source is required")
	}
	lives := opts.Lives
	if lives <= 0 {
		lives = config.MaxLives
	}

	ecs := entity.NewECS()
	rng := utils.NewPRNGService(opts.Seed)
	g := &Game{
		ECS:        ecs,
		Dispatcher: dispatcher,
		Rng:        rng,
		WaveStats:  &stats.Accumulator{},
		TotalStats: &stats.Accumulator{},
	}

	defenderID := ecs.NewEntity()
	ecs.DefenderID = defenderID
	ecs.Positions[defenderID] = &component.Position{X: config.ScreenWidth / 2, Y: config.BaselineY}
	ecs.Defender = &component.Defender{Lives: lives, MaxLives: lives}

	g.MovementSystem = system.NewMovementSystem(ecs, dispatcher)
	g.FlashSystem = system.NewFlashSystem(ecs)
	g.ProjectileSystem = system.NewProjectileSystem(ecs)
	g.WaveSystem = system.NewWaveSystem(ecs, dispatcher, source, rng, g.WaveStats)
	g.Engine = match.NewEngine(g, dispatcher, g.WaveStats, g.TotalStats)

	ecs.Wave = g.WaveSystem.StartWave(1)
	g.breach = &breachListener{game: g}
	dispatcher.Subscribe(event.HostileBreached, g.breach)

	return g, nil
}

// Detach unsubscribes the game's listeners from the shared dispatcher. Must
// run before a replacement game joins the same dispatcher: entity IDs restart
// at 1 each run, so a stale listener would act on the dead world.
func (g *Game) Detach() {
	g.Dispatcher.Unsubscribe(event.HostileBreached, g.breach)
}

// Update advances the simulation by one tick. Ticking stops entirely at game
// over; only a restart resumes from the initial state.
func (g *Game) Update(deltaTime float64) {
	if g.ECS.GameState.Phase == component.PhaseGameOver {
		return
	}
	g.gameTime += deltaTime
	g.ECS.GameTime = g.gameTime

	g.WaveSystem.Update(deltaTime, g.ECS.Wave)
	g.MovementSystem.Update(deltaTime)
	g.FlashSystem.Update(deltaTime)
	g.ProjectileSystem.Update(deltaTime)
	g.updateDying(deltaTime)
}

// --- Input entry points, called once per external input event ---

// TypeText appends typed characters to the buffer. A single event may carry
// more than one rune.
func (g *Game) TypeText(s string) {
	if g.ECS.GameState.Phase == component.PhaseGameOver {
		return
	}
	g.Engine.Append(s)
}

// Backspace removes the last buffered rune.
func (g *Game) Backspace() {
	if g.ECS.GameState.Phase == component.PhaseGameOver {
		return
	}
	g.Engine.DeleteLast()
}

// CancelBuffer drops the buffer and the lock.
func (g *Game) CancelBuffer() {
	if g.ECS.GameState.Phase == component.PhaseGameOver {
		return
	}
	g.Engine.Clear()
}

func (g *Game) IsGameOver() bool {
	return g.ECS.GameState.Phase == component.PhaseGameOver
}

func (g *Game) Score() int {
	return g.ECS.GameState.Score
}

func (g *Game) GameTime() float64 {
	return g.gameTime
}

// --- match.World implementation ---

// LiveHostiles returns lockable hostiles in spawn order. Dying hostiles are
// no longer candidates: a word that is already exploding cannot take damage
// or score.
func (g *Game) LiveHostiles() []types.EntityID {
	var out []types.EntityID
	for _, id := range g.ECS.SpawnOrder {
		h := g.ECS.Hostiles[id]
		if h == nil {
			continue
		}
		if h.Phase == component.PhaseSpawning || h.Phase == component.PhaseActive {
			out = append(out, id)
		}
	}
	return out
}

func (g *Game) TargetText(id types.EntityID) string {
	if h, ok := g.ECS.Hostiles[id]; ok {
		return h.TargetText
	}
	return ""
}

func (g *Game) SetLocked(id types.EntityID, locked bool) {
	if h, ok := g.ECS.Hostiles[id]; ok {
		h.Locked = locked
	}
}

func (g *Game) SetTypedPrefix(id types.EntityID, n int) {
	if h, ok := g.ECS.Hostiles[id]; ok {
		h.TypedPrefix = n
	}
}

func (g *Game) ApplyHit(id types.EntityID, n int) {
	h, ok := g.ECS.Hostiles[id]
	if !ok || h.Phase == component.PhaseDying || h.Phase == component.PhaseRemoved {
		return
	}
	h.Health -= n
	if vel, ok := g.ECS.Velocities[id]; ok {
		vel.Speed = vel.BaseSpeed * config.HitSlowFactor
	}
	g.ECS.HitFlashes[id] = &component.HitFlash{Remaining: config.HitFlashDuration}
	if h.Health <= 0 {
		g.enterDying(id)
	}
}

func (g *Game) DestroyByCompletion(id types.EntityID) {
	g.enterDying(id)
}

func (g *Game) FireProjectile(at types.EntityID) {
	targetPos, ok := g.ECS.Positions[at]
	if !ok {
		return
	}
	origin := g.ECS.Positions[g.ECS.DefenderID]

	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{X: origin.X, Y: origin.Y}
	g.ECS.Projectiles[id] = &component.Projectile{
		TargetX:   targetPos.X,
		TargetY:   targetPos.Y,
		Speed:     config.ProjectileSpeed,
		Direction: math.Atan2(targetPos.Y-origin.Y, targetPos.X-origin.X),
	}
}

func (g *Game) AddScore(points int) {
	g.ECS.GameState.Score += points
}

// --- internals ---

// enterDying starts the death animation. Idempotent: a second hit or breach
// while already dying is a no-op.
func (g *Game) enterDying(id types.EntityID) {
	h, ok := g.ECS.Hostiles[id]
	if !ok || h.Phase == component.PhaseDying || h.Phase == component.PhaseRemoved {
		return
	}
	h.Phase = component.PhaseDying
	h.DyingTimer = config.DeathDuration
	h.Locked = false
	h.TypedPrefix = 0
}

// updateDying removes hostiles whose death animation has finished.
func (g *Game) updateDying(deltaTime float64) {
	var done []types.EntityID
	for id, h := range g.ECS.Hostiles {
		if h.Phase != component.PhaseDying {
			continue
		}
		h.DyingTimer -= deltaTime
		if h.DyingTimer <= 0 {
			h.Phase = component.PhaseRemoved
			done = append(done, id)
		}
	}
	for _, id := range done {
		g.Engine.HandleRemoval(id)
		g.ECS.RemoveHostile(id)
	}
}

// breachListener handles baseline crossings and defender collisions.
type breachListener struct {
	game *Game
}

func (l *breachListener) OnEvent(e event.Event) {
	id, ok := e.Data.(types.EntityID)
	if !ok {
		return
	}
	g := l.game
	h, exists := g.ECS.Hostiles[id]
	if !exists || h.Phase == component.PhaseDying || h.Phase == component.PhaseRemoved {
		return
	}

	// Lock state is cleared before the hostile leaves the live set, so a
	// keystroke arriving right after sees a clean Idle engine.
	g.Engine.HandleRemoval(id)
	g.enterDying(id)

	g.ECS.Defender.Lives--
	if g.ECS.Defender.Lives < 0 {
		g.ECS.Defender.Lives = 0
	}
	g.Dispatcher.Dispatch(event.Event{Type: event.DefenderDamaged})

	if g.ECS.Defender.Lives == 0 {
		g.gameOver()
	}
}

func (g *Game) gameOver() {
	if g.ECS.GameState.Phase == component.PhaseGameOver {
		return
	}
	g.ECS.GameState.Phase = component.PhaseGameOver
	g.Dispatcher.Dispatch(event.Event{Type: event.GameOver})
	g.finalize()
}

// finalize emits the run summary exactly once. Persistence listeners take it
// from here; the game does not block on them.
func (g *Game) finalize() {
	if g.finalized {
		return
	}
	g.finalized = true
	g.Dispatcher.Dispatch(event.Event{
		Type: event.GameFinalized,
		Data: event.FinalResult{
			Score:    g.ECS.GameState.Score,
			Waves:    g.ECS.Wave.Number - 1,
			WPM:      g.TotalStats.WPM(int64(g.gameTime * 1000)),
			Accuracy: g.TotalStats.Accuracy(),
		},
	})
}
