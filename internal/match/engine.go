// Package match implements the input-to-target state machine: it reconciles
// the raw keystroke buffer against the live hostiles' words, holds the
// exclusive lock on at most one hostile, and drives damage, projectiles,
// score and statistics as side effects.
package match

import (
	"strings"

	"go-typing-defense/internal/config"
	"go-typing-defense/internal/event"
	"go-typing-defense/internal/stats"
	"go-typing-defense/internal/text"
	"go-typing-defense/internal/types"
)

// Phase is the engine state.
type Phase int

const (
	// Idle: no lock, empty buffer.
	Idle Phase = iota
	// Scanning: no lock, non-empty buffer. Only reachable by shrinking a
	// locked buffer past the point where any live target matches.
	Scanning
	// Locked: exclusive lock on one hostile; the buffer is a prefix of its
	// target.
	Locked
)

// World is the view of the simulation the engine needs. Implemented by the
// game; kept as an interface to avoid an import cycle and to allow a fake in
// tests.
type World interface {
	// LiveHostiles returns lockable hostiles in spawn order. Dying and
	// removed hostiles are excluded.
	LiveHostiles() []types.EntityID
	// TargetText returns the hostile's normalized target word.
	TargetText(id types.EntityID) string
	SetLocked(id types.EntityID, locked bool)
	SetTypedPrefix(id types.EntityID, n int)
	// ApplyHit applies n units of damage with the usual flash/slow
	// reaction. A hit on an already dying hostile is a no-op.
	ApplyHit(id types.EntityID, n int)
	// DestroyByCompletion forces the hostile into its death animation.
	DestroyByCompletion(id types.EntityID)
	FireProjectile(at types.EntityID)
	AddScore(points int)
}

// Engine owns the input buffer and the lock.
type Engine struct {
	world      World
	dispatcher *event.Dispatcher
	waveStats  *stats.Accumulator
	totalStats *stats.Accumulator

	buffer   string
	phase    Phase
	lockedID types.EntityID
}

func NewEngine(world World, dispatcher *event.Dispatcher, waveStats, totalStats *stats.Accumulator) *Engine {
	return &Engine{
		world:      world,
		dispatcher: dispatcher,
		waveStats:  waveStats,
		totalStats: totalStats,
	}
}

func (e *Engine) Buffer() string { return e.buffer }

func (e *Engine) Phase() Phase { return e.phase }

// LockedID returns the hostile holding the lock, 0 when none does.
func (e *Engine) LockedID() types.EntityID { return e.lockedID }

// Append handles one "buffer grew" event. The event may carry several runes
// (paste); a rejected event is discarded whole, keeping the prior buffer.
func (e *Engine) Append(s string) {
	if s == "" {
		return
	}
	added := len([]rune(s))
	candidate := e.buffer + s
	normalized := text.Normalize(candidate)

	// Whitespace-only growth normalizes to the unchanged buffer. Dropping it
	// keeps damage tied to real prefix progress and stops an empty normalized
	// buffer from matching every target.
	if normalized == text.Normalize(e.buffer) {
		return
	}

	if e.phase == Locked {
		target := e.world.TargetText(e.lockedID)
		if !strings.HasPrefix(target, normalized) {
			// Mismatch against the locked target costs the whole
			// buffer and the lock, not just this event.
			e.recordIncorrect(added)
			e.dispatcher.Dispatch(event.Event{Type: event.InputRejected})
			e.unlock()
			e.buffer = ""
			e.phase = Idle
			return
		}
		e.accept(e.lockedID, candidate, normalized, added)
		return
	}

	// Idle or Scanning: scan the live set for a prefix match.
	matched, ok := e.firstCandidate(normalized)
	if !ok {
		e.recordIncorrect(added)
		e.dispatcher.Dispatch(event.Event{Type: event.InputRejected})
		return
	}
	e.lock(matched)
	e.accept(matched, candidate, normalized, added)
}

// DeleteLast handles one "buffer shrank" event. Shrinking is always
// accepted, whatever the lock state.
func (e *Engine) DeleteLast() {
	if e.buffer == "" {
		return
	}
	runes := []rune(e.buffer)
	e.buffer = string(runes[:len(runes)-1])
	e.rescan()
}

// Clear handles the explicit cancel command.
func (e *Engine) Clear() {
	e.unlock()
	e.buffer = ""
	e.phase = Idle
}

// HandleRemoval must be called when a hostile leaves the world for any
// reason. If it held the lock the engine returns to Idle, so the removal can
// never leave a dangling lock behind.
func (e *Engine) HandleRemoval(id types.EntityID) {
	if e.phase == Locked && e.lockedID == id {
		e.unlock()
		e.buffer = ""
		e.phase = Idle
	}
}

// accept commits an appended event against the locked hostile. Side effects
// run in the required order: statistics, damage, projectile, prefix update,
// completion check.
func (e *Engine) accept(id types.EntityID, candidate, normalized string, added int) {
	for i := 0; i < added; i++ {
		e.waveStats.RecordCorrect()
		e.totalStats.RecordCorrect()
		e.world.ApplyHit(id, 1)
		e.world.FireProjectile(id)
	}
	e.buffer = candidate
	e.world.SetTypedPrefix(id, len([]rune(normalized)))
	e.dispatcher.Dispatch(event.Event{Type: event.InputAccepted})

	if normalized == e.world.TargetText(id) {
		e.complete(id)
	}
}

func (e *Engine) complete(id types.EntityID) {
	points := text.RuneLen(e.world.TargetText(id)) * config.PointsPerChar
	e.world.AddScore(points)
	e.world.DestroyByCompletion(id)
	e.unlock()
	e.buffer = ""
	e.phase = Idle
	e.dispatcher.Dispatch(event.Event{Type: event.HostileDestroyed, Data: id})
}

// rescan re-runs the Idle/Scanning matching logic after a shrink. The lock
// survives if the shrunk buffer is still a prefix of the locked target; ties
// are not re-evaluated in that case.
func (e *Engine) rescan() {
	normalized := text.Normalize(e.buffer)
	if e.buffer == "" || normalized == "" {
		e.unlock()
		e.buffer = ""
		e.phase = Idle
		return
	}

	if e.phase == Locked {
		if e.stillLive(e.lockedID) && strings.HasPrefix(e.world.TargetText(e.lockedID), normalized) {
			e.world.SetTypedPrefix(e.lockedID, len([]rune(normalized)))
			return
		}
		e.unlock()
	}

	matched, ok := e.firstCandidate(normalized)
	if !ok {
		e.phase = Scanning
		return
	}
	e.lock(matched)
	e.world.SetTypedPrefix(matched, len([]rune(normalized)))
	if normalized == e.world.TargetText(matched) {
		e.complete(matched)
	}
}

// firstCandidate picks the first live hostile, in spawn order, whose target
// starts with the buffer. Spawn order is the deterministic tie-break when
// several targets share the prefix.
func (e *Engine) firstCandidate(normalized string) (types.EntityID, bool) {
	for _, id := range e.world.LiveHostiles() {
		if strings.HasPrefix(e.world.TargetText(id), normalized) {
			return id, true
		}
	}
	return 0, false
}

func (e *Engine) stillLive(id types.EntityID) bool {
	for _, live := range e.world.LiveHostiles() {
		if live == id {
			return true
		}
	}
	return false
}

func (e *Engine) lock(id types.EntityID) {
	if e.phase == Locked && e.lockedID == id {
		return
	}
	e.unlock()
	e.lockedID = id
	e.phase = Locked
	e.world.SetLocked(id, true)
}

func (e *Engine) unlock() {
	if e.lockedID != 0 {
		e.world.SetLocked(e.lockedID, false)
		e.world.SetTypedPrefix(e.lockedID, 0)
		e.lockedID = 0
	}
}

func (e *Engine) recordIncorrect(n int) {
	for i := 0; i < n; i++ {
		e.waveStats.RecordIncorrect()
		e.totalStats.RecordIncorrect()
	}
}
