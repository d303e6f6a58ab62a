package match

import (
	"testing"

	"go-typing-defense/internal/event"
	"go-typing-defense/internal/stats"
	"go-typing-defense/internal/text"
	"go-typing-defense/internal/types"
)

// fakeWorld records side effects instead of running a simulation.
type fakeWorld struct {
	order    []types.EntityID
	targets  map[types.EntityID]string
	health   map[types.EntityID]int
	locked   map[types.EntityID]bool
	prefixes map[types.EntityID]int
	dying    map[types.EntityID]bool
	shots    int
	score    int
}

func newFakeWorld() *fakeWorld {
	return &fakeWorld{
		targets:  make(map[types.EntityID]string),
		health:   make(map[types.EntityID]int),
		locked:   make(map[types.EntityID]bool),
		prefixes: make(map[types.EntityID]int),
		dying:    make(map[types.EntityID]bool),
	}
}

func (w *fakeWorld) spawn(id types.EntityID, word string) {
	n := text.Normalize(word)
	w.order = append(w.order, id)
	w.targets[id] = n
	w.health[id] = len([]rune(n))
}

func (w *fakeWorld) remove(id types.EntityID) {
	for i, v := range w.order {
		if v == id {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
}

func (w *fakeWorld) LiveHostiles() []types.EntityID {
	var out []types.EntityID
	for _, id := range w.order {
		if !w.dying[id] {
			out = append(out, id)
		}
	}
	return out
}

func (w *fakeWorld) TargetText(id types.EntityID) string { return w.targets[id] }

func (w *fakeWorld) SetLocked(id types.EntityID, locked bool) { w.locked[id] = locked }

func (w *fakeWorld) SetTypedPrefix(id types.EntityID, n int) { w.prefixes[id] = n }

func (w *fakeWorld) ApplyHit(id types.EntityID, n int) {
	if w.dying[id] {
		return
	}
	w.health[id] -= n
	if w.health[id] <= 0 {
		w.dying[id] = true
	}
}

func (w *fakeWorld) DestroyByCompletion(id types.EntityID) { w.dying[id] = true }

func (w *fakeWorld) FireProjectile(at types.EntityID) { w.shots++ }

func (w *fakeWorld) AddScore(points int) { w.score += points }

func (w *fakeWorld) lockedCount() int {
	n := 0
	for _, v := range w.locked {
		if v {
			n++
		}
	}
	return n
}

func newTestEngine(w *fakeWorld) (*Engine, *stats.Accumulator, *stats.Accumulator) {
	wave := &stats.Accumulator{}
	total := &stats.Accumulator{}
	return NewEngine(w, event.NewDispatcher(), wave, total), wave, total
}

func appendRunes(e *Engine, s string) {
	for _, r := range s {
		e.Append(string(r))
	}
}

func TestCompletionDestroysHostile(t *testing.T) {
	// Scenario: 6-rune target, one hit per accepted rune, completion on the
	// last one.
	w := newFakeWorld()
	w.spawn(1, "ދިވެހި")
	e, wave, _ := newTestEngine(w)

	appendRunes(e, "ދިވެހ")
	if w.health[1] != 1 {
		t.Fatalf("health after 5 runes = %d, want 1", w.health[1])
	}
	if w.dying[1] {
		t.Fatal("hostile dying too early")
	}
	if e.Phase() != Locked || e.LockedID() != 1 {
		t.Fatalf("expected lock on 1, got phase=%v id=%d", e.Phase(), e.LockedID())
	}

	e.Append("ި")
	if !w.dying[1] {
		t.Fatal("hostile should be dying after completion")
	}
	if w.score != 60 {
		t.Errorf("score = %d, want 60", w.score)
	}
	if e.Buffer() != "" || e.Phase() != Idle {
		t.Errorf("engine should be Idle with empty buffer, got %q/%v", e.Buffer(), e.Phase())
	}
	if wave.Correct != 6 {
		t.Errorf("correct inputs = %d, want 6", wave.Correct)
	}
	if w.shots != 6 {
		t.Errorf("projectiles fired = %d, want 6", w.shots)
	}
}

func TestTieBreakBySpawnOrder(t *testing.T) {
	// Two targets share the first rune; the earlier spawn wins the lock and
	// later keystrokes validate only against it.
	w := newFakeWorld()
	w.spawn(1, "ބަތް")
	w.spawn(2, "ބޮޑު")
	e, _, _ := newTestEngine(w)

	e.Append("ބ")
	if e.LockedID() != 1 {
		t.Fatalf("locked %d, want 1 (spawn order)", e.LockedID())
	}
	if w.lockedCount() != 1 {
		t.Fatalf("locked count = %d, want 1", w.lockedCount())
	}

	// "ޮ" continues target 2, not target 1: rejected, full reset.
	e.Append("ޮ")
	if e.Phase() != Idle || e.Buffer() != "" {
		t.Errorf("mismatch while locked must fully reset, got %q/%v", e.Buffer(), e.Phase())
	}
	if w.locked[1] {
		t.Error("lock should be released on mismatch")
	}
	if w.health[2] != 4 {
		t.Errorf("unlocked hostile took damage: health = %d", w.health[2])
	}
}

func TestLockedMismatchClearsWholeBuffer(t *testing.T) {
	w := newFakeWorld()
	w.spawn(1, "ފެން")
	e, wave, _ := newTestEngine(w)

	appendRunes(e, "ފެ")
	if e.Buffer() != "ފެ" {
		t.Fatalf("buffer = %q, want ފެ", e.Buffer())
	}
	e.Append("ކ")
	if e.Buffer() != "" {
		t.Errorf("buffer = %q, want full clear, not revert", e.Buffer())
	}
	if e.Phase() != Idle || e.LockedID() != 0 {
		t.Errorf("expected Idle/no lock, got %v/%d", e.Phase(), e.LockedID())
	}
	if wave.Incorrect != 1 {
		t.Errorf("incorrect count = %d, want 1", wave.Incorrect)
	}
	if w.prefixes[1] != 0 {
		t.Errorf("typed prefix should reset to 0, got %d", w.prefixes[1])
	}
}

func TestIdleRejectKeepsPriorBuffer(t *testing.T) {
	w := newFakeWorld()
	w.spawn(1, "stone")
	e, wave, _ := newTestEngine(w)

	e.Append("x")
	if e.Buffer() != "" || e.Phase() != Idle {
		t.Errorf("rejected append must not change the buffer, got %q/%v", e.Buffer(), e.Phase())
	}
	if wave.Incorrect != 1 {
		t.Errorf("incorrect = %d, want 1", wave.Incorrect)
	}

	// Multi-rune event (paste) that matches nothing is discarded whole.
	e.Append("st")
	if e.LockedID() != 1 {
		t.Fatal("expected lock after valid append")
	}
	e.DeleteLast()
	e.DeleteLast()
	e.Append("zz")
	if e.Buffer() != "" {
		t.Errorf("paste reject should keep prior buffer, got %q", e.Buffer())
	}
	if wave.Incorrect != 3 {
		t.Errorf("incorrect = %d, want 3 (one per rejected rune)", wave.Incorrect)
	}
}

func TestShrinkKeepsValidLock(t *testing.T) {
	w := newFakeWorld()
	w.spawn(1, "stone")
	e, _, _ := newTestEngine(w)

	appendRunes(e, "sto")
	e.DeleteLast()
	if e.Phase() != Locked || e.LockedID() != 1 {
		t.Errorf("shrink to valid prefix should keep the lock")
	}
	if w.prefixes[1] != 2 {
		t.Errorf("prefix = %d, want 2", w.prefixes[1])
	}
	if e.Buffer() != "st" {
		t.Errorf("buffer = %q, want st", e.Buffer())
	}
}

func TestShrinkToEmptyForcesIdle(t *testing.T) {
	w := newFakeWorld()
	w.spawn(1, "ab")
	e, _, _ := newTestEngine(w)

	e.Append("a")
	e.DeleteLast()
	if e.Phase() != Idle || e.Buffer() != "" {
		t.Errorf("empty buffer must force Idle, got %v/%q", e.Phase(), e.Buffer())
	}
	if w.locked[1] || w.prefixes[1] != 0 {
		t.Errorf("everything should be unlocked: locked=%v prefix=%d", w.locked[1], w.prefixes[1])
	}
}

func TestLockedRemovalForcesIdle(t *testing.T) {
	w := newFakeWorld()
	w.spawn(1, "stone")
	w.spawn(2, "storm")
	e, _, _ := newTestEngine(w)

	appendRunes(e, "sto")
	if e.LockedID() != 1 {
		t.Fatal("expected lock on 1")
	}

	// World removes the locked hostile (boundary breach).
	e.HandleRemoval(1)
	w.remove(1)
	if e.Phase() != Idle || e.Buffer() != "" {
		t.Errorf("removal of locked target must force Idle, got %v/%q", e.Phase(), e.Buffer())
	}

	// A subsequent keystroke sees a clean Idle state.
	e.Append("s")
	if e.LockedID() != 2 {
		t.Errorf("fresh keystroke should lock hostile 2, got %d", e.LockedID())
	}
}

func TestRemovalOfUnlockedHostileIsIgnored(t *testing.T) {
	w := newFakeWorld()
	w.spawn(1, "stone")
	w.spawn(2, "reef")
	e, _, _ := newTestEngine(w)

	appendRunes(e, "st")
	e.HandleRemoval(2)
	if e.Phase() != Locked || e.Buffer() != "st" {
		t.Errorf("unrelated removal must not disturb the lock")
	}
}

func TestAtMostOneLock(t *testing.T) {
	w := newFakeWorld()
	w.spawn(1, "sand")
	w.spawn(2, "gale")
	e, _, _ := newTestEngine(w)

	appendRunes(e, "sa")
	if e.LockedID() != 1 || w.lockedCount() != 1 {
		t.Fatalf("locked %d (count %d), want 1 (count 1)", e.LockedID(), w.lockedCount())
	}

	// Mismatch fully resets; no re-scan of other candidates happens while a
	// lock is held.
	e.Append("x")
	if e.Phase() != Idle || w.lockedCount() != 0 {
		t.Fatalf("expected full reset after mismatch, got %v (count %d)", e.Phase(), w.lockedCount())
	}

	// A fresh sequence may lock a different hostile, still exclusively.
	appendRunes(e, "ga")
	if e.LockedID() != 2 {
		t.Fatalf("locked %d, want 2", e.LockedID())
	}
	if w.lockedCount() != 1 {
		t.Errorf("locked count = %d, want 1", w.lockedCount())
	}
	if w.locked[1] {
		t.Error("previous lock must be released")
	}
}

func TestPrefixTracksBufferWhileLocked(t *testing.T) {
	w := newFakeWorld()
	w.spawn(1, "stone")
	e, _, _ := newTestEngine(w)

	word := "stone"
	typed := ""
	for _, r := range word[:4] {
		typed += string(r)
		e.Append(string(r))
		if w.prefixes[1] != len([]rune(typed)) {
			t.Fatalf("prefix = %d, want %d", w.prefixes[1], len([]rune(typed)))
		}
		if e.Buffer() != typed {
			t.Fatalf("buffer = %q, want %q", e.Buffer(), typed)
		}
	}
}

func TestCompletionOnSingleAppendFromIdle(t *testing.T) {
	// A full-word paste from Idle locks and completes immediately.
	w := newFakeWorld()
	w.spawn(1, "fog")
	e, _, _ := newTestEngine(w)

	e.Append("fog")
	if !w.dying[1] {
		t.Fatal("hostile should be destroyed")
	}
	if w.score != 30 {
		t.Errorf("score = %d, want 30", w.score)
	}
	if e.Phase() != Idle {
		t.Errorf("phase = %v, want Idle", e.Phase())
	}
}

func TestWhitespaceAppendIsDropped(t *testing.T) {
	w := newFakeWorld()
	w.spawn(1, "stone")
	e, wave, _ := newTestEngine(w)

	// A bare space from Idle normalizes to empty and must not lock anything.
	e.Append(" ")
	if e.Phase() != Idle || w.lockedCount() != 0 {
		t.Fatalf("whitespace from Idle locked something: %v (count %d)", e.Phase(), w.lockedCount())
	}
	if w.shots != 0 || w.health[1] != 5 {
		t.Fatalf("whitespace caused side effects: shots=%d health=%d", w.shots, w.health[1])
	}

	// While locked, a space passes the prefix check after trimming but
	// advances nothing; it must not land a free hit.
	appendRunes(e, "st")
	shots := w.shots
	e.Append(" ")
	if w.health[1] != 3 || w.shots != shots {
		t.Errorf("whitespace landed a hit: health=%d shots=%d, want 3/%d", w.health[1], w.shots, shots)
	}
	if e.Buffer() != "st" || e.LockedID() != 1 {
		t.Errorf("buffer/lock disturbed: %q/%d", e.Buffer(), e.LockedID())
	}
	if wave.TotalTyped != 2 {
		t.Errorf("whitespace should not count as an attempt, total = %d", wave.TotalTyped)
	}
}

func TestClearCancelsEverything(t *testing.T) {
	w := newFakeWorld()
	w.spawn(1, "stone")
	e, _, _ := newTestEngine(w)

	appendRunes(e, "sto")
	e.Clear()
	if e.Phase() != Idle || e.Buffer() != "" || e.LockedID() != 0 {
		t.Errorf("Clear should reset engine, got %v/%q/%d", e.Phase(), e.Buffer(), e.LockedID())
	}
	if w.locked[1] || w.prefixes[1] != 0 {
		t.Errorf("Clear should unlock the hostile")
	}
}

func TestDyingHostileIsNotACandidate(t *testing.T) {
	w := newFakeWorld()
	w.spawn(1, "sand")
	w.spawn(2, "sail")
	w.dying[1] = true
	e, _, _ := newTestEngine(w)

	e.Append("sa")
	if e.LockedID() != 2 {
		t.Errorf("dying hostile must be skipped, locked %d", e.LockedID())
	}
}
