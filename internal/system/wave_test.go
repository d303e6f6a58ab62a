package system

import (
	"testing"

	"go-typing-defense/internal/component"
	"go-typing-defense/internal/config"
	"go-typing-defense/internal/entity"
	"go-typing-defense/internal/event"
	"go-typing-defense/internal/stats"
	"go-typing-defense/internal/utils"
)

type fixedSource struct {
	word string
	asks []int
}

func (s *fixedSource) WordsForWave(maxLen int) []string { return []string{s.word} }

func (s *fixedSource) RandomWord(maxLen int) string {
	s.asks = append(s.asks, maxLen)
	return s.word
}

func newWaveSystem(src *fixedSource) (*WaveSystem, *entity.ECS, *stats.Accumulator) {
	ecs := entity.NewECS()
	acc := &stats.Accumulator{}
	ws := NewWaveSystem(ecs, event.NewDispatcher(), src, utils.NewPRNGService(1), acc)
	return ws, ecs, acc
}

func TestProgressionMonotonicity(t *testing.T) {
	for n := 1; n < 30; n++ {
		if EnemyCountForWave(n+1) < EnemyCountForWave(n) {
			t.Fatalf("enemy count decreased at wave %d", n+1)
		}
		if SpawnIntervalForWave(n+1) > SpawnIntervalForWave(n) {
			t.Fatalf("spawn interval increased at wave %d", n+1)
		}
		if SpawnIntervalForWave(n) < config.MinSpawnInterval {
			t.Fatalf("spawn interval under minimum at wave %d", n)
		}
		if n >= 2 && SpeedForWave(n+1) <= SpeedForWave(n) {
			t.Fatalf("speed not increasing at wave %d", n+1)
		}
		ceiling := WordCeilingForWave(n)
		if n > config.WordCeilingRemovedAfter && ceiling != 0 {
			t.Fatalf("ceiling should be removed at wave %d, got %d", n, ceiling)
		}
		if n <= config.WordCeilingRemovedAfter && ceiling < WordCeilingForWave(maxInt(n-1, 1)) {
			t.Fatalf("ceiling decreased at wave %d", n)
		}
	}
	if EnemyCountForWave(1) != 4 {
		t.Errorf("EnemyCountForWave(1) = %d, want 4", EnemyCountForWave(1))
	}
	if SpeedForWave(1) >= SpeedForWave(2) {
		t.Error("wave 1 must be slower than wave 2")
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func TestSpawnHonorsTimerAndQuota(t *testing.T) {
	src := &fixedSource{word: "stone"}
	ws, ecs, _ := newWaveSystem(src)
	wave := ws.StartWave(1)

	// Nothing spawns before the interval elapses.
	ws.Update(wave.SpawnInterval/2, wave)
	if len(ecs.Hostiles) != 0 {
		t.Fatal("spawned before interval elapsed")
	}
	ws.Update(wave.SpawnInterval/2, wave)
	if len(ecs.Hostiles) != 1 {
		t.Fatalf("hostiles = %d, want 1", len(ecs.Hostiles))
	}

	// The quota stops spawning even with time to spare.
	for i := 0; i < 100; i++ {
		ws.Update(wave.SpawnInterval, wave)
	}
	if wave.Spawned != wave.Total {
		t.Errorf("spawned = %d, want quota %d", wave.Spawned, wave.Total)
	}

	// Word selection passed the wave's ceiling to the source.
	for _, asked := range src.asks {
		if asked != wave.WordCeiling {
			t.Errorf("RandomWord called with ceiling %d, want %d", asked, wave.WordCeiling)
		}
	}
}

func TestSpawnedHostileShape(t *testing.T) {
	src := &fixedSource{word: " stone "}
	ws, ecs, _ := newWaveSystem(src)
	wave := ws.StartWave(3)
	ws.Update(wave.SpawnInterval, wave)

	if len(ecs.SpawnOrder) != 1 {
		t.Fatal("expected one hostile in spawn order")
	}
	id := ecs.SpawnOrder[0]
	h := ecs.Hostiles[id]
	if h.TargetText != "stone" {
		t.Errorf("target not normalized: %q", h.TargetText)
	}
	if h.Health != 5 {
		t.Errorf("health = %d, want rune length 5", h.Health)
	}
	if h.Phase != component.PhaseSpawning {
		t.Errorf("phase = %v, want PhaseSpawning", h.Phase)
	}
	vel := ecs.Velocities[id]
	if vel.Speed != wave.Speed || vel.BaseSpeed != wave.Speed {
		t.Errorf("speed = %v/%v, want %v", vel.Speed, vel.BaseSpeed, wave.Speed)
	}
	pos := ecs.Positions[id]
	if pos.X < config.SpawnMarginX || pos.X > config.ScreenWidth-config.SpawnMarginX {
		t.Errorf("spawn X %v outside margin", pos.X)
	}
}

func TestWaveClearSnapshotAndAdvance(t *testing.T) {
	src := &fixedSource{word: "ab"}
	ws, ecs, acc := newWaveSystem(src)
	wave := ws.StartWave(1)

	// Spend the quota, then clear the field.
	for wave.Spawned < wave.Total {
		ws.Update(wave.SpawnInterval, wave)
	}
	for _, id := range ecs.SpawnOrder {
		delete(ecs.Hostiles, id)
	}
	ecs.SpawnOrder = nil

	acc.RecordCorrect()
	acc.RecordCorrect()
	ws.Update(0.01, wave)
	if wave.Phase != component.WaveClear {
		t.Fatal("wave should be clear")
	}
	if wave.ClearAccuracy != 100 {
		t.Errorf("snapshot accuracy = %d, want 100", wave.ClearAccuracy)
	}

	// Further updates inside the banner window do not re-trigger.
	ws.Update(0.01, wave)
	if wave.Phase != component.WaveClear {
		t.Fatal("banner should still be showing")
	}

	ws.Update(config.WaveClearFadeIn+config.WaveClearHold+config.WaveClearFadeOut, wave)
	if wave.Number != 2 || wave.Phase != component.WaveSpawning {
		t.Errorf("expected wave 2 spawning, got %d/%v", wave.Number, wave.Phase)
	}
	if acc.TotalTyped != 0 {
		t.Error("per-wave stats should reset on advance")
	}
}
