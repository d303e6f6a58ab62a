// internal/system/wave.go
package system

import (
	"go-typing-defense/internal/component"
	"go-typing-defense/internal/config"
	"go-typing-defense/internal/entity"
	"go-typing-defense/internal/event"
	"go-typing-defense/internal/stats"
	"go-typing-defense/internal/text"
	"go-typing-defense/internal/utils"
	"go-typing-defense/internal/words"
)

// WaveSystem schedules hostile spawns and declares wave transitions. Word
// choice, spawn rate, count and speed all follow progression functions of
// the wave number.
type WaveSystem struct {
	ecs         *entity.ECS
	dispatcher  *event.Dispatcher
	source      words.Source
	rng         *utils.PRNGService
	waveStats   *stats.Accumulator
	waveElapsed float64
}

func NewWaveSystem(ecs *entity.ECS, dispatcher *event.Dispatcher, source words.Source, rng *utils.PRNGService, waveStats *stats.Accumulator) *WaveSystem {
	return &WaveSystem{
		ecs:        ecs,
		dispatcher: dispatcher,
		source:     source,
		rng:        rng,
		waveStats:  waveStats,
	}
}

// EnemyCountForWave is a non-decreasing step function of the wave number.
func EnemyCountForWave(n int) int {
	return config.BaseEnemiesPerWave + (n-1)/config.EnemiesIncrementEvery
}

// SpawnIntervalForWave shrinks with the wave number, clamped to a minimum.
func SpawnIntervalForWave(n int) float64 {
	interval := config.InitialSpawnInterval - float64(n-1)*config.SpawnIntervalDecrement
	if interval < config.MinSpawnInterval {
		return config.MinSpawnInterval
	}
	return interval
}

// WordCeilingForWave caps word length early on and drops the cap entirely
// past a threshold wave. Zero means no ceiling.
func WordCeilingForWave(n int) int {
	if n > config.WordCeilingRemovedAfter {
		return 0
	}
	return config.WordCeilingBase + (n-1)/config.WordCeilingIncrementEvery
}

// SpeedForWave grows with the wave number. The first two waves use
// special-cased slow values to ease players in.
func SpeedForWave(n int) float64 {
	switch n {
	case 1:
		return config.WaveOneSpeed
	case 2:
		return config.WaveTwoSpeed
	default:
		return config.BaseHostileSpeed + float64(n-2)*config.HostileSpeedPerWave
	}
}

// StartWave builds the wave state for the given number.
func (s *WaveSystem) StartWave(number int) *component.Wave {
	s.waveElapsed = 0
	return &component.Wave{
		Number:        number,
		Total:         EnemyCountForWave(number),
		SpawnInterval: SpawnIntervalForWave(number),
		WordCeiling:   WordCeilingForWave(number),
		Speed:         SpeedForWave(number),
		Phase:         component.WaveSpawning,
	}
}

func (s *WaveSystem) Update(deltaTime float64, wave *component.Wave) {
	if wave == nil {
		return
	}
	s.waveElapsed += deltaTime

	switch wave.Phase {
	case component.WaveSpawning:
		if wave.Spawned < wave.Total {
			wave.SpawnTimer += deltaTime
			if wave.SpawnTimer >= wave.SpawnInterval {
				s.spawnHostile(wave)
				wave.Spawned++
				wave.SpawnTimer = 0
			}
			return
		}
		// Quota met: the wave clears once no hostile is left alive.
		if len(s.ecs.Hostiles) == 0 {
			wave.Phase = component.WaveClear
			wave.ClearTimer = 0
			wave.ClearAccuracy = s.waveStats.Accuracy()
			wave.ClearWPM = s.waveStats.WPM(int64(s.waveElapsed * 1000))
			s.dispatcher.Dispatch(event.Event{Type: event.WaveEnded, Data: wave.Number})
		}
	case component.WaveClear:
		wave.ClearTimer += deltaTime
		if wave.ClearTimer >= config.WaveClearFadeIn+config.WaveClearHold+config.WaveClearFadeOut {
			next := s.StartWave(wave.Number + 1)
			*wave = *next
			s.waveStats.Reset()
			s.dispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: wave.Number})
		}
	}
}

func (s *WaveSystem) spawnHostile(wave *component.Wave) {
	word := text.Normalize(s.source.RandomWord(wave.WordCeiling))

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{
		X: s.rng.Range(config.SpawnMarginX, config.ScreenWidth-config.SpawnMarginX),
		Y: config.SpawnY,
	}
	s.ecs.Velocities[id] = &component.Velocity{Speed: wave.Speed, BaseSpeed: wave.Speed}
	s.ecs.Hostiles[id] = &component.Hostile{
		TargetText:  word,
		TargetRunes: []rune(word),
		Health:      len([]rune(word)),
		Phase:       component.PhaseSpawning,
	}
	s.ecs.SpawnOrder = append(s.ecs.SpawnOrder, id)
}
