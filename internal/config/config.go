// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1024
	ScreenHeight = 768
	MaxDeltaTime = 0.06

	// Defender placement and sizing. The defender sits centered just above
	// the baseline; a hostile that crosses BaselineY counts as a breach.
	BaselineY       = ScreenHeight - 80.0
	DefenderRadius  = 22.0
	HostileRadius   = 16.0
	CollisionRadius = DefenderRadius + HostileRadius
	MaxLives        = 5

	// Hostiles spawn along the top edge inside this horizontal margin.
	SpawnY       = -20.0
	SpawnMarginX = 60.0

	PointsPerChar = 10

	// Hit reaction: a struck hostile flashes and slows for this long.
	HitFlashDuration = 0.25
	HitSlowFactor    = 0.7

	// Death animation window between Dying and Removed.
	DeathDuration = 0.5

	ProjectileSpeed     = 900.0
	ProjectileRadius    = 4.0
	ProjectileHitRadius = 12.0

	// Wave progression.
	BaseEnemiesPerWave        = 4
	EnemiesIncrementEvery     = 2 // waves per +1 enemy
	InitialSpawnInterval      = 2.4
	MinSpawnInterval          = 0.8
	SpawnIntervalDecrement    = 0.2
	WordCeilingBase           = 4
	WordCeilingIncrementEvery = 2 // waves per +1 allowed letter
	WordCeilingRemovedAfter   = 8 // no ceiling past this wave
	BaseHostileSpeed          = 42.0
	HostileSpeedPerWave       = 4.0
	WaveOneSpeed              = 24.0
	WaveTwoSpeed              = 32.0

	// Wave-clear banner timing: fade in, hold, fade out.
	WaveClearFadeIn  = 0.4
	WaveClearHold    = 2.2
	WaveClearFadeOut = 0.4
)

var (
	BackgroundColor   = color.RGBA{18, 20, 32, 255}
	BaselineColor     = color.RGBA{90, 90, 120, 255}
	DefenderColor     = color.RGBA{80, 200, 120, 255}
	HostileColor      = color.RGBA{200, 70, 70, 255}
	HostileLockColor  = color.RGBA{255, 180, 60, 255}
	HostileFlashColor = color.RGBA{255, 255, 255, 255}
	ProjectileColor   = color.RGBA{120, 200, 255, 255}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	TextDimColor      = color.RGBA{140, 140, 160, 255}
	TypedPrefixColor  = color.RGBA{120, 255, 160, 255}
	LivesFullColor    = color.RGBA{80, 200, 120, 255}
	LivesEmptyColor   = color.RGBA{60, 60, 70, 255}
	HUDAccentColor    = color.RGBA{120, 160, 255, 255}
)
