// internal/component/wave.go
package component

// WavePhase is the director's state: spawning up to the quota, or showing
// the wave-clear banner.
type WavePhase int

const (
	WaveSpawning WavePhase = iota
	WaveClear
)

// Wave holds the live parameters of the current wave.
type Wave struct {
	Number        int
	Spawned       int
	Total         int
	SpawnTimer    float64
	SpawnInterval float64
	WordCeiling   int // 0 means no ceiling
	Speed         float64

	Phase      WavePhase
	ClearTimer float64
	// Snapshot frozen when the wave cleared, shown on the banner.
	ClearAccuracy int
	ClearWPM      int
}
