// internal/component/defender.go
package component

// Defender is the singleton entity being protected at the baseline.
type Defender struct {
	Lives    int
	MaxLives int
}
