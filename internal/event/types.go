// internal/event/types.go
package event

const (
	InputAccepted    EventType = "InputAccepted"    // a keystroke extended a valid prefix
	InputRejected    EventType = "InputRejected"    // a keystroke matched nothing
	HostileDestroyed EventType = "HostileDestroyed" // word completed, Data: types.EntityID
	HostileBreached  EventType = "HostileBreached"  // baseline crossed or defender hit, Data: types.EntityID
	DefenderDamaged  EventType = "DefenderDamaged"  // a life was lost
	WaveStarted      EventType = "WaveStarted"      // Data: wave number
	WaveEnded        EventType = "WaveEnded"        // Data: wave number
	GameOver         EventType = "GameOver"
	GameFinalized    EventType = "GameFinalized" // Data: FinalResult
)

// FinalResult is the payload handed to persistence listeners at game over.
type FinalResult struct {
	Score    int
	Waves    int
	WPM      int
	Accuracy int
}
