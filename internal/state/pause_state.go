// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-typing-defense/internal/config"
)

var _ State = (*PauseState)(nil)

// PauseState freezes the simulation. Typed characters are dropped while
// paused, not queued.
type PauseState struct {
	sm       *StateMachine
	previous *GameState
	face     font.Face
}

func NewPauseState(sm *StateMachine, previous *GameState) *PauseState {
	return &PauseState{sm: sm, previous: previous, face: basicfont.Face7x13}
}

func (p *PauseState) Enter() {}

func (p *PauseState) Update(deltaTime float64) {
	// Drain the input-chars buffer so nothing leaks into the buffer on
	// resume.
	ebiten.AppendInputChars(nil)

	if inpututil.IsKeyJustPressed(ebiten.KeyF9) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.sm.SetState(p.previous)
	}
}

func (p *PauseState) Draw(screen *ebiten.Image) {
	p.previous.Draw(screen)
	drawCentered(screen, p.face, "PAUSED", config.ScreenHeight/2-80, config.HUDAccentColor)
	drawCentered(screen, p.face, "press F9 to resume", config.ScreenHeight/2-60, config.TextDimColor)
}

func (p *PauseState) Exit() {}
