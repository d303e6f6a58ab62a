// internal/state/menu_state.go
package state

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-typing-defense/internal/app"
	"go-typing-defense/internal/config"
	"go-typing-defense/internal/event"
	"go-typing-defense/internal/words"
)

// Deps carries everything needed to build a fresh run. States pass it along
// so a restart rebuilds the game from the same inputs.
type Deps struct {
	Dispatcher *event.Dispatcher
	Source     words.Source
	Opts       app.Options
}

// MenuState is the title screen. Space starts a run.
type MenuState struct {
	sm   *StateMachine
	deps Deps
	face font.Face
}

func NewMenuState(sm *StateMachine, deps Deps) *MenuState {
	return &MenuState{sm: sm, deps: deps, face: basicfont.Face7x13}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		gs, err := NewGameState(m.sm, m.deps)
		if err != nil {
			log.Printf("start game: %v", err)
			return
		}
		m.sm.SetState(gs)
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	drawCentered(screen, m.face, "TYPING DEFENSE", config.ScreenHeight/2-40, config.TextLightColor)
	drawCentered(screen, m.face, "type the falling words before they reach the line", config.ScreenHeight/2, config.TextDimColor)
	drawCentered(screen, m.face, "press SPACE to start", config.ScreenHeight/2+40, config.HUDAccentColor)
}

func (m *MenuState) Exit() {}

func drawCentered(screen *ebiten.Image, face font.Face, s string, y int, clr color.Color) {
	width := font.MeasureString(face, s).Ceil()
	text.Draw(screen, s, face, config.ScreenWidth/2-width/2, y, clr)
}
