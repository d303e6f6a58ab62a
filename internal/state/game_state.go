// internal/state/game_state.go
package state

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-typing-defense/internal/app"
	"go-typing-defense/internal/component"
	"go-typing-defense/internal/config"
	"go-typing-defense/internal/system"
	"go-typing-defense/internal/ui"
)

// GameState runs the live simulation and translates keyboard input into
// match engine calls.
type GameState struct {
	sm       *StateMachine
	deps     Deps
	game     *app.Game
	renderer *system.RenderSystem
	wave     *ui.WaveIndicator
	lives    *ui.LivesIndicator
	buffer   *ui.BufferBar
	face     font.Face
	chars    []rune
}

func NewGameState(sm *StateMachine, deps Deps) (*GameState, error) {
	game, err := app.NewGame(deps.Source, deps.Dispatcher, deps.Opts)
	if err != nil {
		return nil, err
	}
	face := basicfont.Face7x13
	return &GameState{
		sm:       sm,
		deps:     deps,
		game:     game,
		renderer: system.NewRenderSystem(game.ECS),
		wave:     ui.NewWaveIndicator(config.ScreenWidth/2, 28, face),
		lives:    ui.NewLivesIndicator(config.ScreenWidth-140, 14),
		buffer:   ui.NewBufferBar(face),
		face:     face,
	}, nil
}

// Game exposes the underlying simulation to other states.
func (g *GameState) Game() *app.Game { return g.game }

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	if g.game.IsGameOver() {
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			next, err := NewGameState(g.sm, g.deps)
			if err != nil {
				log.Printf("restart game: %v", err)
				return
			}
			// The finished game leaves the shared dispatcher before the
			// replacement takes over its entity ID range.
			g.game.Detach()
			g.sm.SetState(next)
		}
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	// One input event per frame batch; a multi-rune batch (IME, paste) is
	// handed to the engine as a single append.
	g.chars = ebiten.AppendInputChars(g.chars[:0])
	if len(g.chars) > 0 {
		g.game.TypeText(string(g.chars))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		g.game.Backspace()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.game.CancelBuffer()
	}

	g.game.Update(deltaTime)
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g.renderer.Draw(screen)

	ecs := g.game.ECS
	if ecs.Wave != nil {
		g.wave.Draw(screen, ecs.Wave.Number)
	}
	if ecs.Defender != nil {
		g.lives.Draw(screen, ecs.Defender.Lives, ecs.Defender.MaxLives)
	}
	g.buffer.Draw(screen, g.game.Engine.Buffer(), g.game.Score())

	g.drawWaveClearBanner(screen)
	g.drawGameOver(screen)
}

func (g *GameState) Exit() {}

// drawWaveClearBanner fades the wave summary in, holds it, and fades it out
// before the next wave starts.
func (g *GameState) drawWaveClearBanner(screen *ebiten.Image) {
	wave := g.game.ECS.Wave
	if wave == nil || wave.Phase != component.WaveClear {
		return
	}

	t := wave.ClearTimer
	alpha := 1.0
	switch {
	case t < config.WaveClearFadeIn:
		alpha = t / config.WaveClearFadeIn
	case t > config.WaveClearFadeIn+config.WaveClearHold:
		out := t - config.WaveClearFadeIn - config.WaveClearHold
		alpha = 1 - out/config.WaveClearFadeOut
	}
	if alpha < 0 {
		alpha = 0
	}

	clr := fade(config.TextLightColor, alpha)
	drawCentered(screen, g.face, fmt.Sprintf("WAVE %d CLEAR", wave.Number), config.ScreenHeight/2-20, clr)
	drawCentered(screen, g.face,
		fmt.Sprintf("accuracy %d%%   %d wpm", wave.ClearAccuracy, wave.ClearWPM),
		config.ScreenHeight/2+4, fade(config.TextDimColor, alpha))
}

func (g *GameState) drawGameOver(screen *ebiten.Image) {
	if !g.game.IsGameOver() {
		return
	}

	drawCentered(screen, g.face, "GAME OVER", config.ScreenHeight/2-40, config.HostileColor)
	drawCentered(screen, g.face,
		fmt.Sprintf("score %d   accuracy %d%%   %d wpm",
			g.game.Score(),
			g.game.TotalStats.Accuracy(),
			g.game.TotalStats.WPM(int64(g.game.GameTime()*1000))),
		config.ScreenHeight/2, config.TextLightColor)
	drawCentered(screen, g.face, "press ENTER to retry", config.ScreenHeight/2+40, config.TextDimColor)
}

func fade(c color.RGBA, alpha float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
