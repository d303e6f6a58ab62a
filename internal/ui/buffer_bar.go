// internal/ui/buffer_bar.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-typing-defense/internal/config"
)

// BufferBar shows the current input buffer centered at the bottom of the
// screen, with the score in the corner.
type BufferBar struct {
	Face font.Face
}

func NewBufferBar(face font.Face) *BufferBar {
	return &BufferBar{Face: face}
}

func (b *BufferBar) Draw(screen *ebiten.Image, buffer string, score int) {
	label := "> " + buffer
	width := font.MeasureString(b.Face, label).Ceil()
	text.Draw(screen, label, b.Face, config.ScreenWidth/2-width/2, config.ScreenHeight-24, config.TextLightColor)

	scoreLabel := fmt.Sprintf("SCORE %d", score)
	text.Draw(screen, scoreLabel, b.Face, 16, 24, config.TextLightColor)
}
