// internal/ui/lives_indicator.go
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-typing-defense/internal/config"
)

const (
	lifeCircleRadius  = 7.0
	lifeCircleSpacing = 6.0
)

// LivesIndicator draws the defender's remaining lives as a row of circles.
type LivesIndicator struct {
	X, Y float32
}

func NewLivesIndicator(x, y float32) *LivesIndicator {
	return &LivesIndicator{X: x, Y: y}
}

func (i *LivesIndicator) Draw(screen *ebiten.Image, lives, maxLives int) {
	for j := 0; j < maxLives; j++ {
		x := i.X + float32(j)*(lifeCircleRadius*2+lifeCircleSpacing)
		clr := config.LivesEmptyColor
		if j < lives {
			clr = config.LivesFullColor
		}
		vector.DrawFilledCircle(screen, x+lifeCircleRadius, i.Y+lifeCircleRadius, lifeCircleRadius, clr, true)
		vector.StrokeCircle(screen, x+lifeCircleRadius, i.Y+lifeCircleRadius, lifeCircleRadius, 1, config.TextLightColor, true)
	}
}
