// internal/ui/wave_indicator.go
package ui

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-typing-defense/internal/config"
)

// WaveIndicator shows the current wave number as roman numerals.
type WaveIndicator struct {
	X, Y int
	Face font.Face
}

func NewWaveIndicator(x, y int, face font.Face) *WaveIndicator {
	return &WaveIndicator{X: x, Y: y, Face: face}
}

// toRoman converts a positive integer to roman numerals.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

func (i *WaveIndicator) Draw(screen *ebiten.Image, waveNumber int) {
	if waveNumber <= 0 {
		return
	}
	label := toRoman(waveNumber)
	width := font.MeasureString(i.Face, label).Ceil()
	text.Draw(screen, label, i.Face, i.X-width/2, i.Y, config.HUDAccentColor)
}
