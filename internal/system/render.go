// internal/system/render.go
package system

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-typing-defense/internal/component"
	"go-typing-defense/internal/config"
	"go-typing-defense/internal/entity"
	"go-typing-defense/internal/types"
)

// RenderSystem draws the simulation: baseline, defender, projectiles and
// hostiles with their words. The typed prefix of the locked word renders in
// a distinct color so the player can see progress.
type RenderSystem struct {
	ecs  *entity.ECS
	face font.Face
}

func NewRenderSystem(ecs *entity.ECS) *RenderSystem {
	return &RenderSystem{ecs: ecs, face: basicfont.Face7x13}
}

func (s *RenderSystem) Draw(screen *ebiten.Image) {
	vector.StrokeLine(screen, 0, config.BaselineY, config.ScreenWidth, config.BaselineY, 1.5, config.BaselineColor, true)

	s.drawDefender(screen)

	for id := range s.ecs.Projectiles {
		if pos, ok := s.ecs.Positions[id]; ok {
			vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), config.ProjectileRadius, config.ProjectileColor, true)
		}
	}

	for _, id := range s.ecs.SpawnOrder {
		s.drawHostile(screen, id)
	}
}

func (s *RenderSystem) drawDefender(screen *ebiten.Image) {
	pos, ok := s.ecs.Positions[s.ecs.DefenderID]
	if !ok {
		return
	}
	vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), config.DefenderRadius, config.DefenderColor, true)
	vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), config.DefenderRadius*0.5, config.BackgroundColor, true)
}

func (s *RenderSystem) drawHostile(screen *ebiten.Image, id types.EntityID) {
	h := s.ecs.Hostiles[id]
	pos := s.ecs.Positions[id]
	if h == nil || pos == nil || h.Phase == component.PhaseRemoved {
		return
	}

	if h.Phase == component.PhaseDying {
		// Expanding ring for the death animation.
		progress := 1 - h.DyingTimer/config.DeathDuration
		ring := config.HostileRadius * float32(1+progress*1.5)
		vector.StrokeCircle(screen, float32(pos.X), float32(pos.Y), ring, 2, config.HostileLockColor, true)
		return
	}

	body := config.HostileColor
	if _, flashing := s.ecs.HitFlashes[id]; flashing {
		body = config.HostileFlashColor
	} else if h.Locked {
		body = config.HostileLockColor
	}
	vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), config.HostileRadius, body, true)

	s.drawWord(screen, h, pos)
}

// drawWord renders the target centered under the hostile, typed prefix
// first.
func (s *RenderSystem) drawWord(screen *ebiten.Image, h *component.Hostile, pos *component.Position) {
	word := h.TargetText
	width := font.MeasureString(s.face, word).Ceil()
	x := int(pos.X) - width/2
	y := int(pos.Y + config.HostileRadius + 16)

	if h.Locked && h.TypedPrefix > 0 && h.TypedPrefix <= len(h.TargetRunes) {
		prefix := string(h.TargetRunes[:h.TypedPrefix])
		rest := string(h.TargetRunes[h.TypedPrefix:])
		text.Draw(screen, prefix, s.face, x, y, config.TypedPrefixColor)
		text.Draw(screen, rest, s.face, x+font.MeasureString(s.face, prefix).Ceil(), y, config.TextLightColor)
		return
	}

	var clr color.Color = config.TextLightColor
	if !h.Locked {
		clr = config.TextDimColor
	}
	text.Draw(screen, word, s.face, x, y, clr)
}
