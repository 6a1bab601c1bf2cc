// internal/system/render.go
package system

import (
	"image/color"

	"go-hex-battler/internal/config"
	"go-hex-battler/internal/defs"
	"go-hex-battler/internal/entity"
	"go-hex-battler/pkg/hexmap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// RenderSystem рисует юнитов поверх поля: круг, звёзды ранга, полоски
// здоровья и маны, всплывающий текст.
type RenderSystem struct {
	ecs      *entity.ECS
	grid     *hexmap.BattleGrid
	fontFace font.Face
}

func NewRenderSystem(ecs *entity.ECS, grid *hexmap.BattleGrid, fontFace font.Face) *RenderSystem {
	return &RenderSystem{ecs: ecs, grid: grid, fontFace: fontFace}
}

func (s *RenderSystem) Draw(screen *ebiten.Image) {
	for _, id := range sortedUnitIDs(s.ecs) {
		render, ok := s.ecs.Renderables[id]
		if !ok {
			continue
		}
		pos := s.ecs.Positions[id]
		stats := s.ecs.Stats[id]
		unit := s.ecs.Units[id]
		x, y := s.grid.ToScreen(pos)

		clr := render.Color
		if stealth, ok := s.ecs.StealthBuffs[id]; ok && stealth.IsActive() {
			clr.A = 90 // Скрытые юниты полупрозрачны
		}

		if unit.Team == defs.TeamPlayer {
			vector.DrawFilledCircle(screen, float32(x), float32(y), render.Radius+2, config.StrokeColor, true)
		}
		vector.DrawFilledCircle(screen, float32(x), float32(y), render.Radius, clr, true)

		s.drawRankStars(screen, x, y, float64(render.Radius), unit.Rank)
		s.drawBars(screen, x, y, float64(render.Radius), stats.Health/stats.MaxHealth, stats.Mana/stats.MaxMana)
	}

	for _, popup := range s.ecs.Popups {
		text.Draw(screen, popup.Text, s.fontFace, int(popup.X), int(popup.Y), popup.Color)
	}
}

func (s *RenderSystem) drawRankStars(screen *ebiten.Image, x, y, radius float64, rank int) {
	if rank <= 1 {
		return
	}
	const starR = 2.5
	const step = 7.0
	startX := x - step*float64(rank-1)/2
	for i := 0; i < rank; i++ {
		vector.DrawFilledCircle(screen,
			float32(startX+float64(i)*step), float32(y-radius-8),
			starR, config.CritPopupColor, true)
	}
}

func (s *RenderSystem) drawBars(screen *ebiten.Image, x, y, radius, healthFrac, manaFrac float64) {
	const barW = 34.0
	const barH = 4.0
	left := float32(x - barW/2)
	top := float32(y + radius + 4)

	vector.DrawFilledRect(screen, left, top, barW, barH, config.HealthBackColor, false)
	vector.DrawFilledRect(screen, left, top, float32(barW*clamp01(healthFrac)), barH, healthColor(healthFrac), false)

	vector.DrawFilledRect(screen, left, top+barH+1, barW, barH-1, config.HealthBackColor, false)
	vector.DrawFilledRect(screen, left, top+barH+1, float32(barW*clamp01(manaFrac)), barH-1, config.ManaBarColor, false)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func healthColor(frac float64) color.RGBA {
	switch {
	case frac > 0.6:
		return config.HealthGoodColor
	case frac > 0.3:
		return config.HealthMidColor
	default:
		return config.HealthLowColor
	}
}
