// internal/ui/synergy_panel.go
package ui

import (
	"fmt"
	"sort"

	"go-hex-battler/internal/config"
	"go-hex-battler/internal/defs"
	"go-hex-battler/internal/entity"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// SynergyPanel показывает активные классовые бонусы игрока.
type SynergyPanel struct {
	X, Y     int
	fontFace font.Face
}

func NewSynergyPanel(x, y int, fontFace font.Face) *SynergyPanel {
	return &SynergyPanel{X: x, Y: y, fontFace: fontFace}
}

func (p *SynergyPanel) Draw(screen *ebiten.Image, ecs *entity.ECS) {
	levels := ecs.Synergies.Levels
	if len(levels) == 0 {
		return
	}

	// Карта обходится в случайном порядке, панель не должна мигать.
	classes := make([]defs.UnitClass, 0, len(levels))
	for class := range levels {
		classes = append(classes, class)
	}
	sort.Slice(classes, func(i, j int) bool { return classes[i] < classes[j] })

	height := float32(len(classes)*18 + 10)
	vector.DrawFilledRect(screen, float32(p.X-8), float32(p.Y-16), 170, height, config.PanelColor, false)

	y := p.Y
	for _, class := range classes {
		name := defs.UnitLibrary[class].Name
		line := fmt.Sprintf("%s: %s", name, levels[class])
		text.Draw(screen, line, p.fontFace, p.X, y, defs.UnitLibrary[class].Visuals.Color)
		y += 18
	}
}
