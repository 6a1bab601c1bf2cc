// internal/system/visual.go
package system

import (
	"fmt"
	"image/color"

	"go-hex-battler/internal/component"
	"go-hex-battler/internal/config"
	"go-hex-battler/internal/entity"
	"go-hex-battler/internal/event"
	"go-hex-battler/internal/types"
	"go-hex-battler/pkg/hexmap"
)

const popupLifetime = 0.8

// VisualSystem превращает события урона и лечения во всплывающий текст
// и гасит отжившие надписи.
type VisualSystem struct {
	ecs  *entity.ECS
	grid *hexmap.BattleGrid
}

func NewVisualSystem(ecs *entity.ECS, grid *hexmap.BattleGrid, dispatcher *event.Dispatcher) *VisualSystem {
	vs := &VisualSystem{ecs: ecs, grid: grid}
	dispatcher.Subscribe(event.DamagePopup, vs)
	dispatcher.Subscribe(event.HealPopup, vs)
	return vs
}

func (s *VisualSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.DamagePopup:
		data, ok := e.Data.(event.DamagePopupData)
		if !ok {
			return
		}
		clr := config.TextLightColor
		if data.IsCrit {
			clr = config.CritPopupColor
		}
		s.spawnPopup(data.Target, fmt.Sprintf("-%.0f", data.Amount), clr)
	case event.HealPopup:
		data, ok := e.Data.(event.HealPopupData)
		if !ok {
			return
		}
		s.spawnPopup(data.Target, fmt.Sprintf("+%.0f", data.Amount), config.HealPopupColor)
	}
}

func (s *VisualSystem) spawnPopup(target types.EntityID, text string, clr color.RGBA) {
	pos, ok := s.ecs.Positions[target]
	if !ok {
		return
	}
	x, y := s.grid.ToScreen(pos)
	id := s.ecs.NewEntity()
	s.ecs.Popups[id] = &component.Popup{
		Text:     text,
		X:        x,
		Y:        y - config.HexSize*0.6,
		Lifetime: popupLifetime,
		Color:    clr,
	}
}

func (s *VisualSystem) Update(deltaTime float64) {
	for id, popup := range s.ecs.Popups {
		popup.Age += deltaTime
		popup.Y -= 30 * deltaTime // Текст всплывает вверх
		if popup.IsExpired() {
			delete(s.ecs.Popups, id)
		}
	}
}
