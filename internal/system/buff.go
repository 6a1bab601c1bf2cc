// internal/system/buff.go
package system

import (
	"go-hex-battler/internal/entity"
)

// BuffSystem тикает временные баффы и удаляет истёкшие. Снайперский бафф
// не тикает: его снимает CombatSystem при выстреле.
type BuffSystem struct {
	ecs *entity.ECS
}

func NewBuffSystem(ecs *entity.ECS) *BuffSystem {
	return &BuffSystem{ecs: ecs}
}

func (s *BuffSystem) Update(deltaTime float64) {
	for id, buff := range s.ecs.RageBuffs {
		buff.Tick(deltaTime)
		if buff.IsExpired() {
			delete(s.ecs.RageBuffs, id)
		}
	}
	for id, buff := range s.ecs.StealthBuffs {
		buff.Tick(deltaTime)
		if buff.IsExpired() {
			delete(s.ecs.StealthBuffs, id)
		}
	}
}
