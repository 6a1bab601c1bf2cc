// internal/system/ability.go
package system

import (
	"go-hex-battler/internal/component"
	"go-hex-battler/internal/config"
	"go-hex-battler/internal/defs"
	"go-hex-battler/internal/entity"
	"go-hex-battler/internal/event"
	"go-hex-battler/internal/types"
)

// AbilitySystem копит ману и кастует классовые способности при полной мане.
// После каста мана сбрасывается в ноль.
type AbilitySystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
}

func NewAbilitySystem(ecs *entity.ECS, dispatcher *event.Dispatcher) *AbilitySystem {
	return &AbilitySystem{ecs: ecs, dispatcher: dispatcher}
}

func (s *AbilitySystem) Update(deltaTime float64) {
	for _, id := range sortedUnitIDs(s.ecs) {
		stats, ok := s.ecs.Stats[id]
		if !ok || stats.IsDead() {
			continue
		}
		stats.GainMana(stats.ManaRegen * deltaTime)
		if !stats.CanCast() {
			continue
		}
		s.cast(id, s.ecs.Units[id], stats)
		stats.Mana = 0
	}
}

func (s *AbilitySystem) cast(id types.EntityID, unit *component.Unit, stats *component.UnitStats) {
	switch unit.Class {
	case defs.ClassWarrior:
		// Ярость: атака x1.2. Повторный каст обновляет длительность.
		s.ecs.RageBuffs[id] = &component.RageBuff{Remaining: config.RageDuration}

	case defs.ClassTank:
		healed := stats.Heal(stats.MaxHealth * config.TankHealPercent)
		s.dispatcher.Dispatch(event.Event{
			Type: event.HealPopup,
			Data: event.HealPopupData{Target: id, Amount: healed},
		})

	case defs.ClassRanger:
		// Прицельный выстрел: следующая атака наносит двойной урон.
		s.ecs.SnipeBuffs[id] = &component.SnipeBuff{}

	case defs.ClassAssassin:
		s.ecs.StealthBuffs[id] = &component.StealthBuff{Remaining: config.StealthDuration}

	case defs.ClassMage:
		s.castNova(id, unit, stats)
	}
}

// castNova бьёт по всем живым юнитам противоположной стороны. Сила умения
// добавляется к базовому урону новы.
func (s *AbilitySystem) castNova(caster types.EntityID, unit *component.Unit, stats *component.UnitStats) {
	damage := config.MageNovaDamage + stats.AbilityPower
	for _, id := range sortedUnitIDs(s.ecs) {
		other := s.ecs.Units[id]
		if other.Team == unit.Team {
			continue
		}
		otherStats := s.ecs.Stats[id]
		if otherStats.IsDead() {
			continue
		}
		dealt := otherStats.TakeDamage(damage)
		s.dispatcher.Dispatch(event.Event{
			Type: event.DamagePopup,
			Data: event.DamagePopupData{Target: id, Amount: dealt},
		})
		if unit.Team == defs.TeamPlayer && other.Team == defs.TeamEnemy {
			s.ecs.Battle.RecordEnemyDamage(uint64(caster), unit.Class, dealt)
			if otherStats.IsDead() {
				s.ecs.Battle.RecordAllyKill(uint64(caster), unit.Class)
			}
		}
		if other.Team == defs.TeamPlayer {
			s.ecs.Battle.RecordAllyDamage(dealt)
			if unit.Team == defs.TeamEnemy {
				s.ecs.Battle.RecordThreat(unit.Class, dealt)
			}
		}
	}
}
