// internal/system/synergy.go
package system

import (
	"go-hex-battler/internal/component"
	"go-hex-battler/internal/defs"
	"go-hex-battler/internal/entity"
)

// SynergySystem пересчитывает классовые бонусы игрока. Характеристики
// каждый тик выводятся заново из базового снимка, поэтому бонусы не
// накапливаются при повторном применении; текущие здоровье и мана
// переносятся пропорционально.
type SynergySystem struct {
	ecs *entity.ECS
}

func NewSynergySystem(ecs *entity.ECS) *SynergySystem {
	return &SynergySystem{ecs: ecs}
}

func (s *SynergySystem) Update(deltaTime float64) {
	counts := make(map[defs.UnitClass]int)
	for _, unit := range s.ecs.Units {
		if unit.Team == defs.TeamPlayer {
			counts[unit.Class]++
		}
	}

	levels := s.ecs.Synergies.Levels
	for class := range levels {
		delete(levels, class)
	}
	for class, count := range counts {
		if level := component.SynergyLevelFromCount(count); level != component.SynergyNone {
			levels[class] = level
		}
	}

	for id, unit := range s.ecs.Units {
		if unit.Team != defs.TeamPlayer {
			continue
		}
		base, ok := s.ecs.BaseStats[id]
		if !ok {
			continue
		}
		stats := s.ecs.Stats[id]

		derived := *base
		applyClassBonus(&derived, unit.Class, levels[unit.Class])

		// Перенос текущего состояния: доля здоровья сохраняется.
		if stats.MaxHealth > 0 {
			derived.Health = stats.Health * derived.MaxHealth / stats.MaxHealth
		}
		derived.Mana = stats.Mana
		if derived.Mana > derived.MaxMana {
			derived.Mana = derived.MaxMana
		}
		*stats = derived
	}
}

// applyClassBonus накладывает классовый бонус на производные характеристики.
// Масштаб scale нормирован так, что бронза даёт единицу.
func applyClassBonus(stats *component.UnitStats, class defs.UnitClass, level component.SynergyLevel) {
	if level == component.SynergyNone {
		return
	}
	scale := (level.BonusMultiplier() - 1.0) / 0.15

	switch class {
	case defs.ClassWarrior:
		stats.Attack *= 1.0 + 0.20*scale
		stats.MaxHealth *= 1.0 + 0.10*scale
	case defs.ClassTank:
		stats.MaxHealth *= 1.0 + 0.30*scale
		stats.Defense += 1.5 * scale
	case defs.ClassRanger:
		stats.AttackRange += int(level)
		stats.AttackSpeed *= 1.0 + 0.15*scale
	case defs.ClassAssassin:
		stats.Attack *= 1.0 + 0.30*scale
		stats.CritChance += 0.10 * float64(level)
		if stats.CritChance > 1.0 {
			stats.CritChance = 1.0
		}
	case defs.ClassMage:
		stats.AbilityPower *= 1.0 + 0.25*scale
		stats.ManaRegen *= 1.0 + 0.20*float64(level)
	}
}
