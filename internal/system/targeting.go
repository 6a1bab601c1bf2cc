// internal/system/targeting.go
package system

import (
	"go-hex-battler/internal/entity"
	"go-hex-battler/internal/types"
)

// TargetingSystem назначает цели: ближайший живой юнит противоположной
// стороны, не находящийся в скрытности.
type TargetingSystem struct {
	ecs *entity.ECS
}

func NewTargetingSystem(ecs *entity.ECS) *TargetingSystem {
	return &TargetingSystem{ecs: ecs}
}

// Update переназначает цели каждый тик: новый враг ближе текущей цели
// или спавшая скрытность сразу меняют выбор.
func (s *TargetingSystem) Update(deltaTime float64) {
	for _, id := range sortedUnitIDs(s.ecs) {
		if target, ok := s.findNearestEnemy(id); ok {
			s.ecs.Targets[id] = target
		} else {
			delete(s.ecs.Targets, id)
		}
	}
}

// findNearestEnemy ищет ближайшую допустимую цель. При равных дистанциях
// выигрывает меньший ID: выбор стабилен между тиками.
func (s *TargetingSystem) findNearestEnemy(attacker types.EntityID) (types.EntityID, bool) {
	unit, ok := s.ecs.Units[attacker]
	if !ok {
		return 0, false
	}
	pos, ok := s.ecs.Positions[attacker]
	if !ok {
		return 0, false
	}

	var best types.EntityID
	bestDist := -1
	for _, candidate := range sortedUnitIDs(s.ecs) {
		other := s.ecs.Units[candidate]
		if other.Team == unit.Team {
			continue
		}
		stats, ok := s.ecs.Stats[candidate]
		if !ok || stats.IsDead() {
			continue
		}
		if stealth, ok := s.ecs.StealthBuffs[candidate]; ok && stealth.IsActive() {
			continue
		}
		otherPos, ok := s.ecs.Positions[candidate]
		if !ok {
			continue
		}
		dist := pos.Distance(otherPos)
		if bestDist < 0 || dist < bestDist {
			best, bestDist = candidate, dist
		}
	}
	return best, bestDist >= 0
}
