// internal/system/movement.go
package system

import (
	"go-hex-battler/internal/component"
	"go-hex-battler/internal/entity"
	"go-hex-battler/pkg/hexmap"
)

// MovementSystem подводит юнитов к целям: один жадный шаг на свободный
// соседний гекс с минимальной дистанцией до цели. Если свободных соседей
// нет, юнит стоит на месте до следующего тика.
type MovementSystem struct {
	ecs  *entity.ECS
	grid *hexmap.BattleGrid
}

func NewMovementSystem(ecs *entity.ECS, grid *hexmap.BattleGrid) *MovementSystem {
	return &MovementSystem{ecs: ecs, grid: grid}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for _, cooldown := range s.ecs.MoveCools {
		if cooldown.Remaining > 0 {
			cooldown.Remaining -= deltaTime
		}
	}

	for _, id := range sortedUnitIDs(s.ecs) {
		target, ok := s.ecs.Targets[id]
		if !ok {
			continue
		}
		stats := s.ecs.Stats[id]
		pos := s.ecs.Positions[id]
		targetPos, ok := s.ecs.Positions[target]
		if !ok {
			continue
		}
		if pos.Distance(targetPos) <= stats.AttackRange {
			continue // Уже в радиусе атаки
		}

		cooldown, ok := s.ecs.MoveCools[id]
		if !ok {
			cooldown = &component.MoveCooldown{}
			s.ecs.MoveCools[id] = cooldown
		}
		if cooldown.Remaining > 0 {
			continue
		}

		if next, ok := s.bestStep(pos, targetPos); ok {
			if s.grid.Move(pos, next) {
				s.ecs.Positions[id] = next
				if stats.MoveSpeed > 0 {
					cooldown.Remaining = 1.0 / stats.MoveSpeed
				}
			}
		}
	}
}

// bestStep выбирает свободного соседа с минимальной дистанцией до цели.
// Шаг делается и тогда, когда сосед не ближе текущей клетки: юнит обходит
// затор вбок вместо стояния на месте, изредка ценой колебаний.
func (s *MovementSystem) bestStep(from, target hexmap.Hex) (hexmap.Hex, bool) {
	var best hexmap.Hex
	bestDist := -1
	for _, dir := range hexmap.NeighborDirections {
		next := from.Add(dir)
		if !s.grid.IsValid(next) || s.grid.IsOccupied(next) {
			continue
		}
		dist := next.Distance(target)
		if bestDist < 0 || dist < bestDist {
			best, bestDist = next, dist
		}
	}
	return best, bestDist >= 0
}
