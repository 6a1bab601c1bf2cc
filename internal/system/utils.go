// internal/system/utils.go
package system

import (
	"sort"

	"go-hex-battler/internal/config"
	"go-hex-battler/internal/entity"
	"go-hex-battler/internal/types"
)

// sortedUnitIDs возвращает живые сущности в стабильном порядке. Обход карт
// в Go случаен, а симуляция должна быть воспроизводимой при одном сиде.
func sortedUnitIDs(ecs *entity.ECS) []types.EntityID {
	ids := make([]types.EntityID, 0, len(ecs.Units))
	for id := range ecs.Units {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// CalculateDamage считает урон до защиты: база, крит и модификаторы атаки.
func CalculateDamage(base float64, isCrit bool, multiplier float64) float64 {
	damage := base * multiplier
	if isCrit {
		damage *= config.CritMultiplier
	}
	return damage
}
