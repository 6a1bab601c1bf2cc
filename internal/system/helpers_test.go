// internal/system/helpers_test.go
package system

import (
	"go-hex-battler/internal/component"
	"go-hex-battler/internal/config"
	"go-hex-battler/internal/defs"
	"go-hex-battler/internal/entity"
	"go-hex-battler/internal/types"
	"go-hex-battler/pkg/hexmap"
)

func newTestWorld() (*entity.ECS, *hexmap.BattleGrid) {
	ecs := entity.NewECS()
	grid := hexmap.NewBattleGrid(config.BattleCols, config.BattleRows, config.HexSize, 0, 0)
	return ecs, grid
}

func addUnit(ecs *entity.ECS, grid *hexmap.BattleGrid, class defs.UnitClass, team defs.Team, rank int, pos hexmap.Hex) types.EntityID {
	id := ecs.NewEntity()
	stats := component.NewUnitStats(class, rank)
	base := stats
	ecs.Units[id] = &component.Unit{Class: class, Team: team, Rank: rank}
	ecs.Stats[id] = &stats
	ecs.BaseStats[id] = &base
	ecs.Positions[id] = pos
	ecs.Cooldowns[id] = &component.AttackCooldown{}
	grid.Place(pos, id)
	return id
}
