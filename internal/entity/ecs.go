// internal/entity/ecs.go
package entity

import (
	"go-hex-battler/internal/component"
	"go-hex-battler/internal/defs"
	"go-hex-battler/internal/types"
	"go-hex-battler/pkg/hexmap"
)

// ECS хранит компоненты по картам. Позиции лежат по значению: клетка на
// сетке одна, копирование дешёвое. Отсутствие записи в карте целей
// означает "цели нет".
type ECS struct {
	GameTime float64
	NextID   types.EntityID

	Units     map[types.EntityID]*component.Unit
	Stats     map[types.EntityID]*component.UnitStats
	BaseStats map[types.EntityID]*component.UnitStats // Снимок без синергий
	Positions map[types.EntityID]hexmap.Hex
	Targets   map[types.EntityID]types.EntityID
	Cooldowns map[types.EntityID]*component.AttackCooldown
	MoveCools map[types.EntityID]*component.MoveCooldown

	RageBuffs    map[types.EntityID]*component.RageBuff
	SnipeBuffs   map[types.EntityID]*component.SnipeBuff
	StealthBuffs map[types.EntityID]*component.StealthBuff

	Renderables map[types.EntityID]*component.Renderable
	Popups      map[types.EntityID]*component.Popup

	Wave      *component.WaveState
	Result    *component.GameResult
	Synergies *component.ActiveSynergies
	Battle    *component.BattleStats
	Phase     *component.PhaseState
}

func NewECS() *ECS {
	return &ECS{
		NextID:       1,
		Units:        make(map[types.EntityID]*component.Unit),
		Stats:        make(map[types.EntityID]*component.UnitStats),
		BaseStats:    make(map[types.EntityID]*component.UnitStats),
		Positions:    make(map[types.EntityID]hexmap.Hex),
		Targets:      make(map[types.EntityID]types.EntityID),
		Cooldowns:    make(map[types.EntityID]*component.AttackCooldown),
		MoveCools:    make(map[types.EntityID]*component.MoveCooldown),
		RageBuffs:    make(map[types.EntityID]*component.RageBuff),
		SnipeBuffs:   make(map[types.EntityID]*component.SnipeBuff),
		StealthBuffs: make(map[types.EntityID]*component.StealthBuff),
		Renderables:  make(map[types.EntityID]*component.Renderable),
		Popups:       make(map[types.EntityID]*component.Popup),
		Wave: &component.WaveState{
			CurrentWave: 0,
			WaveTimer:   0,
			WaveActive:  false,
		},
		Result:    &component.GameResult{},
		Synergies: component.NewActiveSynergies(),
		Battle:    component.NewBattleStats(),
		Phase:     &component.PhaseState{Phase: component.PhaseFighting},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveUnit вычищает все компоненты юнита и ссылки на него как на цель.
func (ecs *ECS) RemoveUnit(id types.EntityID) {
	delete(ecs.Units, id)
	delete(ecs.Stats, id)
	delete(ecs.BaseStats, id)
	delete(ecs.Positions, id)
	delete(ecs.Targets, id)
	delete(ecs.Cooldowns, id)
	delete(ecs.MoveCools, id)
	delete(ecs.RageBuffs, id)
	delete(ecs.SnipeBuffs, id)
	delete(ecs.StealthBuffs, id)
	delete(ecs.Renderables, id)
	for attacker, target := range ecs.Targets {
		if target == id {
			delete(ecs.Targets, attacker)
		}
	}
}

// TeamCount — число живых юнитов стороны.
func (ecs *ECS) TeamCount(team defs.Team) int {
	n := 0
	for _, unit := range ecs.Units {
		if unit.Team == team {
			n++
		}
	}
	return n
}
