// internal/app/game.go
package app

import (
	"go-hex-battler/internal/component"
	"go-hex-battler/internal/config"
	"go-hex-battler/internal/defs"
	"go-hex-battler/internal/entity"
	"go-hex-battler/internal/event"
	"go-hex-battler/internal/system"
	"go-hex-battler/internal/types"
	"go-hex-battler/internal/utils"
	"go-hex-battler/pkg/hexmap"
)

// Game — ядро боя: ECS, сетка и конвейер систем. Внешний мир (поле
// головоломки, ввод, звук) общается с боем только через события.
type Game struct {
	ECS        *entity.ECS
	Grid       *hexmap.BattleGrid
	Dispatcher *event.Dispatcher
	Rng        *utils.PRNGService

	waveSystem      *system.WaveSystem
	targetingSystem *system.TargetingSystem
	movementSystem  *system.MovementSystem
	combatSystem    *system.CombatSystem
	abilitySystem   *system.AbilitySystem
	buffSystem      *system.BuffSystem
	synergySystem   *system.SynergySystem
	resultSystem    *system.GameResultSystem
	visualSystem    *system.VisualSystem

	// Входящие события копятся и применяются в начале тика: внешние
	// обработчики не трогают ECS посреди конвейера.
	inbound []event.Event

	SpeedMultiplier float64
}

func NewGame(seed int64, dispatcher *event.Dispatcher) *Game {
	ecs := entity.NewECS()
	ecs.Wave.WaveTimer = config.FirstWaveDelay

	grid := hexmap.NewBattleGrid(
		config.BattleCols, config.BattleRows,
		config.HexSize, config.GridOriginX, config.GridOriginY,
	)
	rng := utils.NewPRNGService(seed)

	g := &Game{
		ECS:             ecs,
		Grid:            grid,
		Dispatcher:      dispatcher,
		Rng:             rng,
		SpeedMultiplier: 1.0,
	}
	g.waveSystem = system.NewWaveSystem(ecs, grid, rng)
	g.targetingSystem = system.NewTargetingSystem(ecs)
	g.movementSystem = system.NewMovementSystem(ecs, grid)
	g.combatSystem = system.NewCombatSystem(ecs, dispatcher, rng)
	g.abilitySystem = system.NewAbilitySystem(ecs, dispatcher)
	g.buffSystem = system.NewBuffSystem(ecs)
	g.synergySystem = system.NewSynergySystem(ecs)
	g.resultSystem = system.NewGameResultSystem(ecs, dispatcher)
	g.visualSystem = system.NewVisualSystem(ecs, grid, dispatcher)

	g.subscribeBridge()
	return g
}

// QueueEvent ставит входящее событие в очередь следующего тика.
func (g *Game) QueueEvent(e event.Event) {
	g.inbound = append(g.inbound, e)
}

func (g *Game) subscribeBridge() {
	queue := event.ListenerFunc(func(e event.Event) { g.QueueEvent(e) })
	g.Dispatcher.Subscribe(event.MatchMade, queue)
	g.Dispatcher.Subscribe(event.UnitSummonRequested, queue)
	g.Dispatcher.Subscribe(event.ManaSupplied, queue)
	g.Dispatcher.Subscribe(event.SkillOrbActivated, queue)
	g.Dispatcher.Subscribe(event.BombDetonated, queue)
}

// Update продвигает симуляцию на deltaTime секунд.
func (g *Game) Update(deltaTime float64) {
	deltaTime *= g.SpeedMultiplier
	g.ECS.GameTime += deltaTime

	g.drainInbound()

	if g.ECS.Result.GameEnded {
		g.visualSystem.Update(deltaTime)
		return
	}

	if g.ECS.Phase.Phase == component.PhaseWaveBreak {
		g.updateWaveBreak(deltaTime)
		return
	}

	g.waveSystem.Update(deltaTime)
	g.targetingSystem.Update(deltaTime)
	g.movementSystem.Update(deltaTime)
	g.combatSystem.Update(deltaTime)
	g.abilitySystem.Update(deltaTime)
	g.buffSystem.Update(deltaTime)
	g.cleanupDeadUnits()
	g.synergySystem.Update(deltaTime)
	g.resultSystem.Update(deltaTime)
	g.visualSystem.Update(deltaTime)
}

// updateWaveBreak — пауза на перестановку: волны и бой стоят, юниты
// копят ману и сбрасывают баффы, призыв и слияние работают.
func (g *Game) updateWaveBreak(deltaTime float64) {
	phase := g.ECS.Phase
	phase.WaveBreakTimer -= deltaTime
	if phase.WaveBreakTimer <= 0 {
		phase.Phase = component.PhaseFighting
	}

	g.abilitySystem.Update(deltaTime)
	g.buffSystem.Update(deltaTime)
	g.synergySystem.Update(deltaTime)
	g.visualSystem.Update(deltaTime)
}

func (g *Game) drainInbound() {
	if len(g.inbound) == 0 {
		return
	}
	pending := g.inbound
	g.inbound = g.inbound[:0]
	for _, e := range pending {
		g.handleBridgeEvent(e)
	}
}

// cleanupDeadUnits снимает мёртвых с сетки и вычищает компоненты.
// Юнит, убитый в этом же тике, уже не действует: системы проверяют
// IsDead перед каждым действием.
func (g *Game) cleanupDeadUnits() {
	for _, id := range g.deadUnitIDs() {
		unit := g.ECS.Units[id]
		if pos, ok := g.ECS.Positions[id]; ok {
			g.Grid.Remove(pos)
		}
		g.Dispatcher.Dispatch(event.Event{
			Type: event.UnitDied,
			Data: event.UnitDiedData{ID: id, Class: unit.Class, Team: unit.Team},
		})
		g.ECS.RemoveUnit(id)
	}
}

func (g *Game) deadUnitIDs() []types.EntityID {
	var dead []types.EntityID
	for id, stats := range g.ECS.Stats {
		if stats.IsDead() {
			dead = append(dead, id)
		}
	}
	return dead
}

// PlayerUnitIDs — живые юниты игрока (для панелей и отладки).
func (g *Game) PlayerUnitIDs() []types.EntityID {
	var ids []types.EntityID
	for id, unit := range g.ECS.Units {
		if unit.Team == defs.TeamPlayer {
			ids = append(ids, id)
		}
	}
	return ids
}
