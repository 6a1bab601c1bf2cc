// internal/system/combat.go
package system

import (
	"go-hex-battler/internal/component"
	"go-hex-battler/internal/config"
	"go-hex-battler/internal/defs"
	"go-hex-battler/internal/entity"
	"go-hex-battler/internal/event"
	"go-hex-battler/internal/types"
	"go-hex-battler/internal/utils"
)

// CombatSystem управляет автоатаками. Дистанция при атаке не проверяется:
// подводит юнита MovementSystem, а выстрел решают только перезарядка и
// наличие живой цели.
type CombatSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	rng        *utils.PRNGService
}

func NewCombatSystem(ecs *entity.ECS, dispatcher *event.Dispatcher, rng *utils.PRNGService) *CombatSystem {
	return &CombatSystem{ecs: ecs, dispatcher: dispatcher, rng: rng}
}

// pendingAttack — выстрел, собранный по снимку состояния на начало тика.
type pendingAttack struct {
	attacker types.EntityID
	target   types.EntityID
	damage   float64
	isCrit   bool
}

func (s *CombatSystem) Update(deltaTime float64) {
	for _, cooldown := range s.ecs.Cooldowns {
		if cooldown.Remaining > 0 {
			cooldown.Remaining -= deltaTime
		}
	}

	// Залп в два прохода: сперва собрать все готовые выстрелы, потом
	// применить урон. Цель, погибшая от чужого удара в этом же тике,
	// всё равно получает уже назначенный выстрел.
	var volley []pendingAttack
	for _, id := range sortedUnitIDs(s.ecs) {
		stats := s.ecs.Stats[id]
		if stats.IsDead() {
			continue
		}
		cooldown, ok := s.ecs.Cooldowns[id]
		if !ok {
			cooldown = &component.AttackCooldown{}
			s.ecs.Cooldowns[id] = cooldown
		}
		if cooldown.Remaining > 0 {
			continue
		}

		target, ok := s.ecs.Targets[id]
		if !ok {
			continue
		}
		targetStats, ok := s.ecs.Stats[target]
		if !ok || targetStats.IsDead() {
			continue
		}

		multiplier := 1.0
		if _, ok := s.ecs.RageBuffs[id]; ok {
			multiplier *= config.RageAttackBonus
		}
		if _, ok := s.ecs.SnipeBuffs[id]; ok {
			multiplier *= config.SnipeMultiplier
			delete(s.ecs.SnipeBuffs, id) // Одноразовый
		}
		isCrit := s.rng.Chance(stats.CritChance)

		volley = append(volley, pendingAttack{
			attacker: id,
			target:   target,
			damage:   CalculateDamage(stats.Attack, isCrit, multiplier),
			isCrit:   isCrit,
		})
		if stats.AttackSpeed > 0 {
			cooldown.Remaining = 1.0 / stats.AttackSpeed
		}
	}

	for _, a := range volley {
		s.resolve(a)
	}
}

func (s *CombatSystem) resolve(a pendingAttack) {
	targetStats, ok := s.ecs.Stats[a.target]
	if !ok {
		return
	}
	wasAlive := !targetStats.IsDead()
	dealt := targetStats.TakeDamage(a.damage)

	s.dispatcher.Dispatch(event.Event{
		Type: event.AttackSound,
		Data: event.AttackSoundData{IsCrit: a.isCrit},
	})
	s.dispatcher.Dispatch(event.Event{
		Type: event.DamagePopup,
		Data: event.DamagePopupData{Target: a.target, Amount: dealt, IsCrit: a.isCrit},
	})

	s.recordDamage(a.attacker, a.target, dealt, wasAlive && targetStats.IsDead())

	unit := s.ecs.Units[a.attacker]
	if unit.Team == defs.TeamEnemy {
		s.rollObstacleRequest()
	}
}

// recordDamage пополняет боевую статистику и приписывает убийство.
func (s *CombatSystem) recordDamage(attacker, target types.EntityID, dealt float64, killed bool) {
	unit := s.ecs.Units[attacker]
	targetUnit := s.ecs.Units[target]
	if unit.Team == defs.TeamPlayer && targetUnit.Team == defs.TeamEnemy {
		s.ecs.Battle.RecordEnemyDamage(uint64(attacker), unit.Class, dealt)
		if killed {
			s.ecs.Battle.RecordAllyKill(uint64(attacker), unit.Class)
		}
	}
	if targetUnit.Team == defs.TeamPlayer {
		s.ecs.Battle.RecordAllyDamage(dealt)
		if unit.Team == defs.TeamEnemy {
			s.ecs.Battle.RecordThreat(unit.Class, dealt)
		}
	}
}

// rollObstacleRequest — атаки врагов изредка подбрасывают препятствия на
// поле головоломки. На поздних волнах бомба вытесняет лёд.
func (s *CombatSystem) rollObstacleRequest() {
	wave := s.ecs.Wave.CurrentWave
	if wave >= config.BombRequestWave {
		if s.rng.Chance(config.BombRequestChance) {
			s.dispatcher.Dispatch(event.Event{
				Type: event.ObstacleRequested,
				Data: event.ObstacleRequestedData{Kind: defs.ObstacleBomb},
			})
		}
		return
	}
	if wave >= config.IceRequestWave && s.rng.Chance(config.IceRequestChance) {
		s.dispatcher.Dispatch(event.Event{
			Type: event.ObstacleRequested,
			Data: event.ObstacleRequestedData{Kind: defs.ObstacleIce},
		})
	}
}
