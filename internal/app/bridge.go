// internal/app/bridge.go
package app

import (
	"log"
	"sort"

	"go-hex-battler/internal/component"
	"go-hex-battler/internal/config"
	"go-hex-battler/internal/defs"
	"go-hex-battler/internal/event"
	"go-hex-battler/internal/types"
)

// handleBridgeEvent применяет входящее событие моста к состоянию боя.
func (g *Game) handleBridgeEvent(e event.Event) {
	switch e.Type {
	case event.MatchMade:
		if data, ok := e.Data.(event.MatchMadeData); ok {
			g.handleMatch(data)
		}
	case event.UnitSummonRequested:
		if data, ok := e.Data.(event.UnitSummonRequestedData); ok {
			g.SummonPlayerUnit(data.Class, data.Rank)
		}
	case event.ManaSupplied:
		if data, ok := e.Data.(event.ManaSuppliedData); ok {
			g.handleManaSupply(data.Amount)
		}
	case event.SkillOrbActivated:
		if data, ok := e.Data.(event.SkillOrbActivatedData); ok {
			g.applyOrb(data.Orb)
		}
	case event.BombDetonated:
		damage := config.BombBlastDamage
		if data, ok := e.Data.(event.BombDetonatedData); ok && data.Damage > 0 {
			damage = data.Damage
		}
		g.handleBombBlast(damage)
	}
}

// handleMatch — матч на поле головоломки призывает юнита. Крупный матч
// даёт сразу второй ранг, матч от четырёх камней — ещё и сферу умения.
func (g *Game) handleMatch(data event.MatchMadeData) {
	g.ECS.Battle.RecordMatch(data.Combo)
	g.Dispatcher.Dispatch(event.Event{
		Type: event.MatchSound,
		Data: event.MatchSoundData{Combo: data.Combo},
	})

	rank := 1
	if data.Count >= config.RankUpMatchSize {
		rank = 2
	}
	g.SummonPlayerUnit(data.Class, rank)

	if data.Count >= config.OrbMatchSize {
		g.applyOrb(defs.OrbForClass(data.Class))
	}
}

// SummonPlayerUnit призывает юнита игрока. Сначала проверяется слияние:
// если среди уже стоящих юнитов этого класса двое младших делят один
// ранг, пара снимается с поля и вместо неё на свободную клетку встаёт
// один юнит рангом выше, а сам призыв пропадает. Иначе юнит просто
// ставится на свободную клетку.
func (g *Game) SummonPlayerUnit(class defs.UnitClass, rank int) {
	if g.ECS.Result.GameEnded {
		return
	}
	if a, b, ok := g.findMergePair(class); ok {
		merged := g.ECS.Units[a].Rank + 1
		g.removeUnit(a)
		g.removeUnit(b)
		g.spawnPlayerUnit(class, merged)
		log.Printf("Слияние: пара %s схлопнулась в ранг %d", class, merged)
		return
	}
	g.spawnPlayerUnit(class, rank)
}

// findMergePair сортирует юнитов игрока данного класса по рангу и отдаёт
// двух младших, если их ранги совпадают и ниже предельного. При равных
// рангах выигрывают меньшие ID.
func (g *Game) findMergePair(class defs.UnitClass) (types.EntityID, types.EntityID, bool) {
	var ids []types.EntityID
	for id, unit := range g.ECS.Units {
		if unit.Team == defs.TeamPlayer && unit.Class == class {
			ids = append(ids, id)
		}
	}
	if len(ids) < 2 {
		return 0, 0, false
	}
	sort.Slice(ids, func(i, j int) bool {
		ri, rj := g.ECS.Units[ids[i]].Rank, g.ECS.Units[ids[j]].Rank
		if ri != rj {
			return ri < rj
		}
		return ids[i] < ids[j]
	})
	rank := g.ECS.Units[ids[0]].Rank
	if g.ECS.Units[ids[1]].Rank != rank || rank >= config.MaxStarRank {
		return 0, 0, false
	}
	return ids[0], ids[1], true
}

func (g *Game) spawnPlayerUnit(class defs.UnitClass, rank int) {
	cell, ok := g.Grid.FindEmptyPlayerCell()
	if !ok {
		log.Printf("Призыв %s отменён: половина игрока заполнена", class)
		return
	}

	id := g.ECS.NewEntity()
	stats := component.NewUnitStats(class, rank)
	base := stats
	g.ECS.Units[id] = &component.Unit{Class: class, Team: defs.TeamPlayer, Rank: rank}
	g.ECS.Stats[id] = &stats
	g.ECS.BaseStats[id] = &base
	g.ECS.Positions[id] = cell
	g.ECS.Cooldowns[id] = &component.AttackCooldown{}
	g.ECS.Renderables[id] = &component.Renderable{
		Color:  defs.UnitLibrary[class].Visuals.Color,
		Radius: float32(config.HexSize * 0.45),
	}
	g.Grid.Place(cell, id)
}

func (g *Game) removeUnit(id types.EntityID) {
	if pos, ok := g.ECS.Positions[id]; ok {
		g.Grid.Remove(pos)
	}
	g.ECS.RemoveUnit(id)
}

// handleManaSupply раздаёт ману всем юнитам игрока.
func (g *Game) handleManaSupply(amount float64) {
	for id, unit := range g.ECS.Units {
		if unit.Team != defs.TeamPlayer {
			continue
		}
		g.ECS.Stats[id].GainMana(amount)
	}
}

// applyOrb применяет сферу умения к стороне игрока.
func (g *Game) applyOrb(orb defs.OrbType) {
	switch orb {
	case defs.OrbBuff:
		// Бонус атаки пишется в базу, чтобы пережить пересчёт синергий.
		for id, unit := range g.ECS.Units {
			if unit.Team == defs.TeamPlayer {
				g.ECS.BaseStats[id].Attack *= config.OrbAttackBonus
			}
		}
	case defs.OrbHeal:
		for id, unit := range g.ECS.Units {
			if unit.Team != defs.TeamPlayer {
				continue
			}
			stats := g.ECS.Stats[id]
			healed := stats.Heal(stats.MaxHealth * config.OrbHealPercent)
			g.Dispatcher.Dispatch(event.Event{
				Type: event.HealPopup,
				Data: event.HealPopupData{Target: id, Amount: healed},
			})
		}
	case defs.OrbMeteor:
		for id, unit := range g.ECS.Units {
			if unit.Team != defs.TeamEnemy {
				continue
			}
			stats := g.ECS.Stats[id]
			if stats.IsDead() {
				continue
			}
			dealt := stats.TakeDamage(config.OrbMeteorDamage)
			g.ECS.Battle.TotalDamageDealt += dealt
			g.Dispatcher.Dispatch(event.Event{
				Type: event.DamagePopup,
				Data: event.DamagePopupData{Target: id, Amount: dealt},
			})
		}
	}
}

// handleBombBlast — взрыв бомбы бьёт по всем юнитам игрока фиксированным
// уроном в обход защиты.
func (g *Game) handleBombBlast(damage float64) {
	for id, unit := range g.ECS.Units {
		if unit.Team != defs.TeamPlayer {
			continue
		}
		stats := g.ECS.Stats[id]
		before := stats.Health
		stats.Health -= damage
		if stats.Health < 0 {
			stats.Health = 0
		}
		dealt := before - stats.Health
		g.ECS.Battle.RecordAllyDamage(dealt)
		g.Dispatcher.Dispatch(event.Event{
			Type: event.DamagePopup,
			Data: event.DamagePopupData{Target: id, Amount: dealt},
		})
	}
}
