// internal/system/combat_test.go
package system

import (
	"math"
	"testing"

	"go-hex-battler/internal/component"
	"go-hex-battler/internal/defs"
	"go-hex-battler/internal/event"
	"go-hex-battler/internal/utils"
	"go-hex-battler/pkg/hexmap"
)

func TestCalculateDamage(t *testing.T) {
	tests := []struct {
		name       string
		base       float64
		crit       bool
		multiplier float64
		want       float64
	}{
		{"plain hit", 100, false, 1.0, 100},
		{"crit", 100, true, 1.0, 150},
		{"rage", 100, false, 1.2, 120},
		{"rage crit", 100, true, 1.2, 180},
		{"snipe", 100, false, 2.0, 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateDamage(tt.base, tt.crit, tt.multiplier)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("CalculateDamage = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestCombatAttackAndCooldown(t *testing.T) {
	ecs, grid := newTestWorld()
	dispatcher := event.NewDispatcher()
	attacker := addUnit(ecs, grid, defs.ClassWarrior, defs.TeamPlayer, 1, hexmap.Hex{Q: 0, R: 0})
	target := addUnit(ecs, grid, defs.ClassTank, defs.TeamEnemy, 1, hexmap.Hex{Q: 0, R: 1})
	ecs.Targets[attacker] = target
	ecs.Targets[target] = attacker

	cs := NewCombatSystem(ecs, dispatcher, utils.NewPRNGService(1))
	cs.Update(0.016)

	// Воин: 15 атаки, у танка защиты нет; танк бьёт в ответ на 8
	wantTank := 120.0 - 15.0
	if got := ecs.Stats[target].Health; math.Abs(got-wantTank) > 1e-9 {
		t.Errorf("tank health = %f, want %f", got, wantTank)
	}
	wantWarrior := 80.0 - 8.0
	if got := ecs.Stats[attacker].Health; math.Abs(got-wantWarrior) > 1e-9 {
		t.Errorf("warrior health = %f, want %f", got, wantWarrior)
	}

	// Перезарядка взведена на 1/attackSpeed
	if got := ecs.Cooldowns[attacker].Remaining; math.Abs(got-1.0/1.2) > 1e-9 {
		t.Errorf("cooldown = %f, want %f", got, 1.0/1.2)
	}

	// Повторный тик до истечения перезарядки не бьёт
	before := ecs.Stats[target].Health
	cs.Update(0.016)
	if ecs.Stats[target].Health != before {
		t.Error("attack fired during cooldown")
	}
}

func TestCombatMutualKillBothShotsLand(t *testing.T) {
	ecs, grid := newTestWorld()
	dispatcher := event.NewDispatcher()
	a := addUnit(ecs, grid, defs.ClassWarrior, defs.TeamPlayer, 1, hexmap.Hex{Q: 0, R: 0})
	b := addUnit(ecs, grid, defs.ClassWarrior, defs.TeamEnemy, 1, hexmap.Hex{Q: 0, R: 1})
	ecs.Targets[a] = b
	ecs.Targets[b] = a
	ecs.Stats[a].Health = 5
	ecs.Stats[b].Health = 5
	ecs.Stats[a].CritChance = 0
	ecs.Stats[b].CritChance = 0

	cs := NewCombatSystem(ecs, dispatcher, utils.NewPRNGService(1))
	cs.Update(0.016)

	// Залп собирается до применения урона: встречный выстрел проходит,
	// даже если стрелявший погибает от первого удара в том же тике
	if !ecs.Stats[a].IsDead() {
		t.Errorf("player health = %f, want 0 (counter-shot dropped)", ecs.Stats[a].Health)
	}
	if !ecs.Stats[b].IsDead() {
		t.Errorf("enemy health = %f, want 0", ecs.Stats[b].Health)
	}
	if ecs.Battle.EnemiesKilled != 1 {
		t.Errorf("EnemiesKilled = %d, want 1", ecs.Battle.EnemiesKilled)
	}
}

func TestCombatConsumesSnipe(t *testing.T) {
	ecs, grid := newTestWorld()
	dispatcher := event.NewDispatcher()
	attacker := addUnit(ecs, grid, defs.ClassRanger, defs.TeamPlayer, 1, hexmap.Hex{Q: 0, R: 0})
	target := addUnit(ecs, grid, defs.ClassTank, defs.TeamEnemy, 1, hexmap.Hex{Q: 0, R: 1})
	ecs.Targets[attacker] = target
	ecs.SnipeBuffs[attacker] = &component.SnipeBuff{}

	cs := NewCombatSystem(ecs, dispatcher, utils.NewPRNGService(1))
	cs.Update(0.016)

	// Лучник: 12 атаки, прицельный выстрел удваивает
	want := 120.0 - 24.0
	if got := ecs.Stats[target].Health; math.Abs(got-want) > 1e-9 {
		t.Errorf("tank health = %f, want %f", got, want)
	}
	if _, ok := ecs.SnipeBuffs[attacker]; ok {
		t.Error("snipe survived the shot")
	}
}

func TestCombatRageBonus(t *testing.T) {
	ecs, grid := newTestWorld()
	dispatcher := event.NewDispatcher()
	attacker := addUnit(ecs, grid, defs.ClassWarrior, defs.TeamPlayer, 1, hexmap.Hex{Q: 0, R: 0})
	target := addUnit(ecs, grid, defs.ClassTank, defs.TeamEnemy, 1, hexmap.Hex{Q: 0, R: 1})
	ecs.Targets[attacker] = target
	ecs.RageBuffs[attacker] = &component.RageBuff{Remaining: 5.0}

	cs := NewCombatSystem(ecs, dispatcher, utils.NewPRNGService(1))
	cs.Update(0.016)

	want := 120.0 - 15.0*1.2
	if got := ecs.Stats[target].Health; math.Abs(got-want) > 1e-9 {
		t.Errorf("tank health = %f, want %f", got, want)
	}
	if _, ok := ecs.RageBuffs[attacker]; !ok {
		t.Error("rage consumed by attack, must persist until timer")
	}
}

func TestCombatRecordsKill(t *testing.T) {
	ecs, grid := newTestWorld()
	dispatcher := event.NewDispatcher()
	attacker := addUnit(ecs, grid, defs.ClassAssassin, defs.TeamPlayer, 1, hexmap.Hex{Q: 0, R: 0})
	target := addUnit(ecs, grid, defs.ClassTank, defs.TeamEnemy, 1, hexmap.Hex{Q: 0, R: 1})
	ecs.Targets[attacker] = target
	ecs.Stats[target].Health = 5 // Добивание

	cs := NewCombatSystem(ecs, dispatcher, utils.NewPRNGService(1))
	cs.Update(0.016)

	if !ecs.Stats[target].IsDead() {
		t.Fatal("target survived a lethal hit")
	}
	if ecs.Battle.EnemiesKilled != 1 {
		t.Errorf("EnemiesKilled = %d, want 1", ecs.Battle.EnemiesKilled)
	}
	rec := ecs.Battle.Records[uint64(attacker)]
	if rec == nil || rec.Kills != 1 {
		t.Error("kill not attributed to attacker")
	}
	// Фактический урон — не больше остатка здоровья
	if rec.DamageDealt != 5 {
		t.Errorf("recorded damage = %f, want 5", rec.DamageDealt)
	}
}
