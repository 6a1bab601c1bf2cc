// internal/system/ability_test.go
package system

import (
	"math"
	"testing"

	"go-hex-battler/internal/config"
	"go-hex-battler/internal/defs"
	"go-hex-battler/internal/event"
	"go-hex-battler/pkg/hexmap"
)

func TestManaRegen(t *testing.T) {
	ecs, grid := newTestWorld()
	id := addUnit(ecs, grid, defs.ClassWarrior, defs.TeamPlayer, 1, hexmap.Hex{Q: 0, R: 0})

	as := NewAbilitySystem(ecs, event.NewDispatcher())
	as.Update(2.5)

	// Реген 1 маны в секунду
	if got := ecs.Stats[id].Mana; math.Abs(got-2.5) > 1e-9 {
		t.Errorf("mana = %f, want 2.5", got)
	}
}

func TestWarriorCastsRage(t *testing.T) {
	ecs, grid := newTestWorld()
	id := addUnit(ecs, grid, defs.ClassWarrior, defs.TeamPlayer, 1, hexmap.Hex{Q: 0, R: 0})
	ecs.Stats[id].Mana = ecs.Stats[id].MaxMana

	as := NewAbilitySystem(ecs, event.NewDispatcher())
	as.Update(0.016)

	buff, ok := ecs.RageBuffs[id]
	if !ok {
		t.Fatal("rage not applied")
	}
	if math.Abs(buff.Remaining-config.RageDuration) > 1e-9 {
		t.Errorf("rage duration = %f, want %f", buff.Remaining, config.RageDuration)
	}
	if ecs.Stats[id].Mana != 0 {
		t.Errorf("mana = %f, want 0 after cast", ecs.Stats[id].Mana)
	}
}

func TestTankCastsHeal(t *testing.T) {
	ecs, grid := newTestWorld()
	id := addUnit(ecs, grid, defs.ClassTank, defs.TeamPlayer, 1, hexmap.Hex{Q: 0, R: 0})
	ecs.Stats[id].Health = 60
	ecs.Stats[id].Mana = ecs.Stats[id].MaxMana

	dispatcher := event.NewDispatcher()
	var healEvents int
	dispatcher.Subscribe(event.HealPopup, event.ListenerFunc(func(e event.Event) {
		healEvents++
	}))

	as := NewAbilitySystem(ecs, dispatcher)
	as.Update(0.016)

	// 20% от 120 максимума
	want := 60.0 + 24.0
	if got := ecs.Stats[id].Health; math.Abs(got-want) > 1e-9 {
		t.Errorf("health = %f, want %f", got, want)
	}
	if healEvents != 1 {
		t.Errorf("heal popups = %d, want 1", healEvents)
	}
}

func TestRangerCastsSnipe(t *testing.T) {
	ecs, grid := newTestWorld()
	id := addUnit(ecs, grid, defs.ClassRanger, defs.TeamPlayer, 1, hexmap.Hex{Q: 0, R: 0})
	ecs.Stats[id].Mana = ecs.Stats[id].MaxMana

	as := NewAbilitySystem(ecs, event.NewDispatcher())
	as.Update(0.016)

	if _, ok := ecs.SnipeBuffs[id]; !ok {
		t.Error("snipe not applied")
	}
}

func TestAssassinCastsStealth(t *testing.T) {
	ecs, grid := newTestWorld()
	id := addUnit(ecs, grid, defs.ClassAssassin, defs.TeamPlayer, 1, hexmap.Hex{Q: 0, R: 0})
	ecs.Stats[id].Mana = ecs.Stats[id].MaxMana

	as := NewAbilitySystem(ecs, event.NewDispatcher())
	as.Update(0.016)

	buff, ok := ecs.StealthBuffs[id]
	if !ok {
		t.Fatal("stealth not applied")
	}
	if !buff.IsActive() {
		t.Error("stealth inactive right after cast")
	}
}

func TestMageNovaHitsAllEnemies(t *testing.T) {
	ecs, grid := newTestWorld()
	mage := addUnit(ecs, grid, defs.ClassMage, defs.TeamPlayer, 1, hexmap.Hex{Q: 0, R: 0})
	ally := addUnit(ecs, grid, defs.ClassWarrior, defs.TeamPlayer, 1, hexmap.Hex{Q: 1, R: 0})
	e1 := addUnit(ecs, grid, defs.ClassTank, defs.TeamEnemy, 1, hexmap.Hex{Q: 0, R: 1})
	e2 := addUnit(ecs, grid, defs.ClassTank, defs.TeamEnemy, 1, hexmap.Hex{Q: 3, R: 2})
	ecs.Stats[mage].Mana = ecs.Stats[mage].MaxMana

	as := NewAbilitySystem(ecs, event.NewDispatcher())
	as.Update(0.016)

	// Нова бьёт всех врагов вне зависимости от дистанции
	if got := ecs.Stats[e1].Health; math.Abs(got-(120.0-config.MageNovaDamage)) > 1e-9 {
		t.Errorf("enemy 1 health = %f", got)
	}
	if got := ecs.Stats[e2].Health; math.Abs(got-(120.0-config.MageNovaDamage)) > 1e-9 {
		t.Errorf("enemy 2 health = %f", got)
	}
	// Союзник не задет
	if got := ecs.Stats[ally].Health; got != 80.0 {
		t.Errorf("ally health = %f, want 80", got)
	}
	if ecs.Stats[mage].Mana != 0 {
		t.Error("mage mana not reset after nova")
	}
}
