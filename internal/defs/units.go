// internal/defs/units.go
package defs

import "image/color"

// BaseStats holds the rank-1 combat profile of an archetype.
type BaseStats struct {
	Health       float64
	Attack       float64
	AttackSpeed  float64 // Атак в секунду
	AttackRange  int     // В гексах
	MaxMana      float64
	MoveSpeed    float64 // Шагов в секунду
	Defense      float64
	CritChance   float64
	AbilityPower float64
	ManaRegen    float64
}

// Visuals contains parameters for rendering a unit.
type Visuals struct {
	Color color.RGBA
}

// UnitDefinition holds all the static data for a unit archetype.
type UnitDefinition struct {
	ID      UnitClass
	Name    string
	Stats   BaseStats
	Visuals Visuals
}

// UnitLibrary — библиотека архетипов, по аналогии с библиотеками башен и
// врагов: вся числовая настройка собрана в одном месте.
var UnitLibrary = map[UnitClass]UnitDefinition{
	ClassWarrior: {
		ID:   ClassWarrior,
		Name: "Warrior",
		Stats: BaseStats{
			Health: 80, Attack: 15, AttackSpeed: 1.2, AttackRange: 1,
			MaxMana: 100, MoveSpeed: 1.0, ManaRegen: 1.0,
		},
		Visuals: Visuals{Color: color.RGBA{255, 70, 70, 255}},
	},
	ClassTank: {
		ID:   ClassTank,
		Name: "Tank",
		Stats: BaseStats{
			Health: 120, Attack: 8, AttackSpeed: 0.8, AttackRange: 1,
			MaxMana: 100, MoveSpeed: 1.0, ManaRegen: 1.0,
		},
		Visuals: Visuals{Color: color.RGBA{70, 110, 255, 255}},
	},
	ClassRanger: {
		ID:   ClassRanger,
		Name: "Ranger",
		Stats: BaseStats{
			Health: 90, Attack: 12, AttackSpeed: 1.0, AttackRange: 3,
			MaxMana: 100, MoveSpeed: 1.0, ManaRegen: 1.0,
		},
		Visuals: Visuals{Color: color.RGBA{70, 230, 90, 255}},
	},
	ClassAssassin: {
		ID:   ClassAssassin,
		Name: "Assassin",
		Stats: BaseStats{
			Health: 70, Attack: 18, AttackSpeed: 1.5, AttackRange: 1,
			MaxMana: 100, MoveSpeed: 1.0, ManaRegen: 1.0,
		},
		Visuals: Visuals{Color: color.RGBA{240, 220, 60, 255}},
	},
	ClassMage: {
		ID:   ClassMage,
		Name: "Mage",
		Stats: BaseStats{
			Health: 100, Attack: 10, AttackSpeed: 1.0, AttackRange: 2,
			MaxMana: 80, MoveSpeed: 1.0, ManaRegen: 1.0,
		},
		Visuals: Visuals{Color: color.RGBA{190, 80, 230, 255}},
	},
}

// StarRankMultiplier возвращает множитель здоровья и атаки для ранга 1-3.
func StarRankMultiplier(rank int) float64 {
	switch rank {
	case 2:
		return 1.8
	case 3:
		return 3.0
	default:
		return 1.0
	}
}

// OrbForClass — какой тип сферы даёт крупный матч данного архетипа.
func OrbForClass(class UnitClass) OrbType {
	switch class {
	case ClassWarrior, ClassMage:
		return OrbMeteor
	case ClassRanger:
		return OrbHeal
	default:
		return OrbBuff
	}
}
