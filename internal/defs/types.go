// internal/defs/types.go
package defs

// UnitClass defines the role archetype of a unit.
type UnitClass string

const (
	ClassWarrior  UnitClass = "WARRIOR"
	ClassTank     UnitClass = "TANK"
	ClassRanger   UnitClass = "RANGER"
	ClassAssassin UnitClass = "ASSASSIN"
	ClassMage     UnitClass = "MAGE"
)

// AllClasses перечисляет пять архетипов в стабильном порядке.
var AllClasses = []UnitClass{
	ClassWarrior, ClassTank, ClassRanger, ClassAssassin, ClassMage,
}

// Team — сторона юнита в бою.
type Team int

const (
	TeamPlayer Team = iota
	TeamEnemy
)

// OrbType — тип сферы умения, приходящей с поля головоломки.
type OrbType string

const (
	OrbBuff   OrbType = "BUFF"
	OrbHeal   OrbType = "HEAL"
	OrbMeteor OrbType = "METEOR"
)

// ObstacleKind — тип препятствия, запрашиваемого у поля головоломки.
type ObstacleKind string

const (
	ObstacleIce  ObstacleKind = "ICE"
	ObstacleBomb ObstacleKind = "BOMB"
)
