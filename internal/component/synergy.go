// internal/component/synergy.go
package component

import "go-hex-battler/internal/defs"

// SynergyLevel — уровень классовой синергии по числу юнитов игрока.
type SynergyLevel int

const (
	SynergyNone SynergyLevel = iota
	SynergyBronze
	SynergySilver
	SynergyGold
)

// SynergyLevelFromCount: 0-1 нет, 2-3 бронза, 4-5 серебро, 6+ золото.
func SynergyLevelFromCount(count int) SynergyLevel {
	switch {
	case count >= 6:
		return SynergyGold
	case count >= 4:
		return SynergySilver
	case count >= 2:
		return SynergyBronze
	default:
		return SynergyNone
	}
}

// BonusMultiplier — общий множитель уровня, из него выводятся классовые
// формулы.
func (l SynergyLevel) BonusMultiplier() float64 {
	switch l {
	case SynergyBronze:
		return 1.15
	case SynergySilver:
		return 1.30
	case SynergyGold:
		return 1.50
	default:
		return 1.0
	}
}

func (l SynergyLevel) String() string {
	switch l {
	case SynergyBronze:
		return "Bronze"
	case SynergySilver:
		return "Silver"
	case SynergyGold:
		return "Gold"
	default:
		return "None"
	}
}

// ActiveSynergies — синглтон текущих уровней синергии по классам.
type ActiveSynergies struct {
	Levels map[defs.UnitClass]SynergyLevel
}

// NewActiveSynergies создаёт пустой набор уровней.
func NewActiveSynergies() *ActiveSynergies {
	return &ActiveSynergies{Levels: make(map[defs.UnitClass]SynergyLevel)}
}
