// internal/event/types.go
package event

import (
	"go-hex-battler/internal/defs"
	"go-hex-battler/internal/types"
)

// Входящие события — от поля головоломки к бою.
const (
	MatchMade           EventType = "MatchMade"
	UnitSummonRequested EventType = "UnitSummonRequested"
	ManaSupplied        EventType = "ManaSupplied"
	SkillOrbActivated   EventType = "SkillOrbActivated"
	BombDetonated       EventType = "BombDetonated"
)

// Исходящие события — от боя наружу (поле головоломки, звук, оверлеи).
const (
	DamagePopup       EventType = "DamagePopup"
	HealPopup         EventType = "HealPopup"
	AttackSound       EventType = "AttackSound"
	MatchSound        EventType = "MatchSound"
	VictorySound      EventType = "VictorySound"
	DefeatSound       EventType = "DefeatSound"
	WaveCompleted     EventType = "WaveCompleted"
	GameOver          EventType = "GameOver"
	ObstacleRequested EventType = "ObstacleRequested"
	UnitDied          EventType = "UnitDied"
)

// MatchMadeData — матч на поле головоломки: класс камней и размер.
type MatchMadeData struct {
	Class defs.UnitClass
	Count int
	Combo int
}

// UnitSummonRequestedData — призыв юнита игрока заданного ранга.
type UnitSummonRequestedData struct {
	Class defs.UnitClass
	Rank  int
}

// ManaSuppliedData — порция маны всем юнитам игрока.
type ManaSuppliedData struct {
	Amount float64
}

// SkillOrbActivatedData — активация сферы умения.
type SkillOrbActivatedData struct {
	Orb defs.OrbType
}

// BombDetonatedData — взрыв бомбы на поле головоломки, бьёт по юнитам игрока.
// Нулевой урон означает урон по умолчанию.
type BombDetonatedData struct {
	Damage float64
}

// DamagePopupData — число урона над юнитом.
type DamagePopupData struct {
	Target types.EntityID
	Amount float64
	IsCrit bool
}

// HealPopupData — число лечения над юнитом.
type HealPopupData struct {
	Target types.EntityID
	Amount float64
}

// AttackSoundData — звук удара, критический бьёт громче.
type AttackSoundData struct {
	IsCrit bool
}

// MatchSoundData — звук матча с номером комбо.
type MatchSoundData struct {
	Combo int
}

// WaveCompletedData — волна зачищена.
type WaveCompletedData struct {
	Wave int
}

// GameOverData — итог боя.
type GameOverData struct {
	Victory       bool
	WavesSurvived int
}

// ObstacleRequestedData — запрос препятствия на поле головоломки.
type ObstacleRequestedData struct {
	Kind defs.ObstacleKind
}

// UnitDiedData — смерть юнита.
type UnitDiedData struct {
	ID    types.EntityID
	Class defs.UnitClass
	Team  defs.Team
}
