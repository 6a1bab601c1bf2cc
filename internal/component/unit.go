// internal/component/unit.go
package component

import (
	"go-hex-battler/internal/config"
	"go-hex-battler/internal/defs"
)

// Unit — боевая единица: сторона, архетип и звёздный ранг.
type Unit struct {
	Class defs.UnitClass
	Team  defs.Team
	Rank  int
}

// UnitStats — живые боевые характеристики юнита.
type UnitStats struct {
	Health       float64
	MaxHealth    float64
	Attack       float64
	AttackSpeed  float64
	AttackRange  int
	Mana         float64
	MaxMana      float64
	MoveSpeed    float64
	Defense      float64
	CritChance   float64
	AbilityPower float64
	ManaRegen    float64
}

// NewUnitStats собирает характеристики архетипа с учётом звёздного ранга.
// Ранг масштабирует только здоровье и атаку.
func NewUnitStats(class defs.UnitClass, rank int) UnitStats {
	def := defs.UnitLibrary[class]
	mult := defs.StarRankMultiplier(rank)
	return UnitStats{
		Health:       def.Stats.Health * mult,
		MaxHealth:    def.Stats.Health * mult,
		Attack:       def.Stats.Attack * mult,
		AttackSpeed:  def.Stats.AttackSpeed,
		AttackRange:  def.Stats.AttackRange,
		Mana:         0,
		MaxMana:      def.Stats.MaxMana,
		MoveSpeed:    def.Stats.MoveSpeed,
		Defense:      def.Stats.Defense,
		CritChance:   def.Stats.CritChance,
		AbilityPower: def.Stats.AbilityPower,
		ManaRegen:    def.Stats.ManaRegen,
	}
}

// IsDead — юнит мёртв при нулевом здоровье.
func (s *UnitStats) IsDead() bool {
	return s.Health <= 0
}

// DamageReduction переводит защиту в долю снижения урона: 50 защиты — 50%,
// потолок 80%.
func DamageReduction(defense float64) float64 {
	reduction := defense / 100.0
	if reduction > config.MaxDamageCut {
		return config.MaxDamageCut
	}
	return reduction
}

// TakeDamage наносит урон с учётом защиты. Итоговый урон не меньше 1,
// здоровье не уходит ниже нуля. Возвращает фактически снятое здоровье.
func (s *UnitStats) TakeDamage(amount float64) float64 {
	reduced := amount * (1.0 - DamageReduction(s.Defense))
	if reduced < config.MinDamage {
		reduced = config.MinDamage
	}
	before := s.Health
	s.Health -= reduced
	if s.Health < 0 {
		s.Health = 0
	}
	return before - s.Health
}

// Heal восстанавливает здоровье с ограничением по максимуму.
// Возвращает фактически восстановленное количество.
func (s *UnitStats) Heal(amount float64) float64 {
	before := s.Health
	s.Health += amount
	if s.Health > s.MaxHealth {
		s.Health = s.MaxHealth
	}
	return s.Health - before
}

// GainMana добавляет ману с ограничением по максимуму.
func (s *UnitStats) GainMana(amount float64) {
	s.Mana += amount
	if s.Mana > s.MaxMana {
		s.Mana = s.MaxMana
	}
}

// CanCast — способность доступна при полной мане.
func (s *UnitStats) CanCast() bool {
	return s.Mana >= s.MaxMana
}

// AttackCooldown — секунды до следующей разрешённой атаки.
type AttackCooldown struct {
	Remaining float64
}

// MoveCooldown — секунды до следующего шага по сетке.
type MoveCooldown struct {
	Remaining float64
}
