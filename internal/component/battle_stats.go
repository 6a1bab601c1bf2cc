// internal/component/battle_stats.go
package component

import "go-hex-battler/internal/defs"

// UnitRecord — накопленный вклад одного юнита игрока за бой.
type UnitRecord struct {
	Class       defs.UnitClass
	DamageDealt float64
	Kills       int
}

// MVPScore — очки для выбора лучшего юнита: убийства весят по 100.
func (r UnitRecord) MVPScore() float64 {
	return float64(r.Kills)*100.0 + r.DamageDealt
}

// BattleStats — синглтон статистики боя.
type BattleStats struct {
	TotalDamageDealt float64 // Урон по врагам
	TotalDamageTaken float64 // Урон по юнитам игрока
	EnemiesKilled    int
	MatchesMade      int
	HighestCombo     int
	Records          map[uint64]*UnitRecord
	ThreatByClass    map[defs.UnitClass]float64 // Урон врагов по классам
}

// NewBattleStats создаёт пустую статистику.
func NewBattleStats() *BattleStats {
	return &BattleStats{
		Records:       make(map[uint64]*UnitRecord),
		ThreatByClass: make(map[defs.UnitClass]float64),
	}
}

// record возвращает запись юнита, создавая её при первом обращении.
func (s *BattleStats) record(id uint64, class defs.UnitClass) *UnitRecord {
	rec, ok := s.Records[id]
	if !ok {
		rec = &UnitRecord{Class: class}
		s.Records[id] = rec
	}
	return rec
}

// RecordEnemyDamage учитывает урон юнита игрока по врагу.
func (s *BattleStats) RecordEnemyDamage(attacker uint64, class defs.UnitClass, amount float64) {
	s.TotalDamageDealt += amount
	s.record(attacker, class).DamageDealt += amount
}

// RecordAllyDamage учитывает урон, полученный юнитом игрока.
func (s *BattleStats) RecordAllyDamage(amount float64) {
	s.TotalDamageTaken += amount
}

// RecordThreat учитывает урон, нанесённый вражеским классом юнитам игрока.
func (s *BattleStats) RecordThreat(class defs.UnitClass, amount float64) {
	s.ThreatByClass[class] += amount
}

// RecordAllyKill учитывает убийство врага юнитом игрока.
func (s *BattleStats) RecordAllyKill(attacker uint64, class defs.UnitClass) {
	s.EnemiesKilled++
	s.record(attacker, class).Kills++
}

// RecordMatch учитывает матч на поле головоломки и обновляет рекорд комбо.
func (s *BattleStats) RecordMatch(combo int) {
	s.MatchesMade++
	if combo > s.HighestCombo {
		s.HighestCombo = combo
	}
}

// MVP возвращает юнита с наибольшим счётом и признак, что записи есть.
func (s *BattleStats) MVP() (uint64, *UnitRecord, bool) {
	var bestID uint64
	var best *UnitRecord
	for id, rec := range s.Records {
		if best == nil || rec.MVPScore() > best.MVPScore() ||
			(rec.MVPScore() == best.MVPScore() && id < bestID) {
			bestID, best = id, rec
		}
	}
	return bestID, best, best != nil
}

// MostDangerousEnemy — вражеский класс, нанёсший больше всего урона.
func (s *BattleStats) MostDangerousEnemy() (defs.UnitClass, float64, bool) {
	var bestClass defs.UnitClass
	best := -1.0
	for class, amount := range s.ThreatByClass {
		if amount > best || (amount == best && class < bestClass) {
			bestClass, best = class, amount
		}
	}
	return bestClass, best, best >= 0
}

// Reset очищает статистику для нового боя.
func (s *BattleStats) Reset() {
	*s = BattleStats{
		Records:       make(map[uint64]*UnitRecord),
		ThreatByClass: make(map[defs.UnitClass]float64),
	}
}
