// internal/system/wave.go
package system

import (
	"log"

	"go-hex-battler/internal/component"
	"go-hex-battler/internal/config"
	"go-hex-battler/internal/defs"
	"go-hex-battler/internal/entity"
	"go-hex-battler/internal/utils"
	"go-hex-battler/pkg/hexmap"
)

// WaveSystem ведёт таймеры волн и выпускает врагов по одному с интервалом.
type WaveSystem struct {
	ecs  *entity.ECS
	grid *hexmap.BattleGrid
	rng  *utils.PRNGService
}

func NewWaveSystem(ecs *entity.ECS, grid *hexmap.BattleGrid, rng *utils.PRNGService) *WaveSystem {
	return &WaveSystem{ecs: ecs, grid: grid, rng: rng}
}

// EnemiesForWave — размер волны с ростом и потолком.
func EnemiesForWave(wave int) int {
	n := config.BaseEnemiesPerWave + config.EnemiesPerWaveGrowth*wave
	if n > config.MaxEnemiesPerWave {
		n = config.MaxEnemiesPerWave
	}
	return n
}

// EnemyRankForWave — со средних волн враги приходят вторым рангом с
// растущей вероятностью.
func EnemyRankForWave(wave int, rng *utils.PRNGService) int {
	switch {
	case wave >= config.LateWaveStart:
		if rng.Chance(config.LateWaveRank2Chance) {
			return 2
		}
	case wave >= config.MidWaveStart:
		if rng.Chance(config.MidWaveRank2Chance) {
			return 2
		}
	}
	return 1
}

func (s *WaveSystem) Update(deltaTime float64) {
	wave := s.ecs.Wave

	// Пока волна выпускает врагов, межволновой таймер заморожен.
	if !wave.WaveActive {
		wave.WaveTimer -= deltaTime
		if wave.WaveTimer <= 0 && wave.CurrentWave < config.VictoryWave {
			s.startWave()
		}
		return
	}

	wave.SpawnDelay -= deltaTime
	if wave.SpawnDelay <= 0 && wave.EnemiesRemaining > 0 {
		// Интервал взводится только после удавшегося спавна: при
		// заполненной половине попытка повторяется на следующем тике.
		if s.spawnEnemy() {
			wave.EnemiesRemaining--
			wave.SpawnDelay = config.SpawnInterval
		}
	}
	if wave.EnemiesRemaining == 0 {
		wave.WaveActive = false
	}
}

// StartNextWave запускает следующую волну немедленно, минуя таймер.
func (s *WaveSystem) StartNextWave() {
	s.startWave()
}

func (s *WaveSystem) startWave() {
	wave := s.ecs.Wave
	wave.CurrentWave++
	wave.EnemiesRemaining = EnemiesForWave(wave.CurrentWave)
	wave.WaveActive = true
	wave.WaveTimer = config.WaveInterval
	wave.SpawnDelay = config.FirstSpawnDelay
	log.Printf("Волна %d: врагов %d", wave.CurrentWave, wave.EnemiesRemaining)
}

// spawnEnemy выпускает одного врага на свободную клетку вражеской половины.
// Если места нет, спавн откладывается до следующего тика.
func (s *WaveSystem) spawnEnemy() bool {
	cell, ok := s.grid.FindEnemySpawnCell()
	if !ok {
		return false
	}

	class := s.rng.ChooseClass()
	rank := EnemyRankForWave(s.ecs.Wave.CurrentWave, s.rng)

	id := s.ecs.NewEntity()
	stats := component.NewUnitStats(class, rank)
	base := stats
	s.ecs.Units[id] = &component.Unit{Class: class, Team: defs.TeamEnemy, Rank: rank}
	s.ecs.Stats[id] = &stats
	s.ecs.BaseStats[id] = &base
	s.ecs.Positions[id] = cell
	s.ecs.Cooldowns[id] = &component.AttackCooldown{}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:  defs.UnitLibrary[class].Visuals.Color,
		Radius: float32(config.HexSize * 0.45),
	}
	s.grid.Place(cell, id)
	return true
}
