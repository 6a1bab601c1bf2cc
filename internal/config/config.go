// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 800
	HexSize      = 42.0
	BattleCols   = 7
	BattleRows   = 4
	MaxDeltaTime = 0.06

	// Позиция центра боевого поля на экране
	GridOriginX = ScreenWidth / 2
	GridOriginY = ScreenHeight/2 - 40

	// Тайминги волн
	FirstWaveDelay    = 3.0  // Пауза до первой волны
	WaveInterval      = 10.0 // Пауза между волнами после старта
	FirstSpawnDelay   = 0.5
	SpawnInterval     = 0.8
	WaveBreakDuration = 30.0 // Фаза перестановки после зачистки волны

	// Масштабирование волн
	BaseEnemiesPerWave   = 3
	EnemiesPerWaveGrowth = 2
	MaxEnemiesPerWave    = 12
	VictoryWave          = 10

	// Шансы второго ранга у врагов по волнам
	MidWaveRank2Chance  = 0.3 // Волны 3-5
	LateWaveRank2Chance = 0.5 // Волны 6+
	MidWaveStart        = 3
	LateWaveStart       = 6

	// Боевые формулы
	CritMultiplier   = 1.5
	MaxDamageCut     = 0.8 // Потолок снижения урона защитой
	MinDamage        = 1.0
	RageDuration     = 5.0
	RageAttackBonus  = 1.2
	SnipeMultiplier  = 2.0
	StealthDuration  = 3.0
	TankHealPercent  = 0.2
	MageNovaDamage   = 15.0

	// Запросы препятствий на поле головоломки
	BombRequestWave   = 5
	BombRequestChance = 0.15
	IceRequestWave    = 3
	IceRequestChance  = 0.10

	// Сферы умений и события моста
	OrbAttackBonus  = 1.2
	OrbHealPercent  = 0.3
	OrbMeteorDamage = 50.0
	BombBlastDamage = 10.0
	RankUpMatchSize = 5 // Матч такого размера даёт юнита 2 ранга
	OrbMatchSize    = 4 // Матч такого размера дополнительно даёт сферу

	// Поражение
	DefenselessTimeout = 5.0
	BaseRow            = -(BattleRows / 2) // Ряд базы игрока

	// Слияние юнитов
	MaxStarRank = 3
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	PlayerHalfColor = color.RGBA{40, 60, 80, 120}
	EnemyHalfColor  = color.RGBA{80, 40, 40, 120}
	GridLineColor   = color.RGBA{70, 100, 120, 220}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	PanelColor      = color.RGBA{15, 15, 25, 200}
	HealthBackColor = color.RGBA{50, 50, 50, 255}
	HealthGoodColor = color.RGBA{50, 230, 50, 255}
	HealthMidColor  = color.RGBA{230, 230, 50, 255}
	HealthLowColor  = color.RGBA{230, 50, 50, 255}
	ManaBarColor    = color.RGBA{70, 120, 230, 255}
	CritPopupColor  = color.RGBA{255, 215, 0, 255}
	HealPopupColor  = color.RGBA{50, 230, 50, 255}
	StrokeColor     = color.RGBA{255, 255, 255, 255}
)
