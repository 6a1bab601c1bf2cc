// internal/system/game_result.go
package system

import (
	"log"

	"go-hex-battler/internal/component"
	"go-hex-battler/internal/config"
	"go-hex-battler/internal/defs"
	"go-hex-battler/internal/entity"
	"go-hex-battler/internal/event"
)

// GameResultSystem следит за условиями конца боя и зачисткой волн.
// После конца боя состояние исхода замораживается.
type GameResultSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
}

func NewGameResultSystem(ecs *entity.ECS, dispatcher *event.Dispatcher) *GameResultSystem {
	return &GameResultSystem{ecs: ecs, dispatcher: dispatcher}
}

func (s *GameResultSystem) Update(deltaTime float64) {
	result := s.ecs.Result
	if result.GameEnded {
		return
	}

	playerCount := s.ecs.TeamCount(defs.TeamPlayer)
	enemyCount := s.ecs.TeamCount(defs.TeamEnemy)
	wave := s.ecs.Wave

	if playerCount > 0 {
		result.PlayerHadUnits = true
		result.DefenselessTimer = 0
	}

	// Враг дошёл до ряда базы — немедленное поражение.
	for id, unit := range s.ecs.Units {
		if unit.Team != defs.TeamEnemy {
			continue
		}
		if pos, ok := s.ecs.Positions[id]; ok && pos.R <= config.BaseRow {
			s.endGame(false)
			return
		}
	}

	// Игрок потерял последнего юнита после начала волн — немедленное
	// поражение, живы враги или нет.
	if result.PlayerHadUnits && playerCount == 0 && wave.CurrentWave > 0 {
		s.endGame(false)
		return
	}

	// Пустая половина игрока при живых врагах: отсчёт до поражения идёт
	// и тогда, когда игрок ещё никого не призывал.
	if playerCount == 0 && enemyCount > 0 {
		result.DefenselessTimer += deltaTime
		if result.DefenselessTimer >= config.DefenselessTimeout {
			s.endGame(false)
			return
		}
	}

	// Волна зачищена: все заспавнены и все мертвы.
	if !wave.WaveActive && wave.EnemiesRemaining == 0 && enemyCount == 0 &&
		wave.CurrentWave > 0 && wave.CurrentWave > result.WavesCompleted {
		result.WavesCompleted = wave.CurrentWave
		s.dispatcher.Dispatch(event.Event{
			Type: event.WaveCompleted,
			Data: event.WaveCompletedData{Wave: wave.CurrentWave},
		})
		if wave.CurrentWave >= config.VictoryWave {
			s.endGame(true)
			return
		}
		// Перерыв на перестановку, затем короткий отсчёт до следующей волны.
		s.ecs.Phase.Phase = component.PhaseWaveBreak
		s.ecs.Phase.WaveBreakTimer = config.WaveBreakDuration
		wave.WaveTimer = config.FirstWaveDelay
	}
}

func (s *GameResultSystem) endGame(victory bool) {
	result := s.ecs.Result
	result.GameEnded = true
	result.Victory = victory

	survived := s.ecs.Wave.CurrentWave
	if !victory {
		survived--
		if survived < 0 {
			survived = 0
		}
	}

	sound := event.DefeatSound
	if victory {
		sound = event.VictorySound
	}
	s.dispatcher.Dispatch(event.Event{Type: sound})
	s.dispatcher.Dispatch(event.Event{
		Type: event.GameOver,
		Data: event.GameOverData{Victory: victory, WavesSurvived: survived},
	})
	log.Printf("Бой окончен: победа=%v, волн пройдено=%d", victory, survived)
}
