// internal/state/game_state.go
package state

import (
	"log"

	"go-hex-battler/internal/app"
	"go-hex-battler/internal/config"
	"go-hex-battler/internal/defs"
	"go-hex-battler/internal/event"
	"go-hex-battler/internal/system"
	"go-hex-battler/internal/ui"
	"go-hex-battler/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Отладочные клавиши: 1-5 — матч соответствующего класса, 6 — крупный
// матч, M — мана, B — бомба, F — ускорение, R — рестарт.
var debugMatchKeys = map[ebiten.Key]defs.UnitClass{
	ebiten.KeyDigit1: defs.ClassWarrior,
	ebiten.KeyDigit2: defs.ClassTank,
	ebiten.KeyDigit3: defs.ClassRanger,
	ebiten.KeyDigit4: defs.ClassAssassin,
	ebiten.KeyDigit5: defs.ClassMage,
}

type GameState struct {
	sm   *StateMachine
	game *app.Game

	gridRenderer *render.BattleGridRenderer
	renderSystem *system.RenderSystem

	waveIndicator *ui.WaveIndicator
	synergyPanel  *ui.SynergyPanel
	battleSummary *ui.BattleSummary

	fontFace font.Face
}

func NewGameState(sm *StateMachine) *GameState {
	gs := &GameState{
		sm:       sm,
		fontFace: basicfont.Face7x13,
	}
	gs.reset()
	return gs
}

// reset пересоздаёт бой целиком: свежий диспетчер, ECS и системы.
func (gs *GameState) reset() {
	dispatcher := event.NewDispatcher()
	gs.game = app.NewGame(0, dispatcher)

	gs.gridRenderer = render.NewBattleGridRenderer(gs.game.Grid, config.ScreenWidth, config.ScreenHeight)
	gs.renderSystem = system.NewRenderSystem(gs.game.ECS, gs.game.Grid, gs.fontFace)

	gs.waveIndicator = ui.NewWaveIndicator(20, 30, gs.fontFace)
	gs.synergyPanel = ui.NewSynergyPanel(20, config.ScreenHeight-140, gs.fontFace)
	gs.battleSummary = ui.NewBattleSummary(gs.fontFace, gs.fontFace)
}

func (gs *GameState) Enter() {
	log.Println("Вход в состояние боя")
}

func (gs *GameState) Update(deltaTime float64) {
	gs.handleInput()
	gs.game.Update(deltaTime)
}

func (gs *GameState) handleInput() {
	for key, class := range debugMatchKeys {
		if inpututil.IsKeyJustPressed(key) {
			gs.game.QueueEvent(event.Event{
				Type: event.MatchMade,
				Data: event.MatchMadeData{Class: class, Count: 3, Combo: 1},
			})
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit6) {
		gs.game.QueueEvent(event.Event{
			Type: event.MatchMade,
			Data: event.MatchMadeData{Class: defs.ClassWarrior, Count: 5, Combo: 2},
		})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		gs.game.QueueEvent(event.Event{
			Type: event.ManaSupplied,
			Data: event.ManaSuppliedData{Amount: 20},
		})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		gs.game.QueueEvent(event.Event{Type: event.BombDetonated})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		if gs.game.SpeedMultiplier > 1 {
			gs.game.SpeedMultiplier = 1.0
		} else {
			gs.game.SpeedMultiplier = 2.0
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		gs.reset()
	}
}

func (gs *GameState) Draw(screen *ebiten.Image) {
	gs.gridRenderer.Draw(screen)
	gs.renderSystem.Draw(screen)
	gs.waveIndicator.Draw(screen, gs.game.ECS)
	gs.synergyPanel.Draw(screen, gs.game.ECS)
	gs.battleSummary.Draw(screen, gs.game.ECS)
}

func (gs *GameState) Exit() {
	log.Println("Выход из состояния боя")
}
