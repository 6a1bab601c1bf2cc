// internal/state/menu_state.go
package state

import (
	"go-hex-battler/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// MenuState — заставка перед боем.
type MenuState struct {
	sm *StateMachine
}

func NewMenuState(sm *StateMachine) *MenuState {
	return &MenuState{sm: sm}
}

func (ms *MenuState) Enter() {}

func (ms *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		ms.sm.SetState(NewGameState(ms.sm))
	}
}

func (ms *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	text.Draw(screen, "HEX BATTLER", basicfont.Face7x13,
		config.ScreenWidth/2-44, config.ScreenHeight/2-10, config.TextLightColor)
	text.Draw(screen, "Press SPACE to start", basicfont.Face7x13,
		config.ScreenWidth/2-70, config.ScreenHeight/2+14, config.TextLightColor)
}

func (ms *MenuState) Exit() {}
