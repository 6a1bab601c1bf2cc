// internal/ui/wave_indicator.go
package ui

import (
	"fmt"

	"go-hex-battler/internal/component"
	"go-hex-battler/internal/config"
	"go-hex-battler/internal/entity"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// WaveIndicator — строка состояния волны в верхнем левом углу.
type WaveIndicator struct {
	X, Y     int
	fontFace font.Face
}

func NewWaveIndicator(x, y int, fontFace font.Face) *WaveIndicator {
	return &WaveIndicator{X: x, Y: y, fontFace: fontFace}
}

func (w *WaveIndicator) Draw(screen *ebiten.Image, ecs *entity.ECS) {
	wave := ecs.Wave
	line := fmt.Sprintf("Wave %d/%d", wave.CurrentWave, config.VictoryWave)
	text.Draw(screen, line, w.fontFace, w.X, w.Y, config.TextLightColor)

	var status string
	switch {
	case ecs.Phase.Phase == component.PhaseWaveBreak:
		status = fmt.Sprintf("Break: %.0fs", ecs.Phase.WaveBreakTimer)
	case wave.WaveActive:
		status = fmt.Sprintf("Incoming: %d", wave.EnemiesRemaining)
	case wave.CurrentWave < config.VictoryWave:
		status = fmt.Sprintf("Next wave: %.1fs", wave.WaveTimer)
	}
	if status != "" {
		text.Draw(screen, status, w.fontFace, w.X, w.Y+16, config.TextLightColor)
	}
}
