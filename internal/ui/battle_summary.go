// internal/ui/battle_summary.go
package ui

import (
	"fmt"

	"go-hex-battler/internal/config"
	"go-hex-battler/internal/defs"
	"go-hex-battler/internal/entity"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// BattleSummary — итоговая панель после конца боя: исход, волны,
// статистика и лучший юнит.
type BattleSummary struct {
	fontFace      font.Face
	titleFontFace font.Face
}

func NewBattleSummary(fontFace, titleFontFace font.Face) *BattleSummary {
	return &BattleSummary{fontFace: fontFace, titleFontFace: titleFontFace}
}

func (b *BattleSummary) Draw(screen *ebiten.Image, ecs *entity.ECS) {
	if !ecs.Result.GameEnded {
		return
	}

	const panelW, panelH = 360, 240
	left := float32(config.ScreenWidth-panelW) / 2
	top := float32(config.ScreenHeight-panelH) / 2
	vector.DrawFilledRect(screen, left, top, panelW, panelH, config.PanelColor, false)
	vector.StrokeRect(screen, left, top, panelW, panelH, 2, config.GridLineColor, false)

	title := "DEFEAT"
	titleColor := config.HealthLowColor
	if ecs.Result.Victory {
		title = "VICTORY"
		titleColor = config.HealthGoodColor
	}

	x := int(left) + 24
	y := int(top) + 36
	text.Draw(screen, title, b.titleFontFace, x, y, titleColor)

	stats := ecs.Battle
	waves := ecs.Result.WavesCompleted
	if !ecs.Result.Victory && ecs.Wave.CurrentWave > 0 {
		waves = ecs.Wave.CurrentWave - 1
	}
	lines := []string{
		fmt.Sprintf("Waves survived: %d", waves),
		fmt.Sprintf("Enemies killed: %d", stats.EnemiesKilled),
		fmt.Sprintf("Damage dealt: %.0f", stats.TotalDamageDealt),
		fmt.Sprintf("Damage taken: %.0f", stats.TotalDamageTaken),
		fmt.Sprintf("Matches: %d (best combo %d)", stats.MatchesMade, stats.HighestCombo),
	}
	y += 28
	for _, line := range lines {
		text.Draw(screen, line, b.fontFace, x, y, config.TextLightColor)
		y += 20
	}

	if _, mvp, ok := stats.MVP(); ok {
		line := fmt.Sprintf("MVP: %s (%d kills, %.0f dmg)",
			defs.UnitLibrary[mvp.Class].Name, mvp.Kills, mvp.DamageDealt)
		text.Draw(screen, line, b.fontFace, x, y, config.CritPopupColor)
		y += 20
	}
	if class, amount, ok := stats.MostDangerousEnemy(); ok {
		line := fmt.Sprintf("Deadliest foe: %s (%.0f dmg)", defs.UnitLibrary[class].Name, amount)
		text.Draw(screen, line, b.fontFace, x, y, config.HealthLowColor)
		y += 20
	}

	text.Draw(screen, "Press R to restart", b.fontFace, x, y+8, config.TextLightColor)
}
