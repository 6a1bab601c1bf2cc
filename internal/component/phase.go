// internal/component/phase.go
package component

// BattlePhase — фаза боевого цикла.
type BattlePhase int

const (
	// PhaseFighting — обычный тик симуляции.
	PhaseFighting BattlePhase = iota
	// PhaseWaveBreak — пауза на перестановку после зачистки волны.
	PhaseWaveBreak
)

// PhaseState — синглтон текущей фазы и её таймера.
type PhaseState struct {
	Phase          BattlePhase
	WaveBreakTimer float64
}
