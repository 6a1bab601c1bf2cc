// internal/component/wave.go
package component

// WaveState — синглтон состояния волн. Таймер считает до старта волны,
// пока она не активна, и до следующего спавна, пока активна.
type WaveState struct {
	CurrentWave      int
	EnemiesRemaining int
	WaveTimer        float64
	SpawnDelay       float64
	WaveActive       bool
}
