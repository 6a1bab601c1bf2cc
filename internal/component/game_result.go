// internal/component/game_result.go
package component

// GameResult — синглтон исхода боя. После GameEnded остальные поля
// замораживаются.
type GameResult struct {
	GameEnded      bool
	Victory        bool
	WavesCompleted int

	// PlayerHadUnits взводится при первом появлении юнита игрока: до этого
	// пустое поле не считается беззащитным.
	PlayerHadUnits   bool
	DefenselessTimer float64
}
