// pkg/hexmap/grid.go
package hexmap

import (
	"go-hex-battler/internal/types"
)

// BattleGrid — карта занятости боевого поля: не более одной сущности на гекс.
// Все изменения проходят через Place/Remove/Move, чтобы инвариант
// «один юнит на клетку» нельзя было нарушить снаружи.
type BattleGrid struct {
	units   map[Hex]types.EntityID
	Cols    int
	Rows    int
	HexSize float64
	OriginX float64
	OriginY float64
}

// NewBattleGrid создаёт пустую сетку cols x rows с центром в (originX, originY).
func NewBattleGrid(cols, rows int, hexSize, originX, originY float64) *BattleGrid {
	return &BattleGrid{
		units:   make(map[Hex]types.EntityID),
		Cols:    cols,
		Rows:    rows,
		HexSize: hexSize,
		OriginX: originX,
		OriginY: originY,
	}
}

// IsValid проверяет, лежит ли гекс в границах поля.
func (g *BattleGrid) IsValid(hex Hex) bool {
	return hex.Q >= -g.Cols/2 && hex.Q <= g.Cols/2 &&
		hex.R >= -g.Rows/2 && hex.R <= g.Rows/2
}

// IsOccupied проверяет занятость гекса.
func (g *BattleGrid) IsOccupied(hex Hex) bool {
	_, ok := g.units[hex]
	return ok
}

// UnitAt возвращает сущность на гексе, если она там есть.
func (g *BattleGrid) UnitAt(hex Hex) (types.EntityID, bool) {
	id, ok := g.units[hex]
	return id, ok
}

// Place ставит сущность на гекс. Успех только если гекс в границах и пуст.
func (g *BattleGrid) Place(hex Hex, id types.EntityID) bool {
	if !g.IsValid(hex) || g.IsOccupied(hex) {
		return false
	}
	g.units[hex] = id
	return true
}

// Remove снимает сущность с гекса.
func (g *BattleGrid) Remove(hex Hex) (types.EntityID, bool) {
	id, ok := g.units[hex]
	if ok {
		delete(g.units, hex)
	}
	return id, ok
}

// Move атомарно переносит сущность: при занятом или невалидном месте
// назначения сущность остаётся на исходном гексе.
func (g *BattleGrid) Move(from, to Hex) bool {
	id, ok := g.units[from]
	if !ok {
		return false
	}
	if !g.IsValid(to) || g.IsOccupied(to) {
		return false
	}
	delete(g.units, from)
	g.units[to] = id
	return true
}

// Len возвращает количество занятых гексов.
func (g *BattleGrid) Len() int {
	return len(g.units)
}

// FindEmptyPlayerCell ищет первую свободную клетку на половине игрока
// (r <= 0), построчно. Возвращает false, если половина заполнена.
func (g *BattleGrid) FindEmptyPlayerCell() (Hex, bool) {
	for r := -g.Rows / 2; r <= 0; r++ {
		for q := -g.Cols / 2; q <= g.Cols/2; q++ {
			hex := Hex{Q: q, R: r}
			if g.IsValid(hex) && !g.IsOccupied(hex) {
				return hex, true
			}
		}
	}
	return Hex{}, false
}

// FindEnemySpawnCell ищет свободную клетку на вражеской половине (r >= 1).
func (g *BattleGrid) FindEnemySpawnCell() (Hex, bool) {
	for r := 1; r <= g.Rows/2; r++ {
		for q := -g.Cols / 2; q <= g.Cols/2; q++ {
			hex := Hex{Q: q, R: r}
			if g.IsValid(hex) && !g.IsOccupied(hex) {
				return hex, true
			}
		}
	}
	return Hex{}, false
}

// ToScreen переводит гекс в экранные координаты с учётом центра поля.
func (g *BattleGrid) ToScreen(hex Hex) (x, y float64) {
	x, y = hex.ToPixel(g.HexSize)
	return x + g.OriginX, y + g.OriginY
}

// ScreenToHex переводит экранные координаты в гекс.
func (g *BattleGrid) ScreenToHex(x, y float64) Hex {
	return PixelToHex(x-g.OriginX, y-g.OriginY, g.HexSize)
}
