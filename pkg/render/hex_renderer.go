// pkg/render/hex_renderer.go
package render

import (
	"image/color"
	"math"

	"go-hex-battler/internal/config"
	"go-hex-battler/pkg/hexmap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// BattleGridRenderer рисует боевое поле: заливку половин и контуры гексов.
// Поле статично, поэтому картинка рендерится один раз в NewBattleGridRenderer.
type BattleGridRenderer struct {
	grid     *hexmap.BattleGrid
	fillImg  *ebiten.Image
	gridImg  *ebiten.Image
	fillVs   []ebiten.Vertex
	fillIs   []uint16
}

func NewBattleGridRenderer(grid *hexmap.BattleGrid, screenWidth, screenHeight int) *BattleGridRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	r := &BattleGridRenderer{
		grid:    grid,
		fillImg: fillImg,
	}
	r.gridImg = ebiten.NewImage(screenWidth, screenHeight)
	r.prerender()
	return r
}

// hexCorner — угол гекса с острой вершиной сверху (pointy-top).
func hexCorner(cx, cy, size float64, i int) (float64, float64) {
	angle := math.Pi / 180 * (60*float64(i) - 30)
	return cx + size*math.Cos(angle), cy + size*math.Sin(angle)
}

func (r *BattleGridRenderer) prerender() {
	r.gridImg.Fill(config.BackgroundColor)

	for rr := -r.grid.Rows / 2; rr <= r.grid.Rows/2; rr++ {
		for q := -r.grid.Cols / 2; q <= r.grid.Cols/2; q++ {
			hex := hexmap.Hex{Q: q, R: rr}
			if !r.grid.IsValid(hex) {
				continue
			}
			fill := config.PlayerHalfColor
			if rr >= 1 {
				fill = config.EnemyHalfColor
			}
			r.fillHex(hex, fill)
		}
	}

	// Контуры поверх заливки
	for rr := -r.grid.Rows / 2; rr <= r.grid.Rows/2; rr++ {
		for q := -r.grid.Cols / 2; q <= r.grid.Cols/2; q++ {
			hex := hexmap.Hex{Q: q, R: rr}
			if !r.grid.IsValid(hex) {
				continue
			}
			r.strokeHex(hex, config.GridLineColor)
		}
	}
}

// fillHex закрашивает гекс веером из шести треугольников.
func (r *BattleGridRenderer) fillHex(hex hexmap.Hex, clr color.RGBA) {
	cx, cy := r.grid.ToScreen(hex)
	size := r.grid.HexSize * 0.96

	cr := float32(clr.R) / 255
	cg := float32(clr.G) / 255
	cb := float32(clr.B) / 255
	ca := float32(clr.A) / 255

	r.fillVs = r.fillVs[:0]
	r.fillIs = r.fillIs[:0]

	r.fillVs = append(r.fillVs, ebiten.Vertex{
		DstX: float32(cx), DstY: float32(cy),
		SrcX: 0, SrcY: 0,
		ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
	})
	for i := 0; i < 6; i++ {
		x, y := hexCorner(cx, cy, size, i)
		r.fillVs = append(r.fillVs, ebiten.Vertex{
			DstX: float32(x), DstY: float32(y),
			SrcX: 0, SrcY: 0,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		})
	}
	for i := 0; i < 6; i++ {
		next := uint16(i + 2)
		if i == 5 {
			next = 1
		}
		r.fillIs = append(r.fillIs, 0, uint16(i+1), next)
	}

	r.gridImg.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{})
}

func (r *BattleGridRenderer) strokeHex(hex hexmap.Hex, clr color.RGBA) {
	cx, cy := r.grid.ToScreen(hex)
	size := r.grid.HexSize * 0.96
	for i := 0; i < 6; i++ {
		x1, y1 := hexCorner(cx, cy, size, i)
		x2, y2 := hexCorner(cx, cy, size, (i+1)%6)
		vector.StrokeLine(r.gridImg, float32(x1), float32(y1), float32(x2), float32(y2), 1.5, clr, true)
	}
}

// Draw кладёт предрендеренное поле на экран.
func (r *BattleGridRenderer) Draw(screen *ebiten.Image) {
	screen.DrawImage(r.gridImg, nil)
}
