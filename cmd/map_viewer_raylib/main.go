// cmd/map_viewer_raylib/main.go
package main

import (
	"go-hex-battler/internal/config"
	"go-hex-battler/pkg/hexmap"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Просмотрщик боевого поля в 3D: половины игрока и врага, ряд базы.
// Q/E — вращение, колесо мыши — наклон камеры.

// Vector3Lerp выполняет линейную интерполяцию между двумя векторами
func Vector3Lerp(v1, v2 rl.Vector3, t float32) rl.Vector3 {
	return rl.Vector3Add(v1, rl.Vector3Scale(rl.Vector3Subtract(v2, v1), t))
}

func main() {
	const screenWidth = 1280
	const screenHeight = 720
	backgroundColor := rl.NewColor(10, 10, 20, 255)

	playerColor := rl.NewColor(40, 60, 80, 255)
	enemyColor := rl.NewColor(80, 40, 40, 255)
	baseRowColor := rl.NewColor(40, 80, 60, 255)

	rl.InitWindow(screenWidth, screenHeight, "Battle Grid Viewer | Q/E - Rotate, Mouse Wheel - Change Angle")
	rl.SetTargetFPS(60)

	camera := rl.Camera3D{}
	camera.Up = rl.NewVector3(0, 1, 0)
	camera.Projection = rl.CameraPerspective

	isoPos := rl.NewVector3(60, 120, 120)
	topDownPos := rl.NewVector3(0, 260, 0.1)
	target := rl.NewVector3(0, 0, 0)
	isoFovy := float32(55.0)
	topDownFovy := float32(35.0)
	cameraAngleT := float32(0.5)

	grid := hexmap.NewBattleGrid(config.BattleCols, config.BattleRows, 1.0, 0, 0)
	const hexSizeRender = 10.0

	for !rl.WindowShouldClose() {
		if rl.IsKeyDown(rl.KeyQ) {
			isoPos = rl.Vector3RotateByAxisAngle(isoPos, camera.Up, -0.02)
		}
		if rl.IsKeyDown(rl.KeyE) {
			isoPos = rl.Vector3RotateByAxisAngle(isoPos, camera.Up, 0.02)
		}

		wheel := rl.GetMouseWheelMove()
		if wheel != 0 {
			cameraAngleT += wheel * 0.05
			if cameraAngleT > 0.99 {
				cameraAngleT = 0.99
			} else if cameraAngleT < 0.0 {
				cameraAngleT = 0.0
			}
		}

		camera.Position = Vector3Lerp(isoPos, topDownPos, cameraAngleT)
		camera.Target = target
		camera.Fovy = isoFovy + (topDownFovy-isoFovy)*cameraAngleT

		rl.BeginDrawing()
		rl.ClearBackground(backgroundColor)
		rl.BeginMode3D(camera)

		for r := -grid.Rows / 2; r <= grid.Rows/2; r++ {
			for q := -grid.Cols / 2; q <= grid.Cols/2; q++ {
				hex := hexmap.Hex{Q: q, R: r}
				if !grid.IsValid(hex) {
					continue
				}
				x, z := hex.ToPixel(hexSizeRender)

				clr := playerColor
				height := float32(1.0)
				switch {
				case r <= config.BaseRow:
					clr = baseRowColor
					height = 2.0
				case r >= 1:
					clr = enemyColor
				}

				// Цилиндр с шестью гранями — гексагональная призма
				pos := rl.NewVector3(float32(x), 0, float32(z))
				rl.DrawCylinder(pos, hexSizeRender*0.92, hexSizeRender*0.92, height, 6, clr)
				rl.DrawCylinderWires(pos, hexSizeRender*0.92, hexSizeRender*0.92, height, 6, rl.NewColor(70, 100, 120, 255))
			}
		}

		rl.EndMode3D()
		rl.DrawFPS(10, 10)
		rl.DrawText("Player half: bottom rows, enemy half: top rows", 10, 40, 18, rl.RayWhite)
		rl.EndDrawing()
	}

	rl.CloseWindow()
}
