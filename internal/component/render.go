// internal/component/render.go
package component

import "image/color"

// Renderable содержит данные для отрисовки юнита.
type Renderable struct {
	Color  color.RGBA
	Radius float32
}

// Popup — всплывающий текст над полем (урон, лечение).
type Popup struct {
	Text     string
	X, Y     float64
	Age      float64
	Lifetime float64
	Color    color.RGBA
}

// IsExpired — текст отжил своё и подлежит удалению.
func (p *Popup) IsExpired() bool {
	return p.Age >= p.Lifetime
}
