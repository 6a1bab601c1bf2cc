// internal/component/buff.go
package component

// Баффы живут в отдельных картах ECS, как эффекты замедления и отравления:
// наличие записи означает активный эффект, у каждого варианта своя логика
// тика либо потребления.

// RageBuff — атака x1.2 на ограниченное время.
type RageBuff struct {
	Remaining float64
}

// Tick уменьшает остаток времени.
func (b *RageBuff) Tick(dt float64) {
	b.Remaining -= dt
	if b.Remaining < 0 {
		b.Remaining = 0
	}
}

// IsExpired сообщает, истёк ли бафф.
func (b *RageBuff) IsExpired() bool {
	return b.Remaining <= 0
}

// SnipeBuff — следующая атака наносит двойной урон. Не тикает по времени,
// снимается только потреблением при атаке.
type SnipeBuff struct {
	Consumed bool
}

// StealthBuff — юнит нельзя выбрать целью, пока остаток больше нуля.
type StealthBuff struct {
	Remaining float64
}

// Tick уменьшает остаток времени.
func (b *StealthBuff) Tick(dt float64) {
	b.Remaining -= dt
	if b.Remaining < 0 {
		b.Remaining = 0
	}
}

// IsExpired сообщает, истёк ли бафф.
func (b *StealthBuff) IsExpired() bool {
	return b.Remaining <= 0
}

// IsActive — скрытность действует, пока время не вышло.
func (b *StealthBuff) IsActive() bool {
	return b.Remaining > 0
}
