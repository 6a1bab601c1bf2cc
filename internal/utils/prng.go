// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"

	"go-hex-battler/internal/defs"
)

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Chance возвращает true с вероятностью p (0 — никогда, 1 — всегда).
func (s *PRNGService) Chance(p float64) bool {
	return s.rng.Float64() < p
}

// ChooseClass выбирает случайный архетип юнита.
func (s *PRNGService) ChooseClass() defs.UnitClass {
	return defs.AllClasses[s.Intn(len(defs.AllClasses))]
}
