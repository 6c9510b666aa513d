package port

// RandomSource абстрагирует случайность (цвет заливки, выбор лица),
// чтобы тесты могли подставлять детерминированные последовательности.
type RandomSource interface {
	// Intn возвращает равномерное значение в [0, n).
	Intn(n int) int
}
