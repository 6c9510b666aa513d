package app

import (
	"math/rand"
	"time"

	"github.com/randomtask2000/Kohya-prep/internal/domain/port"
)

// mathRandom реализует RandomSource поверх math/rand.
type mathRandom struct {
	r *rand.Rand
}

// NewMathRandom возвращает источник, засеянный текущим временем.
func NewMathRandom() port.RandomSource {
	return &mathRandom{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (m *mathRandom) Intn(n int) int { return m.r.Intn(n) }
