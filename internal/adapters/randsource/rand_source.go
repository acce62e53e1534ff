package randsource_adapter

import "math/rand"

// MathRandSource backs the market estimator with math/rand. The process
// seeds itself; estimates are meant to vary run to run.
type MathRandSource struct{}

func NewMathRandSource() *MathRandSource {
	return &MathRandSource{}
}

func (s *MathRandSource) Float64() float64 {
	return rand.Float64()
}

func (s *MathRandSource) IntN(n int) int {
	return rand.Intn(n)
}
