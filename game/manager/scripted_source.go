package manager

// ScriptedSource replays fixed values in order, wrapping around when a script
// runs out. Empty scripts yield zero.
type ScriptedSource struct {
	Floats []float64
	Ints   []int

	floatPos int
	intPos   int
}

func (s *ScriptedSource) Float64() float64 {
	if len(s.Floats) == 0 {
		return 0
	}
	v := s.Floats[s.floatPos%len(s.Floats)]
	s.floatPos++
	return v
}

func (s *ScriptedSource) Intn(n int) int {
	if len(s.Ints) == 0 || n <= 0 {
		return 0
	}
	v := s.Ints[s.intPos%len(s.Ints)]
	s.intPos++
	return v % n
}
