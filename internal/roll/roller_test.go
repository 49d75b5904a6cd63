package roll

import "fmt"

// scriptedRoller returns faces from a fixed script, in order. Tests that
// care about exact totals use it instead of the default random roller.
type scriptedRoller struct {
	faces []int
	next  int
}

func (s *scriptedRoller) Roll(size int) (int, error) {
	if s.next >= len(s.faces) {
		return 0, fmt.Errorf("script exhausted after %d rolls", s.next)
	}
	face := s.faces[s.next]
	s.next++
	return face, nil
}

func (s *scriptedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, 0, count)
	for i := 0; i < count; i++ {
		face, err := s.Roll(size)
		if err != nil {
			return nil, err
		}
		out = append(out, face)
	}
	return out, nil
}
