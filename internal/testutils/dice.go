package testutils

import (
	toolkitdice "github.com/KirkDiggler/rpg-toolkit/dice"
)

// ScriptedSource is a dice source that returns Values in order and then
// repeats the last one. Values above a die's size are capped at the size.
// An empty script always rolls 1.
type ScriptedSource struct {
	Values []int
	calls  int
}

var _ toolkitdice.Roller = (*ScriptedSource)(nil)

// NewScriptedSource creates a scripted source
func NewScriptedSource(values ...int) *ScriptedSource {
	return &ScriptedSource{Values: values}
}

// MaxSource rolls the highest face every time
func MaxSource() *ScriptedSource {
	return NewScriptedSource(1 << 30)
}

// Calls returns how many draws were made
func (s *ScriptedSource) Calls() int {
	return s.calls
}

func (s *ScriptedSource) next(size int) int {
	v := 1
	switch {
	case s.calls < len(s.Values):
		v = s.Values[s.calls]
	case len(s.Values) > 0:
		v = s.Values[len(s.Values)-1]
	}
	s.calls++
	return max(1, min(v, size))
}

// Roll implements dice.Roller
func (s *ScriptedSource) Roll(size int) (int, error) {
	return s.next(size), nil
}

// RollN implements dice.Roller
func (s *ScriptedSource) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i] = s.next(size)
	}
	return out, nil
}
