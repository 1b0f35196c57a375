package dice

import (
	"math/rand"
	"sync"

	toolkitdice "github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-crawl/internal/errors"
)

// Roller evaluates expressions against a toolkit dice source. It keeps no
// state of its own; every call parses and rolls fresh.
type Roller struct {
	source toolkitdice.Roller
}

// NewRoller wraps source, falling back to the toolkit's crypto roller
func NewRoller(source toolkitdice.Roller) *Roller {
	if source == nil {
		source = toolkitdice.DefaultRoller
	}
	return &Roller{source: source}
}

// Roll parses notation and returns the summed draws plus modifier
func (r *Roller) Roll(notation string) (int, error) {
	expr, err := Parse(notation)
	if err != nil {
		return 0, err
	}
	return r.RollExpression(expr)
}

// RollExpression rolls an already parsed expression
func (r *Roller) RollExpression(expr Expression) (int, error) {
	if expr.Count < 1 || expr.Sides < 1 {
		return 0, errors.InvalidArgumentf("invalid dice expression %s", expr)
	}

	draws, err := r.source.RollN(expr.Count, expr.Sides)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to roll %s", expr)
	}

	total := expr.Modifier
	for _, d := range draws {
		total += d
	}
	return total, nil
}

// Die rolls a single die with the given number of sides
func (r *Roller) Die(sides int) (int, error) {
	if sides < 1 {
		return 0, errors.InvalidArgumentf("die size must be positive, got %d", sides)
	}
	v, err := r.source.Roll(sides)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to roll d%d", sides)
	}
	return v, nil
}

// Chance rolls d100 and reports whether it landed at or under percent
func (r *Roller) Chance(percent int) (bool, error) {
	if percent <= 0 {
		return false, nil
	}
	if percent >= 100 {
		return true, nil
	}
	v, err := r.Die(100)
	if err != nil {
		return false, err
	}
	return v <= percent, nil
}

// SeededSource is a toolkit dice source over math/rand. The same seed
// replays the same sequence of draws.
type SeededSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

var _ toolkitdice.Roller = (*SeededSource)(nil)

// NewSeededSource creates a deterministic source
func NewSeededSource(seed int64) *SeededSource {
	return &SeededSource{rng: rand.New(rand.NewSource(seed))} // #nosec G404 -- game dice, not secrets
}

// Roll draws one value in [1, size]
func (s *SeededSource) Roll(size int) (int, error) {
	if size < 1 {
		return 0, errors.InvalidArgumentf("die size must be positive, got %d", size)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(size) + 1, nil
}

// RollN draws count values in [1, size]
func (s *SeededSource) RollN(count, size int) ([]int, error) {
	if count < 1 {
		return nil, errors.InvalidArgumentf("dice count must be positive, got %d", count)
	}
	if size < 1 {
		return nil, errors.InvalidArgumentf("die size must be positive, got %d", size)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]int, count)
	for i := range out {
		out[i] = s.rng.Intn(size) + 1
	}
	return out, nil
}
