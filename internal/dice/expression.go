// Package dice parses and rolls NdS+M dice expressions for damage, healing,
// initiative and percentile checks.
package dice

import (
	goerrors "errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-crawl/internal/errors"
)

// ErrParse is the sentinel matched by errors.Is for malformed expressions.
// It carries no code so only Parse failures match it.
var ErrParse = goerrors.New("malformed dice expression")

var expressionRegex = regexp.MustCompile(`^(\d+)d(\d+)(?:([+-])(\d+))?$`)

// Expression is a parsed NdS+M triple
type Expression struct {
	Count    int
	Sides    int
	Modifier int
}

// Parse reads expressions like "1d6", "2d8+3" or "3d4-1". Case and
// surrounding or inner whitespace are ignored.
func Parse(notation string) (Expression, error) {
	normalized := strings.ToLower(strings.Join(strings.Fields(notation), ""))

	matches := expressionRegex.FindStringSubmatch(normalized)
	if matches == nil {
		return Expression{}, parseError(notation, "expected format NdS, NdS+M or NdS-M")
	}

	count, err := strconv.Atoi(matches[1])
	if err != nil {
		return Expression{}, parseError(notation, "dice count out of range")
	}
	sides, err := strconv.Atoi(matches[2])
	if err != nil {
		return Expression{}, parseError(notation, "die size out of range")
	}
	if count < 1 || sides < 1 {
		return Expression{}, parseError(notation, "dice count and size must be positive")
	}

	modifier := 0
	if matches[4] != "" {
		modifier, err = strconv.Atoi(matches[4])
		if err != nil {
			return Expression{}, parseError(notation, "modifier out of range")
		}
		if matches[3] == "-" {
			modifier = -modifier
		}
	}

	return Expression{Count: count, Sides: sides, Modifier: modifier}, nil
}

// MustParse is Parse for static tables known to be valid
func MustParse(notation string) Expression {
	expr, err := Parse(notation)
	if err != nil {
		panic(err)
	}
	return expr
}

func parseError(notation, reason string) error {
	return errors.WrapWithCode(ErrParse, errors.CodeInvalidArgument,
		fmt.Sprintf("invalid dice expression %q: %s", notation, reason)).
		WithMeta("expression", notation)
}

// Min is the lowest possible total
func (e Expression) Min() int {
	return e.Count + e.Modifier
}

// Max is the highest possible total
func (e Expression) Max() int {
	return e.Count*e.Sides + e.Modifier
}

// Average is the expected total
func (e Expression) Average() float64 {
	return float64(e.Count)*float64(e.Sides+1)/2 + float64(e.Modifier)
}

// String renders the canonical notation
func (e Expression) String() string {
	switch {
	case e.Modifier > 0:
		return fmt.Sprintf("%dd%d+%d", e.Count, e.Sides, e.Modifier)
	case e.Modifier < 0:
		return fmt.Sprintf("%dd%d-%d", e.Count, e.Sides, -e.Modifier)
	default:
		return fmt.Sprintf("%dd%d", e.Count, e.Sides)
	}
}
