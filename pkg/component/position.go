package component

import (
	"math"
	"strconv"
	"strings"

	"github.com/agentstation/richtext/pkg/errors"
)

// BlockPos is the position of a block NBT component: either LocalPos or WorldPos.
type BlockPos interface {
	// String returns the command-syntax form of the position.
	String() string
	isBlockPos()
}

// LocalPos is a caret-notation position relative to the executor's facing.
type LocalPos struct {
	Left     float64
	Up       float64
	Forwards float64
}

func (LocalPos) isBlockPos() {}

func (p LocalPos) String() string {
	return "^" + formatFloat(p.Left) + " ^" + formatFloat(p.Up) + " ^" + formatFloat(p.Forwards)
}

// Coordinate is one axis of a WorldPos.
type Coordinate struct {
	Value    int
	Relative bool
}

// Absolute returns an absolute coordinate.
func Absolute(v int) Coordinate { return Coordinate{Value: v} }

// Relative returns a tilde-relative coordinate.
func Relative(v int) Coordinate { return Coordinate{Value: v, Relative: true} }

func (c Coordinate) String() string {
	if c.Relative {
		return "~" + strconv.Itoa(c.Value)
	}
	return strconv.Itoa(c.Value)
}

// WorldPos is a world position whose axes may each be relative.
type WorldPos struct {
	X Coordinate
	Y Coordinate
	Z Coordinate
}

func (WorldPos) isBlockPos() {}

func (p WorldPos) String() string {
	return p.X.String() + " " + p.Y.String() + " " + p.Z.String()
}

// ParsePos parses "^l ^u ^f" or "x y z" with optional "~" prefixes.
// Mixing caret and world notation is an error.
func ParsePos(s string) (BlockPos, error) {
	parts := strings.Fields(s)
	if len(parts) != 3 {
		return nil, errors.NewInputParseError("position", s, "expected three coordinates")
	}

	carets := 0
	for _, p := range parts {
		if strings.HasPrefix(p, "^") {
			carets++
		}
	}

	switch carets {
	case 3:
		var vals [3]float64
		for i, p := range parts {
			v, err := parseLocal(p[1:])
			if err != nil {
				return nil, errors.NewInputParseError("position", s, "invalid local coordinate "+strconv.Quote(p))
			}
			vals[i] = v
		}
		return LocalPos{Left: vals[0], Up: vals[1], Forwards: vals[2]}, nil
	case 0:
		var coords [3]Coordinate
		for i, p := range parts {
			c, err := parseCoordinate(p)
			if err != nil {
				return nil, errors.NewInputParseError("position", s, "invalid world coordinate "+strconv.Quote(p))
			}
			coords[i] = c
		}
		return WorldPos{X: coords[0], Y: coords[1], Z: coords[2]}, nil
	default:
		return nil, errors.NewInputParseError("position", s, "cannot mix local and world coordinates")
	}
}

// parseLocal accepts finite decimal numbers only. ParseFloat alone would also
// take NaN, Inf and hex floats.
func parseLocal(s string) (float64, error) {
	if strings.ContainsAny(s, "xXpP") {
		return 0, strconv.ErrSyntax
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, strconv.ErrRange
	}
	return v, nil
}

func parseCoordinate(s string) (Coordinate, error) {
	rest, relative := strings.CutPrefix(s, "~")
	if relative && rest == "" {
		return Relative(0), nil
	}
	v, err := strconv.Atoi(rest)
	if err != nil {
		return Coordinate{}, err
	}
	return Coordinate{Value: v, Relative: relative}, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
