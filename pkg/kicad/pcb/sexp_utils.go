package pcb

import (
	"fmt"
	"strconv"

	"github.com/OpenTraceLab/OpenTraceProbe/pkg/kicad/sexp/kicadsexp"
)

// S-expression navigation helpers

// items returns the elements of a list, or nil for an atom.
func items(s kicadsexp.Sexp) []kicadsexp.Sexp {
	if l, ok := s.(*kicadsexp.List); ok {
		return l.Elements()
	}
	return nil
}

// findNode returns the first child list whose head symbol is key.
// Example: findNode(fp, "at") finds (at 100 50) in a footprint.
func findNode(s kicadsexp.Sexp, key string) (kicadsexp.Sexp, bool) {
	for _, item := range items(s) {
		if nodeIs(item, key) {
			return item, true
		}
	}
	return nil, false
}

// findAllNodes returns every child list whose head symbol is key.
func findAllNodes(s kicadsexp.Sexp, key string) []kicadsexp.Sexp {
	var results []kicadsexp.Sexp
	for _, item := range items(s) {
		if nodeIs(item, key) {
			results = append(results, item)
		}
	}
	return results
}

func nodeIs(s kicadsexp.Sexp, key string) bool {
	if s == nil || s.IsLeaf() {
		return false
	}
	sym, ok := s.Head().(kicadsexp.Symbol)
	return ok && string(sym) == key
}

// getListItems returns all items in a list except the head symbol.
// Example: getListItems((layers "F.Cu" "B.Cu")) returns [F.Cu B.Cu]
func getListItems(s kicadsexp.Sexp) []kicadsexp.Sexp {
	all := items(s)
	if len(all) <= 1 {
		return nil
	}
	return all[1:]
}

// getString extracts the atom at index. Index 0 is the key.
func getString(s kicadsexp.Sexp, index int) (string, error) {
	all := items(s)
	if all == nil {
		return "", fmt.Errorf("expected list, got leaf")
	}
	if index < 0 || index >= len(all) {
		return "", fmt.Errorf("index %d out of bounds (length %d)", index, len(all))
	}
	if sym, ok := all[index].(kicadsexp.Symbol); ok {
		return string(sym), nil
	}
	return "", fmt.Errorf("expected symbol at index %d, got %T", index, all[index])
}

// getFloat extracts a float64 at index.
func getFloat(s kicadsexp.Sexp, index int) (float64, error) {
	str, err := getString(s, index)
	if err != nil {
		return 0, err
	}
	val, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse float %q: %w", str, err)
	}
	return val, nil
}

// getInt extracts an int at index.
func getInt(s kicadsexp.Sexp, index int) (int, error) {
	str, err := getString(s, index)
	if err != nil {
		return 0, err
	}
	val, err := strconv.Atoi(str)
	if err != nil {
		return 0, fmt.Errorf("failed to parse int %q: %w", str, err)
	}
	return val, nil
}

// getPositionAngle extracts (at X Y [angle]). Coordinates are mm and the
// angle is degrees, as written by KiCad 6 and later.
func getPositionAngle(s kicadsexp.Sexp) (PositionAngle, error) {
	x, err := getFloat(s, 1)
	if err != nil {
		return PositionAngle{}, fmt.Errorf("failed to parse X position: %w", err)
	}
	y, err := getFloat(s, 2)
	if err != nil {
		return PositionAngle{}, fmt.Errorf("failed to parse Y position: %w", err)
	}
	pa := PositionAngle{Position: Position{X: x, Y: y}}
	if angle, err := getFloat(s, 3); err == nil {
		pa.Angle = angle
	}
	return pa, nil
}

// getPositionXY extracts (keyword X Y).
func getPositionXY(s kicadsexp.Sexp) (Position, error) {
	pa, err := getPositionAngle(s)
	if err != nil {
		return Position{}, err
	}
	return pa.Position, nil
}

// getNodeName returns the head symbol of a list.
func getNodeName(s kicadsexp.Sexp) (string, error) {
	if s == nil {
		return "", fmt.Errorf("empty expression")
	}
	if sym, ok := s.(kicadsexp.Symbol); ok {
		return string(sym), nil
	}
	if sym, ok := s.Head().(kicadsexp.Symbol); ok {
		return string(sym), nil
	}
	return "", fmt.Errorf("expected symbol at head of list")
}
