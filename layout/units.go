package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// This file defines unit-safe length parsing for @doc header overrides.
// The engine itself is pt-native; other units are converted at the boundary.

// Unit represents the original unit of a length value as written by the author.
type Unit int

const (
	UnitNone Unit = iota // unit-less numbers
	UnitPT               // points
	UnitMM               // millimeters
	UnitCM               // centimeters
	UnitIN               // inches
)

// Conversion constants between pt and mm.
const (
	PtToMm = 0.352777
	MmToPt = 1.0 / PtToMm
)

// Length preserves a numeric value with its unit.
type Length struct {
	Value float64 `json:"value"`
	Unit  Unit    `json:"unit"`
}

// ToPT converts this length to points. Unit-less values are taken as pt,
// which matches the engine's native unit.
func (l Length) ToPT() float64 {
	switch l.Unit {
	case UnitMM:
		return l.Value * MmToPt
	case UnitCM:
		return l.Value * 10 * MmToPt
	case UnitIN:
		return l.Value * 72
	default:
		return l.Value
	}
}

// ParseLengthStr parses a length string like "54pt", "20mm", "1in" or "54",
// preserving its unit. Invalid input yields a zero Length.
func ParseLengthStr(value string) Length {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return Length{}
	}
	unit := UnitNone
	num := v
	for _, suf := range []struct {
		s string
		u Unit
	}{{"pt", UnitPT}, {"mm", UnitMM}, {"cm", UnitCM}, {"in", UnitIN}} {
		if strings.HasSuffix(v, suf.s) {
			unit = suf.u
			num = strings.TrimSpace(strings.TrimSuffix(v, suf.s))
			break
		}
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return Length{}
	}
	return Length{Value: f, Unit: unit}
}

// pagePresets maps preset names to width/height in pt.
var pagePresets = map[string][2]float64{
	"LETTER": {612, 792},
	"LEGAL":  {612, 1008},
	"A4":     {595.28, 841.89},
}

// PageSize resolves a page preset name to its dimensions in pt.
func PageSize(name string) (width, height float64, err error) {
	base, ok := pagePresets[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return 0, 0, fmt.Errorf("layout: 暂不支持的纸张尺寸：%s", name)
	}
	return base[0], base[1], nil
}
