package layout

import (
	"math"
	"testing"
)

func TestParseLengthStr(t *testing.T) {
	cases := []struct {
		in   string
		want Length
	}{
		{"54pt", Length{Value: 54, Unit: UnitPT}},
		{"20mm", Length{Value: 20, Unit: UnitMM}},
		{"2.5cm", Length{Value: 2.5, Unit: UnitCM}},
		{"1in", Length{Value: 1, Unit: UnitIN}},
		{"54", Length{Value: 54, Unit: UnitNone}},
		{"  12 PT ", Length{Value: 12, Unit: UnitPT}},
		{"", Length{}},
		{"abc", Length{}},
		{"12px", Length{}},
	}
	for _, tc := range cases {
		if got := ParseLengthStr(tc.in); got != tc.want {
			t.Fatalf("ParseLengthStr(%q) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestLengthToPT(t *testing.T) {
	cases := []struct {
		in   Length
		want float64
	}{
		{Length{Value: 54, Unit: UnitPT}, 54},
		{Length{Value: 54, Unit: UnitNone}, 54},
		{Length{Value: 1, Unit: UnitIN}, 72},
		{Length{Value: 10, Unit: UnitMM}, 10 * MmToPt},
		{Length{Value: 1, Unit: UnitCM}, 10 * MmToPt},
	}
	for _, tc := range cases {
		if got := tc.in.ToPT(); math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("%+v.ToPT() = %g, want %g", tc.in, got, tc.want)
		}
	}
}

func TestPtMmRoundTrip(t *testing.T) {
	for _, v := range []float64{1, 11, 54, 612, 792} {
		back := v * PtToMm * MmToPt
		if math.Abs(back-v) > 1e-9 {
			t.Fatalf("pt->mm->pt 往返失真: %g -> %g", v, back)
		}
	}
}

func TestPageSize(t *testing.T) {
	w, h, err := PageSize("letter")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w != 612 || h != 792 {
		t.Fatalf("LETTER = %gx%g, want 612x792", w, h)
	}

	w, h, err = PageSize(" A4 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w != 595.28 || h != 841.89 {
		t.Fatalf("A4 = %gx%g, want 595.28x841.89", w, h)
	}

	if _, _, err := PageSize("B5"); err == nil {
		t.Fatalf("未知纸张名应返回错误")
	}
}
