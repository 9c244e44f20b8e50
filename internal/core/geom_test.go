package core

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestVecNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Vec
		want Vec
	}{
		{"axis x", Vec{X: 1}, Vec{X: 1}},
		{"axis -y", Vec{Y: -1}, Vec{Y: -1}},
		{"diagonal", Vec{X: 1, Y: 1}, Vec{X: 1 / math.Sqrt2, Y: 1 / math.Sqrt2}},
		{"zero stays zero", Vec{}, Vec{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Normalize()
			if math.Abs(got.X-tc.want.X) > eps || math.Abs(got.Y-tc.want.Y) > eps {
				t.Errorf("Normalize() = %+v, expected %+v", got, tc.want)
			}
		})
	}
}

func TestVecArithmetic(t *testing.T) {
	a := Vec{X: 3, Y: 4}
	if a.Len() != 5 {
		t.Errorf("Len() = %f, expected 5", a.Len())
	}
	if got := a.Add(Vec{X: 1, Y: -1}); got != (Vec{X: 4, Y: 3}) {
		t.Errorf("Add() = %+v", got)
	}
	if got := a.Sub(Vec{X: 3, Y: 4}); !got.IsZero() {
		t.Errorf("Sub() = %+v, expected zero", got)
	}
	if got := a.Scale(2); got != (Vec{X: 6, Y: 8}) {
		t.Errorf("Scale() = %+v", got)
	}
}

func TestBoxCenter(t *testing.T) {
	b := NewBox(50, 50, 40, 60)

	if c := b.Center(); c != (Vec{X: 70, Y: 80}) {
		t.Errorf("Center() = %+v, expected (70, 80)", c)
	}
}

func TestCenterDistance(t *testing.T) {
	a := NewBox(0, 0, 40, 60)  // center (20, 30)
	b := NewBox(24, 14, 32, 32) // center (40, 30)

	if d := CenterDistance(a, b); d != 20 {
		t.Errorf("CenterDistance() = %f, expected 20", d)
	}
	if CenterDistance(a, b) != CenterDistance(b, a) {
		t.Error("CenterDistance should be symmetric")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
