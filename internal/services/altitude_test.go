package services

import (
	"math"
	"testing"
)

func TestVFRCandidateHemisphericRule(t *testing.T) {
	cases := []struct {
		heading float64
		want    int
	}{
		{0, 3500},
		{45, 3500},
		{90, 3500},
		{179.9, 3500},
		{180, 4500},
		{270, 4500},
		{359.9, 4500},
	}

	for _, c := range cases {
		if got := VFRCandidate(c.heading); got != c.want {
			t.Errorf("VFRCandidate(%f) = %d, want %d", c.heading, got, c.want)
		}
	}
}

func TestEnforceMinimumPreservesParity(t *testing.T) {
	cases := []struct {
		candidate, floor, want int
	}{
		{3500, 0, 3500},
		{3500, 3500, 3500},
		{3500, 3501, 5500},
		{3500, 4000, 5500},
		{4500, 4400, 4500},
		{4500, 9000, 10500},
		{3500, 12000, 13500},
	}

	for _, c := range cases {
		got := EnforceMinimum(c.candidate, c.floor)
		if got != c.want {
			t.Errorf("EnforceMinimum(%d, %d) = %d, want %d", c.candidate, c.floor, got, c.want)
		}
		if (got-c.candidate)%2000 != 0 {
			t.Errorf("EnforceMinimum(%d, %d) = %d changed parity", c.candidate, c.floor, got)
		}
	}
}

func TestMagneticHeading(t *testing.T) {
	cases := []struct {
		variation, trueCourse, want float64
	}{
		{0, 49.5, 49.5},
		{14, 10, 356},
		{-14, 350, 4},
		{2, 0, 358},
	}

	for _, c := range cases {
		s := AltitudeSelector{MagneticVariationDeg: c.variation}
		if got := s.MagneticHeading(c.trueCourse); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("variation=%f true=%f: got %f, want %f", c.variation, c.trueCourse, got, c.want)
		}
	}
}
