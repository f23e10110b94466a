package service

import "testing"

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name           string
		s1, e1, s2, e2 int // hours
		want           bool
	}{
		{"identical", 10, 12, 10, 12, true},
		{"partial front", 10, 12, 11, 13, true},
		{"partial back", 11, 13, 10, 12, true},
		{"contained", 10, 14, 11, 12, true},
		{"containing", 11, 12, 10, 14, true},
		{"touching end to start", 10, 12, 12, 14, false},
		{"touching start to end", 12, 14, 10, 12, false},
		{"disjoint before", 8, 9, 10, 11, false},
		{"disjoint after", 12, 13, 10, 11, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := overlaps(at(tc.s1, 0), at(tc.e1, 0), at(tc.s2, 0), at(tc.e2, 0))
			if got != tc.want {
				t.Fatalf("overlaps([%d,%d),[%d,%d)) = %v, want %v", tc.s1, tc.e1, tc.s2, tc.e2, got, tc.want)
			}
		})
	}
}
