package service

import "time"

// overlaps reports whether the half-open intervals [s1,e1) and [s2,e2)
// intersect. Touching endpoints are not an intersection: a booking
// ending at T and another starting at T coexist.
func overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && e1.After(s2)
}
