// Package timeslots implements set algebra over discrete start times.
//
// Time points are compared by exact instant: two points are equal when they
// denote the same nanosecond regardless of location or monotonic reading.
// Participants pick start times from a shared grid, so ranges never need
// to overlap partially.
package timeslots

import (
	"slices"
	"time"
)

type key = int64

func keyOf(t time.Time) key {
	return t.UnixNano()
}

// Normalize returns sorted points without duplicates, converted to UTC
// and truncated to milliseconds (the precision storages keep).
func Normalize(points []time.Time) []time.Time {
	if len(points) == 0 {
		return nil
	}

	out := make([]time.Time, 0, len(points))
	for _, p := range points {
		out = append(out, p.UTC().Truncate(time.Millisecond))
	}

	sortPoints(out)
	return slices.CompactFunc(out, time.Time.Equal)
}

// Intersect returns points present in both a and b, sorted ascending.
func Intersect(a, b []time.Time) []time.Time {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}

	small, large := a, b
	if len(small) > len(large) {
		small, large = large, small
	}

	index := toSet(small)

	var shared []time.Time
	for _, p := range large {
		k := keyOf(p)
		if _, ok := index[k]; ok {
			shared = append(shared, p)
			delete(index, k)
		}
	}

	sortPoints(shared)
	return shared
}

// Exclude returns points of a which are absent in b, keeping a's order.
func Exclude(a, b []time.Time) []time.Time {
	if len(a) == 0 {
		return nil
	}

	index := toSet(b)

	out := make([]time.Time, 0, len(a))
	for _, p := range a {
		if _, ok := index[keyOf(p)]; !ok {
			out = append(out, p)
		}
	}
	return out
}

// After returns points strictly later than t.
func After(points []time.Time, t time.Time) []time.Time {
	out := make([]time.Time, 0, len(points))
	for _, p := range points {
		if p.After(t) {
			out = append(out, p)
		}
	}
	return out
}

// Earliest returns the chronologically first point.
func Earliest(points []time.Time) (time.Time, bool) {
	if len(points) == 0 {
		return time.Time{}, false
	}

	first := points[0]
	for _, p := range points[1:] {
		if p.Before(first) {
			first = p
		}
	}
	return first, true
}

func Contains(points []time.Time, t time.Time) bool {
	return slices.ContainsFunc(points, t.Equal)
}

// Union returns sorted points present in a or b.
func Union(a, b []time.Time) []time.Time {
	out := make([]time.Time, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, Exclude(b, a)...)
	sortPoints(out)
	return out
}

func Remove(points []time.Time, t time.Time) []time.Time {
	return slices.DeleteFunc(slices.Clone(points), t.Equal)
}

func toSet(points []time.Time) map[key]struct{} {
	index := make(map[key]struct{}, len(points))
	for _, p := range points {
		index[keyOf(p)] = struct{}{}
	}
	return index
}

func sortPoints(points []time.Time) {
	slices.SortFunc(points, func(x, y time.Time) int {
		return x.Compare(y)
	})
}
