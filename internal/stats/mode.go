package stats

import "sort"

// Count is one distinct value and the number of times it occurred.
type Count[T comparable] struct {
	Value T
	Count int
}

// ValueCounts returns every distinct value with its number of occurrences,
// most frequent first. Values with equal counts keep first-seen order.
func ValueCounts[T comparable](values []T) []Count[T] {
	pos := make(map[T]int, len(values))
	var counts []Count[T]
	for _, v := range values {
		if i, ok := pos[v]; ok {
			counts[i].Count++
			continue
		}
		pos[v] = len(counts)
		counts = append(counts, Count[T]{Value: v, Count: 1})
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}

// Mode returns the most frequent value. On ties the value that appeared
// first wins. ok is false for empty input.
func Mode[T comparable](values []T) (mode T, ok bool) {
	counts := ValueCounts(values)
	if len(counts) == 0 {
		return mode, false
	}
	return counts[0].Value, true
}
