package parser

import "strconv"

// emptyHeader names a header cell with no text.
const emptyHeader = "__EMPTY"

// NormalizeHeaders names blank headers __EMPTY, __EMPTY_1, ... and
// suffixes repeated headers with _1, _2 so every header is unique.
// Order is preserved.
func NormalizeHeaders(labels []string) []string {
	out := make([]string, len(labels))
	used := make(map[string]bool, len(labels))
	next := make(map[string]int, len(labels))
	for i, label := range labels {
		if label == "" {
			label = emptyHeader
		}
		name := label
		for used[name] {
			next[label]++
			name = label + "_" + strconv.Itoa(next[label])
		}
		used[name] = true
		out[i] = name
	}
	return out
}
