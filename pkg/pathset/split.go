package pathset

import (
	"iter"
	"strings"
)

// Separator delimits segments in a path-like value.
const Separator = ":"

// Split yields every colon-delimited segment of each value, in order.
//
// Empty segments produced by leading, trailing or adjacent colons are kept,
// and an empty value yields a single empty segment. Split of no values yields
// nothing.
func Split(values ...string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, value := range values {
			rest := value
			for {
				segment, tail, found := strings.Cut(rest, Separator)
				if !yield(segment) {
					return
				}
				if !found {
					break
				}
				rest = tail
			}
		}
	}
}

// Concat chains sequences into one, draining each before moving to the next.
func Concat(seqs ...iter.Seq[string]) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, seq := range seqs {
			for s := range seq {
				if !yield(s) {
					return
				}
			}
		}
	}
}

// Join is the inverse of Split for segments without colons.
func Join(segments []string) string {
	return strings.Join(segments, Separator)
}
