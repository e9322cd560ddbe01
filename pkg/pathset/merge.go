package pathset

import (
	"io"
	"iter"
	"strings"

	"github.com/arthur-debert/envctl/pkg/errors"
)

// asciiSpace is the set of characters trimmed when testing for blankness.
const asciiSpace = " \t\n\v\f\r"

// Request describes one merge. Prepend and Append entries may contain
// colons. A nil Remove is treated as an empty set.
type Request struct {
	Prepend []string
	Current string
	Append  []string
	Remove  RemovalSet
}

// IsBlank reports whether segment is empty once surrounding ASCII
// whitespace is trimmed.
func IsBlank(segment string) bool {
	return strings.Trim(segment, asciiSpace) == ""
}

// Segments yields the combined, unfiltered stream for req:
// prepend, then the current value, then append.
func (req Request) Segments() iter.Seq[string] {
	return Concat(
		Split(req.Prepend...),
		Split(req.Current),
		Split(req.Append...),
	)
}

// Merged yields the segments that survive filtering and deduplication, in
// first-occurrence order. Each iteration starts from a fresh state.
func Merged(req Request) iter.Seq[string] {
	return func(yield func(string) bool) {
		seen := make(map[string]struct{})
		for segment := range req.Segments() {
			if IsBlank(segment) || req.Remove.Contains(segment) {
				continue
			}
			if _, dup := seen[segment]; dup {
				continue
			}
			seen[segment] = struct{}{}
			if !yield(segment) {
				return
			}
		}
	}
}

// Merge returns the canonical value for req. It is empty when no segment
// survives.
func Merge(req Request) string {
	var b strings.Builder
	for segment := range Merged(req) {
		if b.Len() > 0 {
			b.WriteString(Separator)
		}
		b.WriteString(segment)
	}
	return b.String()
}

// Write prints value followed by a newline.
func Write(w io.Writer, value string) error {
	if _, err := io.WriteString(w, value+"\n"); err != nil {
		return errors.Wrap(err, errors.ErrWrite, "failed to write merged value")
	}
	return nil
}
