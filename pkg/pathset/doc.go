// Package pathset merges colon-delimited, PATH-like values.
//
// # Overview
//
// A value such as "/usr/bin:/bin" is a list of segments separated by ':'.
// Merge combines three sources into one canonical value:
//
//	prepend segments -> segments of the current value -> append segments
//
// Every segment of the combined stream goes through the same pipeline:
//
//   - blank segments (empty or ASCII whitespace only) are dropped
//   - segments present in the RemovalSet (exact match) are dropped
//   - repeated segments are dropped, the first occurrence wins
//
// The survivors are joined with ':'. Filtering is per segment, so a dropped
// occurrence never hides a later, different segment.
//
// # Example
//
//	pathset.Merge(pathset.Request{
//		Prepend: []string{"/b"},
//		Current: "/a:/b::/a",
//		Append:  []string{"/usr/local/bin:/c"},
//		Remove:  pathset.NewRemovalSet("/c"),
//	})
//	// "/b:/a:/usr/local/bin"
//
// Entries of Prepend and Append may themselves contain colons; they are
// split like the current value. No path normalization happens: "/a" and
// "/a/" are different segments.
package pathset
