// Package normalizer rewrites UNC network paths into local zone paths.
package normalizer

import "strings"

// Mapping holds the two configuration values a normalization needs:
// the UNC root prefix to match and the local mount path that replaces it.
// A Mapping is constructed once and never mutated afterwards.
type Mapping struct {
	FilerRoot      string // UNC root prefix, e.g. `\\fileserver\share`
	LocalFilerPath string // local mount path, e.g. /mnt/share
}

// Result is the outcome of a single normalization.
type Result struct {
	Path    string // the normalized path
	Matched bool   // whether FilerRoot actually occurred in the input
}

// Normalize converts a UNC path into its local equivalent.
// The FilerRoot is matched as a literal substring (never as a pattern) and
// only its first occurrence is replaced with LocalFilerPath. Afterwards every
// backslash in the result, including any contributed by LocalFilerPath, becomes
// a forward slash. Input that does not contain FilerRoot passes through the
// substitution step unchanged; this is not an error.
//
// An empty FilerRoot performs no substitution at all, so a missing
// configuration degrades to plain slash conversion.
func Normalize(m Mapping, input string) Result {
	out := input
	matched := false

	if m.FilerRoot != "" && strings.Contains(input, m.FilerRoot) {
		out = strings.Replace(input, m.FilerRoot, m.LocalFilerPath, 1)
		matched = true
	}

	return Result{
		Path:    strings.ReplaceAll(out, `\`, "/"),
		Matched: matched,
	}
}
