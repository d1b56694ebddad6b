package pathutil

import "strings"

// Separator joins segments into relative paths.
const Separator = "/"

// Segment is one component of a relative path: a value type with ==
// equality and a string form. Comparison is case-sensitive; callers needing
// case folding fold before constructing the Segment.
type Segment string

func (s Segment) String() string {
	return string(s)
}

// Ext returns the lowercased extension of the segment without the dot, or
// "" when there is none. A leading dot alone (".gitignore" style names)
// counts as an extension-less hidden name.
func (s Segment) Ext() string {
	i := strings.LastIndexByte(string(s), '.')
	if i <= 0 || i == len(s)-1 {
		return ""
	}
	return strings.ToLower(string(s[i+1:]))
}

// Stem returns the segment without its extension.
func (s Segment) Stem() Segment {
	i := strings.LastIndexByte(string(s), '.')
	if i <= 0 {
		return s
	}
	return s[:i]
}

// Category returns the category for the segment's extension.
func (s Segment) Category() Category {
	return CategoryForExt(s.Ext())
}

// Split breaks a relative path into its segments, dropping empty components
// so that leading, trailing, and doubled separators are tolerated.
func Split(path string) []Segment {
	parts := strings.Split(path, Separator)
	segs := make([]Segment, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			segs = append(segs, Segment(p))
		}
	}
	return segs
}

// Join concatenates segments with the separator. Join(Split(p)) reproduces
// p for any clean relative path.
func Join(segs []Segment) string {
	parts := make([]string, len(segs))
	for i, s := range segs {
		parts[i] = string(s)
	}
	return strings.Join(parts, Separator)
}
