package adm

// Range is a half-open [Start, End) character-offset interval.
type Range struct {
	Start int
	End   int
}

// Absent marks a missing extent. It overlaps nothing.
func Absent() Range {
	return Range{Start: -1, End: -1}
}

func (r Range) IsAbsent() bool {
	return r.Start == -1 && r.End == -1
}

func (r Range) Len() int {
	if r.End <= r.Start {
		return 0
	}
	return r.End - r.Start
}

// Overlaps reports whether a and b share at least one character position.
// Absent or empty ranges never overlap anything.
func Overlaps(a, b Range) bool {
	if a.Len() == 0 || b.Len() == 0 {
		return false
	}
	return max(a.Start, b.Start) < min(a.End, b.End)
}

// Span is the wire shape of an annotated extent. Offsets are pointers so that
// items missing them degrade to the absent Range instead of offset zero.
type Span struct {
	StartOffset *int `json:"startOffset,omitempty"`
	EndOffset   *int `json:"endOffset,omitempty"`
}

// Extent returns the span's Range, or the absent Range if either offset is
// missing.
func (s Span) Extent() Range {
	if s.StartOffset == nil || s.EndOffset == nil {
		return Absent()
	}
	return Range{Start: *s.StartOffset, End: *s.EndOffset}
}

// NewSpan builds a span with both offsets present. Used by tests and by code
// assembling ADMs by hand.
func NewSpan(start, end int) Span {
	return Span{StartOffset: &start, EndOffset: &end}
}
