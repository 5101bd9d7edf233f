package scans

import "fmt"

// Span is a half-open offset range [Start, End) into a text.
type Span struct {
	Start int
	End   int
}

func (s Span) Valid(textLen int) bool {
	return 0 <= s.Start && s.Start <= s.End && s.End <= textLen
}

func (s Span) Len() int {
	return s.End - s.Start
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Start, s.End)
}

// Window widens span by before and after, clamped to a text of textLen.
func Window(textLen int, span Span, before, after int) Span {
	return Span{
		Start: max(0, span.Start-before),
		End:   min(textLen, span.End+after),
	}
}
