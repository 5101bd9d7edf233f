package scans

import "errors"

var ErrUnbalanced = errors.New("unbalanced delimiters")

// Balance scans text from start, where one open delimiter has already been
// consumed, and returns the offset just past the close that brings the depth
// back to zero.
// Delimiters inside string or regexp literals are counted like any other.
func Balance(text string, start int, open, close byte) (int, error) {
	if start < 0 || start > len(text) {
		return 0, ErrUnbalanced
	}
	depth := 1
	for i := start; i < len(text); i++ {
		switch text[i] {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i + 1, nil
			}
		}
	}
	return 0, ErrUnbalanced
}

// BalanceBackward scans text leftwards from end and returns the offset of the
// first open delimiter that is not closed within [offset, end).
func BalanceBackward(text string, end int, open, close byte) (int, error) {
	if end < 0 || end > len(text) {
		return 0, ErrUnbalanced
	}
	depth := 0
	for i := end - 1; i >= 0; i-- {
		switch text[i] {
		case close:
			depth++
		case open:
			if depth == 0 {
				return i, nil
			}
			depth--
		}
	}
	return 0, ErrUnbalanced
}
