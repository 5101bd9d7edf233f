package blocks

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/reusee/imefix/roles"
	"github.com/reusee/imefix/scans"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrBlockNotFound = fmt.Errorf("block %w", ErrNotFound)
	ErrPointNotFound = fmt.Errorf("insertion point %w", ErrNotFound)
)

var DefaultRetreatMethods = []string{
	"backspace",
	"deleteBackward",
}

const (
	DefaultNeighborBefore = 300
	DefaultNeighborAfter  = 50
)

// Target is where a patch goes. An empty Span is an insertion point.
type Target struct {
	Span   scans.Span
	Prefix string
}

type Locator struct {
	RetreatMethods []string
	Before         int
	After          int
}

func NewLocator() Locator {
	return Locator{
		RetreatMethods: DefaultRetreatMethods,
		Before:         DefaultNeighborBefore,
		After:          DefaultNeighborAfter,
	}
}

// LocateBlock finds the guarded block that handles batched markers. The first
// guard that matches is final: if its body does not retreat, the match is a
// lookalike and the lookup fails rather than trying further candidates.
func (l Locator) LocateBlock(text string, b roles.Bindings) (ret Target, err error) {
	start, open, prefix, ok := findPrefixedGuard(text, b.Input)
	if !ok {
		start, open, ok = findBareGuard(text, b.Input)
	}
	if !ok {
		return ret, fmt.Errorf("%w: no guard testing %s for the marker", ErrBlockNotFound, b.Input)
	}

	end, err := scans.Balance(text, open+1, '{', '}')
	if err != nil {
		return ret, fmt.Errorf("%w: guard at %d: %w", ErrBlockNotFound, start, err)
	}
	span := scans.Span{Start: start, End: end}

	if !l.retreats(text[span.Start:span.End]) {
		return ret, fmt.Errorf("%w: block %s does not call any of %v", ErrBlockNotFound, span, l.RetreatMethods)
	}

	return Target{
		Span:   span,
		Prefix: prefix,
	}, nil
}

// findPrefixedGuard matches `if(PREFIX&&INPUT.includes(M)){` and returns the
// offset of `if`, the offset of `{` and the verbatim prefix.
func findPrefixedGuard(text string, input string) (start, open int, prefix string, ok bool) {
	for _, form := range scans.MarkerForms {
		tail := regexp.MustCompile(
			`&&\s*` + regexp.QuoteMeta(input) + `\.includes\(` + form.Literal() + `\)\s*\)\s*\{`,
		)
		for _, loc := range tail.FindAllStringIndex(text, -1) {
			paren, err := scans.BalanceBackward(text, loc[0], '(', ')')
			if err != nil {
				continue
			}
			ifStart, ok := ifKeyword(text, paren)
			if !ok {
				continue
			}
			return ifStart, loc[1] - 1, text[paren+1 : loc[0]], true
		}
	}
	return
}

func findBareGuard(text string, input string) (start, open int, ok bool) {
	for _, form := range scans.MarkerForms {
		re := regexp.MustCompile(
			`if\(\s*` + regexp.QuoteMeta(input) + `\.includes\(` + form.Literal() + `\)\s*\)\s*\{`,
		)
		for _, loc := range re.FindAllStringIndex(text, -1) {
			if loc[0] > 0 && scans.IsIdentByte(text[loc[0]-1]) {
				continue
			}
			return loc[0], loc[1] - 1, true
		}
	}
	return
}

// ifKeyword reports whether the paren at offset belongs to a bare `if`.
func ifKeyword(text string, paren int) (int, bool) {
	i := paren
	for i > 0 && strings.ContainsRune(" \t\n\r", rune(text[i-1])) {
		i--
	}
	if i < 2 || text[i-2:i] != "if" {
		return 0, false
	}
	if i > 2 && (scans.IsIdentByte(text[i-3]) || text[i-3] == '.') {
		return 0, false
	}
	return i - 2, true
}

func (l Locator) retreats(s string) bool {
	for _, method := range l.RetreatMethods {
		if strings.Contains(s, "."+method+"()") {
			return true
		}
	}
	return false
}
