package roles

import (
	"fmt"
	"regexp"

	"github.com/reusee/imefix/scans"
)

const (
	DefaultLookbehind = 500
	DefaultLookahead  = 800
)

type Resolver struct {
	Lookbehind int
	Lookahead  int
}

func NewResolver() Resolver {
	return Resolver{
		Lookbehind: DefaultLookbehind,
		Lookahead:  DefaultLookahead,
	}
}

// Resolve binds every role or fails; partial bindings are never returned.
func (r Resolver) Resolve(text string) (ret Bindings, err error) {
	input, anchor, form, ok := findAnchor(text)
	if !ok {
		return ret, fmt.Errorf("%w: no includes(marker) anchor", ErrPatternNotFound)
	}
	window := scans.Window(len(text), anchor, r.Lookbehind, r.Lookahead)
	ctx := text[window.Start:window.End]

	// let COUNT=(INPUT.match(/…/g)||[]).length,STATE=CUR
	declRegexp := regexp.MustCompile(
		`(?:let|const|var)\s+(` + scans.IdentPattern + `)=\(` +
			regexp.QuoteMeta(input) + `\.match\(/[^/]+/g\)\|\|\[\]\)\.length,(` +
			scans.IdentPattern + `)=(` + scans.IdentPattern + `)`,
	)
	m := declRegexp.FindStringSubmatch(ctx)
	if m == nil {
		return ret, fmt.Errorf("%w: no count/state declaration near %s", ErrPatternNotFound, anchor)
	}
	count, state, cur := m[1], m[2], m[3]

	textFn := findTextCommit(ctx, state, cur)
	if textFn == "" {
		return ret, fmt.Errorf("%w: no text commit for %s", ErrPatternNotFound, state)
	}

	offsetRegexp := regexp.MustCompile(
		scans.BareCall(regexp.QuoteMeta(state) + `\.offset`),
	)
	m = offsetRegexp.FindStringSubmatch(ctx)
	if m == nil {
		return ret, fmt.Errorf("%w: no offset commit for %s", ErrPatternNotFound, state)
	}
	offsetFn := m[1]

	ret = Bindings{
		Input:    input,
		State:    state,
		CurState: cur,
		TextFn:   textFn,
		OffsetFn: offsetFn,
		Count:    count,
		Anchor:   anchor,
		Form:     form,
	}
	if err := ret.Validate(); err != nil {
		return Bindings{}, fmt.Errorf("%w: %w", ErrPatternNotFound, err)
	}
	return ret, nil
}

func findAnchor(text string) (input string, anchor scans.Span, form scans.MarkerForm, ok bool) {
	for _, form := range scans.MarkerForms {
		re := regexp.MustCompile(
			`(` + scans.IdentPattern + `)\.includes\(` + form.Literal() + `\)`,
		)
		for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
			// receiver must not be a member access
			if loc[2] > 0 && text[loc[2]-1] == '.' {
				continue
			}
			return text[loc[2]:loc[3]], scans.Span{Start: loc[0], End: loc[1]}, form, true
		}
	}
	return
}

func findTextCommit(ctx string, state, cur string) string {
	s := regexp.QuoteMeta(state)
	guarded := regexp.MustCompile(
		`if\(` + regexp.QuoteMeta(cur) + `\.text!==` + s + `\.text\)(` +
			scans.IdentPattern + `)\(` + s + `\.text\)`,
	)
	if m := guarded.FindStringSubmatch(ctx); m != nil {
		return m[1]
	}
	plain := regexp.MustCompile(scans.BareCall(s + `\.text`))
	if m := plain.FindStringSubmatch(ctx); m != nil {
		return m[1]
	}
	return ""
}
