package blocks

import (
	"fmt"
	"regexp"

	"github.com/reusee/imefix/roles"
	"github.com/reusee/imefix/scans"
)

// LocateInsertionPoint returns the offset just past the close of the block
// that commits the retreated state. Commit sites of the same shape elsewhere
// are skipped unless a retreat call is in their neighborhood.
func (l Locator) LocateInsertionPoint(text string, b roles.Bindings) (ret Target, err error) {
	re := regexp.MustCompile(
		scans.Bare(regexp.QuoteMeta(b.OffsetFn)) + `\(` + regexp.QuoteMeta(b.State) + `\.offset\)\}`,
	)
	for _, loc := range re.FindAllStringIndex(text, -1) {
		window := scans.Window(len(text), scans.Span{Start: loc[0], End: loc[1]}, l.Before, l.After)
		if !l.retreats(text[window.Start:window.End]) {
			continue
		}
		return Target{
			Span: scans.Span{Start: loc[1], End: loc[1]},
		}, nil
	}
	return ret, fmt.Errorf("%w: no %s(%s.offset)} near a retreat call", ErrPointNotFound, b.OffsetFn, b.State)
}
