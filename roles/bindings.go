package roles

import (
	"errors"
	"fmt"

	"github.com/reusee/imefix/scans"
)

var (
	ErrPatternNotFound = errors.New("pattern not found")
	ErrInvalidBinding  = errors.New("invalid binding")
)

// Bindings maps each logical role to the identifier used for it in one
// revision of the target file.
type Bindings struct {
	Input    string
	State    string
	CurState string
	TextFn   string
	OffsetFn string
	Count    string

	Anchor scans.Span
	Form   scans.MarkerForm
}

func (b Bindings) Validate() error {
	for _, role := range []struct {
		name  string
		ident string
	}{
		{"input", b.Input},
		{"state", b.State},
		{"current state", b.CurState},
		{"text commit", b.TextFn},
		{"offset commit", b.OffsetFn},
		{"delete count", b.Count},
	} {
		if !scans.IsIdent(role.ident) {
			return fmt.Errorf("%w: %s role bound to %q", ErrInvalidBinding, role.name, role.ident)
		}
	}
	return nil
}

// Names returns every bound identifier.
func (b Bindings) Names() []string {
	return []string{
		b.Input,
		b.State,
		b.CurState,
		b.TextFn,
		b.OffsetFn,
		b.Count,
	}
}
