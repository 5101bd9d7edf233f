package synths

import (
	"strings"

	"github.com/reusee/imefix/roles"
	"github.com/reusee/imefix/scans"
)

// Replacement renders the guarded block that reconciles a batch with a
// pending-insert stack. A marker pops the last pending unit, or retreats the
// working state when nothing is pending. Survivors are inserted in order and
// only then committed against the current state.
//
// prefix is copied verbatim in front of the marker test.
func Replacement(b roles.Bindings, prefix string) string {
	n := freshNames(b.Names())
	inp, cur := b.Input, b.CurState
	marker := `"` + scans.Marker + `"`

	condition := inp + ".includes(" + marker + ")"
	if prefix != "" {
		condition = prefix + "&&" + condition
	}

	var buf strings.Builder
	w := buf.WriteString
	w("if(" + condition + ")")
	w("{let " + n.next + "=" + cur + "," + n.stack + "=[];")
	w("for(const " + n.unit + " of " + inp + ")")
	w("{if(" + n.unit + "===" + marker + ")")
	w("{if(" + n.stack + ".length>0)" + n.stack + ".pop();else " + n.next + "=" + n.next + ".backspace()}")
	w("else " + n.stack + ".push(" + n.unit + ")}")
	w("for(const " + n.unit + " of " + n.stack + ")" + n.next + "=" + n.next + ".insert(" + n.unit + ");")
	w(commit(b, n.next))
	w("return}")
	return buf.String()
}

// commit renders the tail shared by both strategies: the text callback only
// runs when the text changed, the offset callback whenever state changed.
func commit(b roles.Bindings, state string) string {
	cur := b.CurState
	return "if(!" + cur + ".equals(" + state + "))" +
		"{if(" + cur + ".text!==" + state + ".text)" + b.TextFn + "(" + state + ".text);" +
		b.OffsetFn + "(" + state + ".offset)}"
}
