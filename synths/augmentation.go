package synths

import (
	"github.com/reusee/imefix/roles"
	"github.com/reusee/imefix/scans"
)

// Augmentation renders the legacy snippet inserted after the upstream
// retreat handling. It inserts only the units after the last marker, so it
// is correct for a single delete/insert group per batch.
func Augmentation(b roles.Bindings) string {
	n := freshNames(b.Names())
	inp, state := b.Input, b.State
	marker := `"` + scans.Marker + `"`
	return "let " + n.last + "=" + inp + ".lastIndexOf(" + marker + ");" +
		"let " + n.tail + "=" + n.last + ">=0?" + inp + ".slice(" + n.last + "+1):\"\";" +
		"if(" + n.tail + ".length>0){" +
		"for(const " + n.unit + " of " + n.tail + ")" + state + "=" + state + ".insert(" + n.unit + ");" +
		commit(b, state) +
		"}"
}
