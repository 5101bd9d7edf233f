package patches

import "regexp"

// each set identifies one generation of patched code; all of a set must match
var patchedMarkers = [][]*regexp.Regexp{
	// pending-insert stack
	{
		regexp.MustCompile(`let _ns_*=`),
		regexp.MustCompile(`_sk_*=\[\]`),
	},
	// last-marker insertion
	{
		regexp.MustCompile(`_lastDel_*=`),
		regexp.MustCompile(`lastIndexOf\(`),
	},
	// marker stripping
	{
		regexp.MustCompile(`_vn_*=`),
		regexp.MustCompile(`replace\(/(?:\x7f|\\x7[fF]|\\u007[fF])/g`),
	},
}

// AlreadyPatched reports whether text already carries any known form of the fix.
func AlreadyPatched(text string) bool {
loop:
	for _, set := range patchedMarkers {
		for _, re := range set {
			if !re.MatchString(text) {
				continue loop
			}
		}
		return true
	}
	return false
}
