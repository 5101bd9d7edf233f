package synths

import "slices"

// Fresh returns base, suffixed with underscores until it differs from every
// name in taken.
func Fresh(base string, taken []string) string {
	name := base
	for slices.Contains(taken, name) {
		name += "_"
	}
	return name
}

type names struct {
	next  string
	stack string
	unit  string
	last  string
	tail  string
}

func freshNames(taken []string) names {
	return names{
		next:  Fresh("_ns", taken),
		stack: Fresh("_sk", taken),
		unit:  Fresh("_c", taken),
		last:  Fresh("_lastDel", taken),
		tail:  Fresh("_vn", taken),
	}
}
