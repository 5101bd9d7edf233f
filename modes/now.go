package modes

import (
	"sync"
	"time"
)

// Now is the clock used for anything that ends up in file names.
type Now func() time.Time

func (ModuleForProduction) Now() Now {
	return time.Now
}

// Now in tests starts at a fixed instant and advances one second per call,
// so names derived from it are distinct and ordered.
func (ModuleForTest) Now() Now {
	var l sync.Mutex
	t := time.Date(2025, 1, 2, 3, 4, 5, 0, time.Local)
	return func() time.Time {
		l.Lock()
		defer l.Unlock()
		ret := t
		t = t.Add(time.Second)
		return ret
	}
}
