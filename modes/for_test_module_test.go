package modes

import (
	"testing"
	"time"

	"github.com/reusee/dscope"
)

func TestForTest(t *testing.T) {
	dscope.New(ForTest(t)).Call(func(
		t *testing.T,
		mode Mode,
		now Now,
	) {
		if mode != ModeDevelopment {
			t.Fatal()
		}
		a, b := now(), now()
		if b.Sub(a) != time.Second {
			t.Fatalf("got %v %v", a, b)
		}
		if mode.String() != "development" {
			t.Fatal()
		}
	})
}
