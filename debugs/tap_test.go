package debugs

import (
	"io"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/imefix/logs"
	"github.com/reusee/imefix/modes"
	"go.starlark.net/starlark"
)

func newScope(t *testing.T) dscope.Scope {
	return dscope.New(new(Module), modes.ForTest(t)).Fork(
		func() logs.Writer {
			return io.Discard
		},
	)
}

func TestTap(t *testing.T) {
	newScope(t).Call(func(
		tap Tap,
	) {
		tap(t.Context(), "test", map[string]any{
			"foo": 42,
		})
	})
}

func TestEval(t *testing.T) {
	type bindings struct {
		Input string
		Count string
	}
	newScope(t).Call(func(
		eval Eval,
	) {
		value, err := eval(t.Context(), `plan["Bindings"]["Input"] + str(plan["Start"] + 1)`, map[string]any{
			"plan": map[string]any{
				"Bindings": bindings{Input: "l", Count: "$A"},
				"Start":    41,
			},
		})
		if err != nil {
			t.Fatal(err)
		}
		if value != starlark.String("l42") {
			t.Fatalf("got %v", value)
		}

		if _, err := eval(t.Context(), `missing + 1`, nil); err == nil {
			t.Fatal("expected error")
		}
	})
}
