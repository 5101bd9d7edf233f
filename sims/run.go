package sims

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dop251/goja"
	"github.com/reusee/imefix/roles"
)

var ErrScript = errors.New("script failed")

// Result holds the last committed state and how often each callback ran.
// Text and Offset stay at the scenario start when nothing was committed.
type Result struct {
	Text          string `json:"text"`
	Offset        int    `json:"offset"`
	TextCommits   int    `json:"textCommits"`
	OffsetCommits int    `json:"offsetCommits"`
}

// RunBlock executes a full replacement block with the current state set to
// the scenario start.
func RunBlock(ctx context.Context, artifact string, b roles.Bindings, sc Scenario) (Result, error) {
	var src strings.Builder
	src.WriteString("var " + b.CurState + "=new State(__text,__offset);")
	src.WriteString("var " + b.Input + "=__input;")
	src.WriteString("(function(){" + artifact + "\n})();")
	return run(ctx, src.String(), b, sc)
}

// RunAugmentation emulates the upstream handling that the snippet follows:
// the state is retreated once per marker and committed, then the snippet
// runs.
func RunAugmentation(ctx context.Context, artifact string, b roles.Bindings, sc Scenario) (Result, error) {
	cur, state := b.CurState, b.State
	var src strings.Builder
	src.WriteString("var " + cur + "=new State(__text,__offset);")
	src.WriteString("var " + b.Input + "=__input;")
	src.WriteString("(function(){")
	src.WriteString("let " + b.Count + "=(" + b.Input + ".match(/\\x7f/g)||[]).length," + state + "=" + cur + ";")
	src.WriteString("for(let __i=0;__i<" + b.Count + ";__i++)" + state + "=" + state + ".backspace();")
	src.WriteString("if(!" + cur + ".equals(" + state + ")){if(" + cur + ".text!==" + state + ".text)" +
		b.TextFn + "(" + state + ".text);" + b.OffsetFn + "(" + state + ".offset)}")
	src.WriteString(artifact)
	src.WriteString("\n})();")
	return run(ctx, src.String(), b, sc)
}

func run(ctx context.Context, body string, b roles.Bindings, sc Scenario) (ret Result, err error) {
	if err := ctx.Err(); err != nil {
		return ret, err
	}
	vm := goja.New()
	stop := context.AfterFunc(ctx, func() {
		vm.Interrupt(ctx.Err())
	})
	defer stop()

	class := sc.StateClass
	if class == "" {
		class = stateClass
	}
	if err := vm.Set("__text", sc.Text); err != nil {
		return ret, err
	}
	if err := vm.Set("__offset", sc.Offset); err != nil {
		return ret, err
	}
	if err := vm.Set("__input", sc.Input); err != nil {
		return ret, err
	}

	var src strings.Builder
	src.WriteString(class)
	src.WriteString(";var __result={text:__text,offset:__offset,textCommits:0,offsetCommits:0};")
	src.WriteString("function " + b.TextFn + "(t){__result.text=t;__result.textCommits++}")
	src.WriteString("function " + b.OffsetFn + "(o){__result.offset=o;__result.offsetCommits++}")
	src.WriteString(body)
	src.WriteString(";JSON.stringify(__result)")

	value, err := vm.RunString(src.String())
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ret, ctxErr
		}
		return ret, fmt.Errorf("%w: %s: %w", ErrScript, sc.Name, err)
	}
	if err := json.Unmarshal([]byte(value.String()), &ret); err != nil {
		return ret, fmt.Errorf("%w: %s: result %s: %w", ErrScript, sc.Name, strconv.Quote(value.String()), err)
	}
	return ret, nil
}
