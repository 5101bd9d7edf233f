package roles

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/reusee/imefix/scans"
)

// ⌫ is replaced with a marker spelling
const handlerTemplate = `var Fz="Version: 2.1.12";function Hk(l,QA,S,Q,T){if(QA.ctrl)return;` +
	`if(!QA.backspace&&!QA.delete&&l.includes("⌫")){let $A=(l.match(/\x7f/g)||[]).length,CA=S;` +
	`for(let _A=0;_A<$A;_A++)CA=CA.backspace();if(!S.equals(CA)){if(S.text!==CA.text)Q(CA.text);T(CA.offset)}ct1(),lt1();return}` +
	`let z=S.insert(l);if(!S.equals(z)){if(S.text!==z.text)Q(z.text);T(z.offset)}}`

func handler(form scans.MarkerForm) string {
	return strings.ReplaceAll(handlerTemplate, "⌫", string(form))
}

var ignoreLocation = cmpopts.IgnoreFields(Bindings{}, "Anchor", "Form")

func TestResolve(t *testing.T) {
	want := Bindings{
		Input:    "l",
		State:    "CA",
		CurState: "S",
		TextFn:   "Q",
		OffsetFn: "T",
		Count:    "$A",
	}
	for _, form := range scans.MarkerForms {
		text := handler(form)
		got, err := NewResolver().Resolve(text)
		if err != nil {
			t.Fatalf("%q: %v", form, err)
		}
		if diff := cmp.Diff(want, got, ignoreLocation); diff != "" {
			t.Fatalf("%q: %s", form, diff)
		}
		if got.Form != form {
			t.Fatalf("got form %q, want %q", got.Form, form)
		}
		if anchor := text[got.Anchor.Start:got.Anchor.End]; !strings.HasPrefix(anchor, "l.includes(") {
			t.Fatalf("got anchor %q", anchor)
		}
	}
}

func TestResolvePrefersRawMarker(t *testing.T) {
	text := handler(`\x7f`) + ";" + handler(scans.Marker)
	got, err := NewResolver().Resolve(text)
	if err != nil {
		t.Fatal(err)
	}
	if got.Form != scans.Marker {
		t.Fatalf("got %q", got.Form)
	}
	if got.Anchor.Start < len(handler(`\x7f`)) {
		t.Fatalf("anchor %v bound to the escaped handler", got.Anchor)
	}
}

func TestResolveDeterministic(t *testing.T) {
	text := handler(scans.Marker)
	first, err := NewResolver().Resolve(text)
	if err != nil {
		t.Fatal(err)
	}
	for range 10 {
		got, err := NewResolver().Resolve(text)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(first, got); diff != "" {
			t.Fatal(diff)
		}
	}
}

func TestResolveUnguardedTextCommit(t *testing.T) {
	text := strings.ReplaceAll(handler(scans.Marker), "if(S.text!==CA.text)Q(CA.text)", "Q(CA.text)")
	got, err := NewResolver().Resolve(text)
	if err != nil {
		t.Fatal(err)
	}
	if got.TextFn != "Q" {
		t.Fatalf("got %q", got.TextFn)
	}
}

func TestResolveDollarNames(t *testing.T) {
	text := handler(scans.Marker)
	text = strings.ReplaceAll(text, "CA", "C$")
	text = strings.ReplaceAll(text, "Q(", "$Q(")
	got, err := NewResolver().Resolve(text)
	if err != nil {
		t.Fatal(err)
	}
	if got.State != "C$" || got.TextFn != "$Q" {
		t.Fatalf("got %+v", got)
	}
}

func TestResolveMemberReceiverIgnored(t *testing.T) {
	text := `x.l.includes("` + scans.Marker + `");` + handler(scans.Marker)
	got, err := NewResolver().Resolve(text)
	if err != nil {
		t.Fatal(err)
	}
	if got.Input != "l" || got.Anchor.Start < 5 {
		t.Fatalf("got %+v", got)
	}
}

func TestResolveFailures(t *testing.T) {
	cases := map[string]string{
		"no anchor":      "function f(a){return a+1}",
		"no declaration": strings.Replace(handler(scans.Marker), "let $A=(l.match", "let $A=(k.match", 1),
		"no offset commit": strings.ReplaceAll(
			handler(scans.Marker), "T(CA.offset)", "T.x(CA.offset)",
		),
		"no text commit": strings.ReplaceAll(
			handler(scans.Marker), "Q(CA.text)", "Q.y(CA.text)",
		),
		"empty": "",
	}
	for name, text := range cases {
		_, err := NewResolver().Resolve(text)
		if !errors.Is(err, ErrPatternNotFound) {
			t.Fatalf("%s: got %v", name, err)
		}
	}
}

func TestResolveWindowBounded(t *testing.T) {
	text := handler(scans.Marker)
	// push the declaration out of the lookahead window
	idx := strings.Index(text, "{let $A")
	far := text[:idx+1] + strings.Repeat(";", 2000) + text[idx+1:]
	if _, err := NewResolver().Resolve(far); !errors.Is(err, ErrPatternNotFound) {
		t.Fatalf("got %v", err)
	}
	wide := Resolver{Lookbehind: 500, Lookahead: 4000}
	if _, err := wide.Resolve(far); err != nil {
		t.Fatal(err)
	}
}

func TestValidate(t *testing.T) {
	b := Bindings{
		Input: "l", State: "CA", CurState: "S",
		TextFn: "Q", OffsetFn: "T", Count: "$A",
	}
	if err := b.Validate(); err != nil {
		t.Fatal(err)
	}
	b.TextFn = "a.b"
	if err := b.Validate(); !errors.Is(err, ErrInvalidBinding) {
		t.Fatalf("got %v", err)
	}
	b.TextFn = ""
	if err := b.Validate(); !errors.Is(err, ErrInvalidBinding) {
		t.Fatalf("got %v", err)
	}
}
