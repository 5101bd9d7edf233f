package blocks

import (
	"errors"
	"strings"
	"testing"

	"github.com/reusee/imefix/scans"
)

func TestLocateInsertionPoint(t *testing.T) {
	decoy := "function Zk(CA,T){T(CA.offset)}" + strings.Repeat(" ", 400)
	text := decoy + handler(scans.Marker)
	target, err := NewLocator().LocateInsertionPoint(text, bindings)
	if err != nil {
		t.Fatal(err)
	}
	if !target.Span.Empty() {
		t.Fatalf("got %v", target.Span)
	}
	if !strings.HasPrefix(text[target.Span.Start:], "ct1(),lt1()") {
		t.Fatalf("got %q", text[target.Span.Start:])
	}
	if !strings.HasSuffix(text[:target.Span.Start], "T(CA.offset)}") {
		t.Fatalf("got %q", text[:target.Span.Start])
	}
}

func TestLocateInsertionPointNotFound(t *testing.T) {
	text := strings.ReplaceAll(handler(scans.Marker), "CA.backspace()", "CA.left()")
	_, err := NewLocator().LocateInsertionPoint(text, bindings)
	if !errors.Is(err, ErrPointNotFound) || !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v", err)
	}
	if errors.Is(err, ErrBlockNotFound) {
		t.Fatal("point and block failures must be distinguishable")
	}
}

func TestLocateInsertionPointMemberCallIgnored(t *testing.T) {
	text := strings.ReplaceAll(handler(scans.Marker), "T(CA.offset)}", "o.T(CA.offset)}")
	if _, err := NewLocator().LocateInsertionPoint(text, bindings); !errors.Is(err, ErrPointNotFound) {
		t.Fatalf("got %v", err)
	}
}
