package flagpath

import (
	"testing"

	"github.com/TimurManjosov/flagresolve/internal/flagerr"
)

func TestParse_FlagOnly(t *testing.T) {
	flag, path, err := Parse("flag")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if flag != "flag" {
		t.Errorf("expected flag 'flag', got %q", flag)
	}
	if len(path) != 0 {
		t.Errorf("expected empty path, got %v", path)
	}
}

func TestParse_FlagWithPath(t *testing.T) {
	flag, path, err := Parse("a.b.c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if flag != "a" {
		t.Errorf("expected flag 'a', got %q", flag)
	}
	if len(path) != 2 || path[0] != "b" || path[1] != "c" {
		t.Errorf("expected path [b c], got %v", path)
	}
}

func TestParse_AllDelimiters(t *testing.T) {
	_, _, err := Parse("...")
	if err == nil {
		t.Fatal("expected an error")
	}
	if flagerr.CodeOf(err) != flagerr.CodeGeneral {
		t.Errorf("expected GENERAL, got %s", flagerr.CodeOf(err))
	}
	if err.Error() != "Illegal path string '...'" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestParse_TrailingDelimitersDropped(t *testing.T) {
	flag, path, err := Parse("a.b.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if flag != "a" || len(path) != 1 || path[0] != "b" {
		t.Errorf("expected (a, [b]), got (%q, %v)", flag, path)
	}
}

func TestParse_InnerEmptySegmentKept(t *testing.T) {
	// "a..b" keeps the empty middle segment; it later fails field lookup
	flag, path, err := Parse("a..b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if flag != "a" || len(path) != 2 || path[0] != "" || path[1] != "b" {
		t.Errorf("expected (a, [ b]), got (%q, %v)", flag, path)
	}
}

func TestParse_Empty(t *testing.T) {
	flag, path, err := Parse("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if flag != "" || len(path) != 0 {
		t.Errorf("expected empty flag and path, got (%q, %v)", flag, path)
	}
}
