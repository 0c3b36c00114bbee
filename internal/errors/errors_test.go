package errors

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewFromRegistry(t *testing.T) {
	err := New("F102")
	if err.Code != "F102" {
		t.Fatalf("Code = %q", err.Code)
	}
	if err.Category != CategoryConfig {
		t.Fatalf("Category = %q, want config", err.Category)
	}
	if err.Message == "" || err.DocURL == "" {
		t.Fatal("template fields not filled in")
	}
	if got := err.Error(); !strings.HasPrefix(got, "F102: ") {
		t.Fatalf("Error() = %q", got)
	}
}

func TestNewUnknownCode(t *testing.T) {
	err := New("F999")
	if err.Code != "F999" || err.Message != "Unknown error" {
		t.Fatalf("unexpected fallback: %+v", err)
	}
}

func TestWrapAndUnwrap(t *testing.T) {
	inner := stderrors.New("permission denied")
	err := New("F400").Wrap(inner)
	if !stderrors.Is(err, inner) {
		t.Fatal("errors.Is did not reach the wrapped error")
	}

	var fe *FacetError
	if !stderrors.As(error(err), &fe) {
		t.Fatal("errors.As failed")
	}
}

func TestFromErrorPassthrough(t *testing.T) {
	orig := New("F201")
	if got := FromError(orig, "F100"); got != orig {
		t.Fatal("FromError re-wrapped an existing FacetError")
	}
	if FromError(nil, "F100") != nil {
		t.Fatal("FromError(nil) != nil")
	}
}

func TestWithLocationReadsContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "facet.json")
	content := "line one\nline two\nline three\nline four\nline five\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	err := New("F101").WithLocation(path, 3, 2)
	if err.Location.String() != path+":3:2" {
		t.Fatalf("Location = %q", err.Location.String())
	}
	if len(err.Context) == 0 {
		t.Fatal("no context lines captured")
	}
	found := false
	for _, line := range err.Context {
		if line == "line three" {
			found = true
		}
	}
	if !found {
		t.Fatalf("context %v missing target line", err.Context)
	}
}

func TestFormatCompact(t *testing.T) {
	err := New("F103")
	err.Location = &Location{File: "facet.json", Line: 7}
	got := err.FormatCompact()
	want := "facet.json:7: F103: Invalid theme scheme"
	if got != want {
		t.Fatalf("FormatCompact() = %q, want %q", got, want)
	}
}

func TestFormatPlain(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New("F104").
		WithSuggestion(`use "disk" with a directory, or "s3" with a bucket`).
		WithExample(`"publish": {"target": "disk", "dir": "public"}`)
	out := err.Format()

	for _, want := range []string{"ERROR F104", "Invalid publish target", "Hint:", "Example:", "Learn more:"} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\033[") {
		t.Error("Format() contains ANSI codes with colors disabled")
	}
}

func TestRegisterDoesNotOverwrite(t *testing.T) {
	if Register("F100", ErrorTemplate{Message: "clobbered"}) {
		t.Fatal("Register overwrote a built-in code")
	}
	if !Register("X900", ErrorTemplate{Category: CategoryCLI, Message: "custom"}) {
		t.Fatal("Register rejected a fresh code")
	}
	if tpl, ok := Lookup("X900"); !ok || tpl.Message != "custom" {
		t.Fatalf("Lookup(X900) = %+v, %v", tpl, ok)
	}
}
