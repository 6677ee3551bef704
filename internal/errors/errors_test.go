package errors

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{
			name:    "invariant error",
			code:    "A001",
			wantMsg: "Unknown attribute value kind",
			wantCat: CategoryInvariant,
		},
		{
			name:    "cli error",
			code:    "A101",
			wantMsg: "Malformed attribute operation",
			wantCat: CategoryCLI,
		},
		{
			name:    "unknown error code",
			code:    "A999",
			wantMsg: "Unknown error",
			wantCat: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
		})
	}
}

func TestErrorString(t *testing.T) {
	err := New("A101").WithDetail("missing colon")
	want := "A101: Malformed attribute operation (missing colon)"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrapAndUnwrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := New("A001").Wrap(cause)

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}

	wrapped := fmt.Errorf("render: %w", err)
	if !HasCode(wrapped, "A001") {
		t.Error("HasCode should see through fmt.Errorf wrapping")
	}
	if HasCode(wrapped, "A101") {
		t.Error("HasCode matched the wrong code")
	}
	if HasCode(cause, "A001") {
		t.Error("HasCode matched a plain error")
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "A101") != nil {
		t.Error("FromError(nil) should be nil")
	}

	original := New("A102")
	if got := FromError(fmt.Errorf("ctx: %w", original), "A101"); got != original {
		t.Error("FromError should return the existing AttrsError")
	}

	plain := stderrors.New("plain")
	got := FromError(plain, "A101")
	if got.Code != "A101" || got.Wrapped != plain {
		t.Errorf("FromError(plain) = %+v", got)
	}
}

func TestFormat(t *testing.T) {
	err := New("A101").
		WithDetail(`expected "alias:name=value", got "wrapper"`).
		WithSuggestion("Separate the element alias and attribute name with a colon")

	want := "ERROR A101: Malformed attribute operation\n" +
		"\n" +
		"  expected \"alias:name=value\", got \"wrapper\"\n" +
		"\n" +
		"  Hint: Separate the element alias and attribute name with a colon\n"
	if got := err.Format(false); got != want {
		t.Errorf("Format(false) =\n%s\nwant\n%s", got, want)
	}

	colored := err.Format(true)
	if !strings.Contains(colored, colorRed) || !strings.Contains(colored, colorReset) {
		t.Error("Format(true) should contain ANSI codes")
	}
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	Fprint(&buf, stderrors.New("plain failure"), false)
	if buf.String() != "ERROR: plain failure\n" {
		t.Errorf("Fprint(plain) = %q", buf.String())
	}

	buf.Reset()
	Fprint(&buf, fmt.Errorf("wrapped: %w", New("A102")), false)
	if !strings.HasPrefix(buf.String(), "ERROR A102: Element not found\n") {
		t.Errorf("Fprint(AttrsError) = %q", buf.String())
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("one two three four five", 9)
	want := []string{"one two", "three", "four five"}
	if len(lines) != len(want) {
		t.Fatalf("wrapText() = %q, want %q", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
	if wrapText("", 10) != nil {
		t.Error("wrapText(\"\") should be nil")
	}
}
