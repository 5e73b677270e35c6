package kicadsexp

import (
	"strings"
	"testing"
)

func TestParseString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "atom", input: "pcbnew", want: "pcbnew"},
		{name: "nested", input: "(at 1 (xy 2 3))", want: "(at 1 (xy 2 3))"},
		{name: "quoted string loses quotes", input: `(layer "F.Cu")`, want: "(layer F.Cu)"},
		{name: "string with spaces", input: `(title "Example Board")`, want: "(title Example Board)"},
		{name: "escaped quote", input: `(descr "a \"b\"")`, want: `(descr a "b")`},
		{name: "empty string", input: `(net 0 "")`, want: "(net 0 )"},
		{name: "comment skipped", input: "# header\n(a b)", want: "(a b)"},
		{name: "unterminated list", input: "(a (b c)", wantErr: true},
		{name: "unterminated string", input: `(a "b`, wantErr: true},
		{name: "stray close", input: ")", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseString(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseString(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseString(%q) unexpected error: %v", tt.input, err)
			}
			if len(got) != 1 {
				t.Fatalf("ParseString(%q) returned %d expressions, want 1", tt.input, len(got))
			}
			if got[0].String() != tt.want {
				t.Errorf("ParseString(%q) = %s, want %s", tt.input, got[0].String(), tt.want)
			}
		})
	}
}

func TestQuotedStringIsSingleSymbol(t *testing.T) {
	got, err := ParseString(`(title "Example Board")`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	list := got[0].(*List)
	if list.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", list.Len())
	}
	if sym, ok := list.Get(1).(Symbol); !ok || sym != "Example Board" {
		t.Errorf("Get(1) = %#v, want Symbol(\"Example Board\")", list.Get(1))
	}
}

func TestParseErrorReportsLine(t *testing.T) {
	_, err := ParseString("(a\n(b\n")
	if err == nil {
		t.Fatal("expected error")
	}
	if want := "line 2"; !strings.Contains(err.Error(), want) {
		t.Errorf("error %q does not mention %q", err, want)
	}
}

func TestMultipleTopLevel(t *testing.T) {
	got, err := ParseString("(a) (b c)\n(d)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("got %d expressions, want 3", len(got))
	}
}
