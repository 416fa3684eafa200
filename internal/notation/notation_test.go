package notation

import (
	"reflect"
	"testing"

	"github.com/armin-ahmadii/kociemba/internal/kociemba"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want []kociemba.Move
	}{
		{"", nil},
		{"R", []kociemba.Move{kociemba.R}},
		{"R2", []kociemba.Move{kociemba.R, kociemba.R}},
		{"R'", []kociemba.Move{kociemba.R, kociemba.R, kociemba.R}},
		{"R U R' U'", []kociemba.Move{
			kociemba.R, kociemba.U, kociemba.R, kociemba.R, kociemba.R, kociemba.U, kociemba.U, kociemba.U,
		}},
	}
	for _, c := range cases {
		got, err := Parse(c.in)
		if err != nil {
			t.Errorf("Parse(%q) returned error: %v", c.in, err)
			continue
		}
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("Parse(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseRejectsUnknownFace(t *testing.T) {
	if _, err := Parse("X"); err == nil {
		t.Error("expected error for unknown face X")
	}
}

func TestParseRejectsBadModifier(t *testing.T) {
	if _, err := Parse("R3"); err == nil {
		t.Error("expected error for modifier 3")
	}
}

func TestParseRaw(t *testing.T) {
	got, err := ParseRaw("RURU")
	if err != nil {
		t.Fatalf("ParseRaw failed: %v", err)
	}
	want := []kociemba.Move{kociemba.R, kociemba.U, kociemba.R, kociemba.U}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseRaw(\"RURU\") = %v, want %v", got, want)
	}
}

func TestParseRawRejectsUnknownFace(t *testing.T) {
	if _, err := ParseRaw("RUX"); err == nil {
		t.Error("expected error for unknown face X")
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		in   []kociemba.Move
		want string
	}{
		{nil, ""},
		{[]kociemba.Move{kociemba.R}, "R"},
		{[]kociemba.Move{kociemba.R, kociemba.R}, "R2"},
		{[]kociemba.Move{kociemba.R, kociemba.R, kociemba.R}, "R'"},
		{[]kociemba.Move{kociemba.R, kociemba.R, kociemba.R, kociemba.R}, ""},
		{[]kociemba.Move{kociemba.R, kociemba.U, kociemba.U, kociemba.U}, "R U'"},
	}
	for _, c := range cases {
		if got := Format(c.in); got != c.want {
			t.Errorf("Format(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatParseRoundtrip(t *testing.T) {
	seqs := []string{"R U R' U'", "U2 D2 L2 R2 F2 B2", "R"}
	for _, s := range seqs {
		moves, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", s, err)
		}
		if got := Format(moves); got != s {
			t.Errorf("Format(Parse(%q)) = %q, want %q", s, got, s)
		}
	}
}
