package prompt

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestIntInRange_ReAsksUntilValid(t *testing.T) {
	out := &bytes.Buffer{}
	p := New(strings.NewReader("abc\n42\n-1\n7\n"), out)

	value, err := p.IntInRange("Please input the target color mode index (0 to 9): ", 0, 9)
	if err != nil {
		t.Fatalf("IntInRange returned error: %v", err)
	}
	if value != 7 {
		t.Fatalf("value = %d, want 7", value)
	}

	text := out.String()
	if !strings.Contains(text, "The input value is not a number.") {
		t.Fatalf("output %q lacks the not-a-number message", text)
	}
	if !strings.Contains(text, "The entered number is out of the range of 0 to 9.") {
		t.Fatalf("output %q lacks the out-of-range message", text)
	}
}

func TestInt_ReAsksOnNonNumeric(t *testing.T) {
	out := &bytes.Buffer{}
	p := New(strings.NewReader("x\n\n120\n"), out)

	value, err := p.Int("Please input the x coordinate of target pixel: ")
	if err != nil {
		t.Fatalf("Int returned error: %v", err)
	}
	if value != 120 {
		t.Fatalf("value = %d, want 120", value)
	}
}

func TestYesNo(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Yes\n", true},
		{"n\n", false},
		{"NO\n", false},
		{"maybe\nyes\n", true},
	}

	for _, tc := range cases {
		out := &bytes.Buffer{}
		got, err := New(strings.NewReader(tc.input), out).YesNo("")
		if err != nil {
			t.Fatalf("YesNo(%q) returned error: %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("YesNo(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}

	out := &bytes.Buffer{}
	if _, err := New(strings.NewReader("maybe\nyes\n"), out).YesNo(""); err != nil {
		t.Fatalf("YesNo returned error: %v", err)
	}
	if !strings.Contains(out.String(), "Please input [Y]es/[N]o.") {
		t.Fatalf("output %q lacks the invalid-answer message", out.String())
	}
}

func TestChoice_CaseInsensitiveAndReAsks(t *testing.T) {
	out := &bytes.Buffer{}
	p := New(strings.NewReader("bogus\nrun\n"), out)

	got, err := p.Choice("Please input SelfCalibration action. [RUN]/[STOP]: ", "Specified action is invalid.", "RUN", "STOP")
	if err != nil {
		t.Fatalf("Choice returned error: %v", err)
	}
	if got != "RUN" {
		t.Fatalf("Choice = %q, want RUN", got)
	}
	if !strings.Contains(out.String(), "Specified action is invalid.") {
		t.Fatalf("output %q lacks the invalid-action message", out.String())
	}
}

func TestPrompt_EOF(t *testing.T) {
	p := New(strings.NewReader(""), io.Discard)

	if _, err := p.Int("n: "); err != io.EOF {
		t.Fatalf("Int on empty input = %v, want io.EOF", err)
	}
}
