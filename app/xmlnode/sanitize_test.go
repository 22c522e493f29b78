package xmlnode

import (
	"strings"
	"testing"
)

func TestCollapseWhitespace(t *testing.T) {
	if got := CollapseWhitespace("  a \t b\n\nc  "); got != "a b c" {
		t.Errorf("Expected 'a b c', got: %q", got)
	}
	if got := CollapseWhitespace(""); got != "" {
		t.Errorf("Expected empty string, got: %q", got)
	}
}

func TestStripLineBreaks(t *testing.T) {
	if got := StripLineBreaks("line one\r\nline two\nline three"); got != "line one line two line three" {
		t.Errorf("Expected single line, got: %q", got)
	}
}

func TestDurationToSeconds(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"0", 0},
		{"90", 90},
		{"1:30", 90},
		{"01:02:03", 3723},
		{"aa", DefaultDurationSeconds},
		{"1:aa", DefaultDurationSeconds},
		{"nan", DefaultDurationSeconds},
		{"NaN", DefaultDurationSeconds},
		{"Inf", DefaultDurationSeconds},
		{"-Inf", DefaultDurationSeconds},
		{"1:inf", DefaultDurationSeconds},
		{"1:2:3:4", DefaultDurationSeconds},
		{"", DefaultDurationSeconds},
		{" 600 ", 600},
	}
	for _, c := range cases {
		if got := DurationToSeconds(c.in); got != c.want {
			t.Errorf("DurationToSeconds(%q): expected %d, got: %d", c.in, c.want, got)
		}
	}
}

func TestSanitizeURLTruncation(t *testing.T) {
	long := "https://example.com/" + strings.Repeat("a", 800)
	got := SanitizeURL(long)
	if len(got) != MaxURLLength {
		t.Errorf("Expected %d characters, got: %d", MaxURLLength, len(got))
	}
	if !strings.HasPrefix(got, "https://example.com/") {
		t.Errorf("Expected original prefix to survive, got: %q", got[:30])
	}
}

func TestSanitizeURLNonASCII(t *testing.T) {
	got := SanitizeURL("https://example.com/café")
	if !isASCII(got) {
		t.Errorf("Expected ASCII-only result, got: %q", got)
	}
	// UTF-8 e-acute is two bytes, each percent-encoded.
	if got != "https://example.com/caf%C3%A9" {
		t.Errorf("Expected percent-encoded URL, got: %q", got)
	}

	short := SanitizeURL("  https://example.com/plain  ")
	if short != "https://example.com/plain" {
		t.Errorf("Expected trimmed URL, got: %q", short)
	}
}

func TestDateToTime(t *testing.T) {
	if ts, ok := DateToTime("Mon, 03 Jul 2023 10:00:00 GMT"); !ok || ts.Year() != 2023 {
		t.Errorf("Expected RFC-2822 date to parse, got: %v (%v)", ts, ok)
	}
	if ts, ok := DateToTime("2023-07-03T12:00:00Z"); !ok || ts.Month() != 7 {
		t.Errorf("Expected ISO date to parse, got: %v (%v)", ts, ok)
	}
	if _, ok := DateToTime("next tuesday-ish"); ok {
		t.Error("Expected unparseable date to report absent")
	}
	if _, ok := DateToTime("   "); ok {
		t.Error("Expected blank date to report absent")
	}
}
