package xmlnode

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// MaxURLLength is the hard ceiling applied to every sanitized URL.
const MaxURLLength = 768

// DefaultDurationSeconds is used when a duration tag is present but cannot
// be parsed in any supported form. 30 minutes.
const DefaultDurationSeconds = 1800

// CollapseWhitespace trims the string and collapses every run of whitespace
// (including newlines and tabs) to a single space.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// StripLineBreaks replaces line breaks with spaces and collapses the result.
func StripLineBreaks(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return CollapseWhitespace(s)
}

// SanitizeURL percent-encodes non-ASCII bytes, re-checks the result and
// replaces any remaining non-ASCII with a space, then truncates to
// MaxURLLength. It never rejects a URL outright; downstream validity checks
// decide whether the value is usable.
func SanitizeURL(raw string) string {
	s := strings.TrimSpace(raw)
	if !isASCII(s) {
		s = percentEncodeNonASCII(s)
		if !isASCII(s) {
			s = replaceNonASCII(s)
		}
	}
	if len(s) > MaxURLLength {
		s = s[:MaxURLLength]
	}
	return s
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

const upperhex = "0123456789ABCDEF"

func percentEncodeNonASCII(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 0x80 {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0xf])
	}
	return b.String()
}

func replaceNonASCII(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] < 0x80 {
			b.WriteByte(s[i])
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// DurationToSeconds parses "SS", "MM:SS" and "HH:MM:SS" duration strings, as
// well as bare numbers. Anything unparseable yields DefaultDurationSeconds;
// a NaN or an error is never produced. Callers decide separately what an
// absent tag means (typically zero).
func DurationToSeconds(s string) int {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, ":")

	switch len(parts) {
	case 1:
		v, err := parseDurationPart(parts[0])
		if err != nil {
			return DefaultDurationSeconds
		}
		return v
	case 2:
		m, errM := parseDurationPart(parts[0])
		sec, errS := parseDurationPart(parts[1])
		if errM != nil || errS != nil {
			return DefaultDurationSeconds
		}
		return m*60 + sec
	case 3:
		h, errH := parseDurationPart(parts[0])
		m, errM := parseDurationPart(parts[1])
		sec, errS := parseDurationPart(parts[2])
		if errH != nil || errM != nil || errS != nil {
			return DefaultDurationSeconds
		}
		return h*3600 + m*60 + sec
	default:
		return DefaultDurationSeconds
	}
}

func parseDurationPart(s string) (int, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	// ParseFloat accepts "NaN" and "Inf" literals; int(NaN) is a garbage
	// value, so treat them as unparseable and let the default fire.
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite duration part: %q", s)
	}
	return int(v), nil
}

// DateToTime parses RFC-2822 and ISO-shaped date strings. Unparseable or
// empty input yields a false second return rather than a zero-value time
// being mistaken for a real instant.
func DateToTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
