package xmlnode

import (
	"testing"
)

func TestParseBuildsChildLists(t *testing.T) {
	data := `<?xml version="1.0"?>
<rss version="2.0">
  <channel>
    <title>Test Feed</title>
    <item><guid>one</guid></item>
    <item><guid>two</guid></item>
    <item><guid>three</guid></item>
  </channel>
</rss>`

	root, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	rss := First(root.Child("rss"))
	if rss == nil {
		t.Fatal("Expected rss element")
	}
	if v := rss.AttrOr("version", ""); v != "2.0" {
		t.Errorf("Expected version '2.0', got: %s", v)
	}

	channel := First(rss.Child("channel"))
	if channel == nil {
		t.Fatal("Expected channel element")
	}

	// A single occurrence and many occurrences are both plain slices.
	if got := len(channel.Child("title")); got != 1 {
		t.Errorf("Expected 1 title, got: %d", got)
	}
	items := channel.Child("item")
	if len(items) != 3 {
		t.Fatalf("Expected 3 items, got: %d", len(items))
	}
	if got := items[1].ChildText("guid"); got != "two" {
		t.Errorf("Expected guid 'two', got: %s", got)
	}
	if got := len(channel.Child("missing")); got != 0 {
		t.Errorf("Expected 0 missing children, got: %d", got)
	}
}

func TestParsePreservesPrefixes(t *testing.T) {
	data := `<rss xmlns:podcast="https://podcastindex.org/namespace/1.0">
  <channel>
    <podcast:funding url="https://example.com/support">Support us</podcast:funding>
  </channel>
</rss>`

	root, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	rss := First(root.Child("rss"))
	if _, ok := rss.Attr("xmlns:podcast"); !ok {
		t.Error("Expected xmlns:podcast declaration to survive as an attribute")
	}

	channel := First(rss.Child("channel"))
	funding := First(channel.Child("podcast:funding"))
	if funding == nil {
		t.Fatal("Expected podcast:funding child keyed by raw name")
	}
	if got := funding.Value(); got != "Support us" {
		t.Errorf("Expected funding text 'Support us', got: %s", got)
	}
	if got := funding.MustAttr("url"); got != "https://example.com/support" {
		t.Errorf("Expected funding url attribute, got: %s", got)
	}
}

func TestParseMalformed(t *testing.T) {
	if _, err := Parse([]byte("<rss><channel></rss>")); err == nil {
		t.Error("Expected error for mismatched tags")
	}
	if _, err := Parse([]byte("not xml at all")); err == nil {
		t.Error("Expected error for non-XML input")
	}
}

func TestFirstWithText(t *testing.T) {
	nodes := []*Node{
		{Text: "   "},
		{Text: "second"},
		{Text: "third"},
	}
	if got := FirstWithText(nodes).Value(); got != "second" {
		t.Errorf("Expected 'second', got: %s", got)
	}

	// No populated node falls back to the plain first.
	blank := []*Node{{Text: ""}, {Text: " "}}
	if got := FirstWithText(blank); got != blank[0] {
		t.Error("Expected fallback to first node")
	}
	if got := FirstWithText(nil); got != nil {
		t.Error("Expected nil for empty input")
	}
}

func TestFirstWithAttrs(t *testing.T) {
	nodes := []*Node{
		{Attrs: map[string]string{"url": "a"}},
		{Attrs: map[string]string{"url": "b", "type": "audio/mpeg"}},
	}
	got := FirstWithAttrs(nodes, "url", "type")
	if got != nodes[1] {
		t.Error("Expected second node carrying both attributes")
	}
	if FirstWithAttrs(nodes, "href") != nil {
		t.Error("Expected nil when no node matches")
	}
}

func TestNumber(t *testing.T) {
	if v, ok := (&Node{Text: " 42 "}).Number(); !ok || v != 42 {
		t.Errorf("Expected 42, got: %v (%v)", v, ok)
	}
	if _, ok := (&Node{Text: "forty"}).Number(); ok {
		t.Error("Expected non-numeric text to report absent")
	}
	// ParseFloat accepts these literals; they must not surface as numbers
	for _, s := range []string{"NaN", "nan", "Inf", "+Inf", "-inf", "infinity"} {
		if v, ok := (&Node{Text: s}).Number(); ok {
			t.Errorf("Expected %q to report absent, got: %v", s, v)
		}
	}
	var absent *Node
	if _, ok := absent.Number(); ok {
		t.Error("Expected nil node to report absent")
	}
}
