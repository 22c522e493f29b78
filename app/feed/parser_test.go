package feed

import (
	"encoding/json"
	"testing"
)

const minimalItem = `
    <item>
      <title>Episode One</title>
      <description>First episode</description>
      <guid>ep-1</guid>
      <enclosure url="https://example.com/ep1.mp3" length="1024" type="audio/mpeg"/>
      <pubDate>Mon, 03 Jul 2023 10:00:00 GMT</pubDate>
    </item>`

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Expected no marshal error, got: %v", err)
	}
	return string(b)
}

func TestParseRSS2(t *testing.T) {
	data := `<?xml version="1.0"?>
<rss version="2.0" xmlns:itunes="http://www.itunes.com/dtds/podcast-1.0.dtd">
  <channel>
    <title>Test Podcast</title>
    <link>https://example.com</link>
    <description>Test Description</description>
    <language>EN-us</language>
    <generator>podgen 1.0</generator>
    <itunes:explicit>yes</itunes:explicit>
    <itunes:author>Jane Host</itunes:author>
    <itunes:owner>
      <itunes:name>Jane Host</itunes:name>
      <itunes:email>jane@example.com</itunes:email>
    </itunes:owner>
    <image>
      <url>https://example.com/cover.png</url>
      <title>Test Podcast</title>
      <link>https://example.com</link>
    </image>` + minimalItem + `
    <item>
      <title>Episode Two</title>
      <description>Second episode</description>
      <guid>ep-2</guid>
      <enclosure url="https://example.com/ep2.mp3" length="2048" type="audio/mpeg"/>
      <pubDate>Tue, 04 Jul 2023 10:00:00 GMT</pubDate>
    </item>
  </channel>
</rss>`

	f := NewParser().Parse([]byte(data))
	if f == nil {
		t.Fatal("Expected feed, got nil")
	}

	if f.Title != "Test Podcast" {
		t.Errorf("Expected title 'Test Podcast', got: %s", f.Title)
	}
	if f.Link != "https://example.com" {
		t.Errorf("Expected link 'https://example.com', got: %s", f.Link)
	}
	if f.Language != "en-US" {
		t.Errorf("Expected normalized language 'en-US', got: %s", f.Language)
	}
	if !f.Explicit {
		t.Error("Expected explicit flag")
	}
	if f.Owner == nil || f.Owner.Email != "jane@example.com" {
		t.Errorf("Expected owner email, got: %+v", f.Owner)
	}
	if f.Image == nil || f.Image.URL != "https://example.com/cover.png" {
		t.Errorf("Expected image URL, got: %+v", f.Image)
	}

	if len(f.Episodes) != 2 {
		t.Fatalf("Expected 2 episodes, got: %d", len(f.Episodes))
	}
	if f.Episodes[0].GUID != "ep-1" {
		t.Errorf("Expected guid 'ep-1', got: %s", f.Episodes[0].GUID)
	}
	if f.Episodes[0].Enclosure.Length != 1024 {
		t.Errorf("Expected enclosure length 1024, got: %d", f.Episodes[0].Enclosure.Length)
	}

	if f.NewestItemPubDate == nil || f.OldestItemPubDate == nil {
		t.Fatal("Expected item date range to be derived")
	}
	if !f.NewestItemPubDate.After(*f.OldestItemPubDate) {
		t.Error("Expected newest item date after oldest")
	}
	// The feed had no pubDate of its own and inherits the newest item's.
	if f.PubDate == nil || !f.PubDate.Equal(*f.NewestItemPubDate) {
		t.Errorf("Expected feed pubDate inherited from newest item, got: %v", f.PubDate)
	}
}

func TestParseAtom(t *testing.T) {
	data := `<?xml version="1.0" encoding="utf-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Test Atom Feed</title>
  <subtitle>An atom feed</subtitle>
  <link href="https://example.com"/>
  <link rel="self" href="https://example.com/feed.xml"/>
  <updated>2023-07-03T12:00:00Z</updated>
  <id>urn:uuid:1234</id>
  <logo>https://example.com/logo.png</logo>
  <entry>
    <title>Test Entry</title>
    <id>entry-1</id>
    <summary>Entry summary</summary>
    <link rel="enclosure" href="https://example.com/entry1.mp3" length="512" type="audio/mpeg"/>
    <updated>2023-07-03T11:00:00Z</updated>
  </entry>
</feed>`

	f := NewParser().Parse([]byte(data))
	if f == nil {
		t.Fatal("Expected feed, got nil")
	}

	if f.Title != "Test Atom Feed" {
		t.Errorf("Expected title 'Test Atom Feed', got: %s", f.Title)
	}
	if f.Description != "An atom feed" {
		t.Errorf("Expected subtitle fallback for description, got: %s", f.Description)
	}
	if f.Link != "https://example.com" {
		t.Errorf("Expected href-attribute link, got: %s", f.Link)
	}
	if f.SelfURL != "https://example.com/feed.xml" {
		t.Errorf("Expected self URL, got: %s", f.SelfURL)
	}
	if f.Image == nil || f.Image.URL != "https://example.com/logo.png" {
		t.Errorf("Expected logo fallback image, got: %+v", f.Image)
	}

	if len(f.Episodes) != 1 {
		t.Fatalf("Expected 1 episode, got: %d", len(f.Episodes))
	}
	e := f.Episodes[0]
	if e.GUID != "entry-1" {
		t.Errorf("Expected Atom id as guid, got: %s", e.GUID)
	}
	if e.Enclosure.URL != "https://example.com/entry1.mp3" {
		t.Errorf("Expected rel=enclosure link, got: %s", e.Enclosure.URL)
	}
	if e.Description != "Entry summary" {
		t.Errorf("Expected summary fallback, got: %s", e.Description)
	}
}

func TestParseDocumentFatal(t *testing.T) {
	if f := NewParser().Parse([]byte("not xml at all")); f != nil {
		t.Error("Expected nil for malformed input")
	}
	if f := NewParser().Parse([]byte("")); f != nil {
		t.Error("Expected nil for empty input")
	}
	if f := NewParser().Parse([]byte("<opml><body/></opml>")); f != nil {
		t.Error("Expected nil for non-feed XML")
	}
	if f := NewParser().Parse([]byte(`<rss version="2.0"></rss>`)); f != nil {
		t.Error("Expected nil for rss without channel")
	}
}

func TestItemValidity(t *testing.T) {
	data := `<rss version="2.0">
  <channel>
    <title>Validity</title>
    <item>
      <guid>no-enclosure</guid>
      <title>Missing enclosure</title>
    </item>
    <item>
      <title>Missing guid</title>
      <description>text</description>
      <enclosure url="https://example.com/a.mp3" length="1" type="audio/mpeg"/>
    </item>
    <item>
      <guid>no-text</guid>
      <enclosure url="https://example.com/b.mp3" length="1" type="audio/mpeg"/>
    </item>
    <item>
      <guid>ok</guid>
      <description>described</description>
      <enclosure url="https://example.com/c.mp3" length="1" type="audio/mpeg"/>
    </item>
  </channel>
</rss>`

	f := NewParser().Parse([]byte(data))
	if f == nil {
		t.Fatal("Expected feed, got nil")
	}
	if len(f.Episodes) != 1 {
		t.Fatalf("Expected 1 valid episode, got: %d", len(f.Episodes))
	}
	if f.Episodes[0].GUID != "ok" {
		t.Errorf("Expected surviving episode 'ok', got: %s", f.Episodes[0].GUID)
	}
	if f.Episodes[0].Title != "" {
		t.Errorf("Expected empty title to survive validation, got: %s", f.Episodes[0].Title)
	}

	lenient := NewParser(WithLenientGUID()).Parse([]byte(data))
	if len(lenient.Episodes) != 2 {
		t.Errorf("Expected 2 episodes with lenient guid, got: %d", len(lenient.Episodes))
	}
}

func TestMinimalEpisodeDefaults(t *testing.T) {
	data := `<rss version="2.0">
  <channel>
    <title>Minimal</title>
    <item>
      <guid>bare</guid>
      <description>bare item</description>
      <enclosure url="https://example.com/bare.mp3" length="10" type="audio/mpeg"/>
    </item>
  </channel>
</rss>`

	f := NewParser().Parse([]byte(data))
	if f == nil {
		t.Fatal("Expected feed, got nil")
	}
	if len(f.Episodes) != 1 {
		t.Fatalf("Expected 1 episode, got: %d", len(f.Episodes))
	}
	e := f.Episodes[0]
	if e.Title != "" {
		t.Errorf("Expected empty title, got: %s", e.Title)
	}
	if e.Duration != 0 {
		t.Errorf("Expected zero duration for absent tag, got: %d", e.Duration)
	}
	if e.Explicit {
		t.Error("Expected explicit false")
	}
	if len(e.Transcripts) != 0 || e.Value != nil || e.Season != nil {
		t.Error("Expected no extension fields on a bare item")
	}
	if len(f.Support) != 0 {
		t.Errorf("Expected empty support record, got: %v", f.Support)
	}
}

func TestDescriptionFallbackOrdering(t *testing.T) {
	onlySummary := `<rss version="2.0" xmlns:itunes="http://www.itunes.com/dtds/podcast-1.0.dtd">
  <channel>
    <title>F</title>
    <itunes:summary>  summary
    text  </itunes:summary>
  </channel>
</rss>`
	f := NewParser().Parse([]byte(onlySummary))
	if f.Description != "summary text" {
		t.Errorf("Expected collapsed summary fallback, got: %q", f.Description)
	}

	both := `<rss version="2.0" xmlns:itunes="http://www.itunes.com/dtds/podcast-1.0.dtd">
  <channel>
    <title>F</title>
    <description>the description</description>
    <itunes:summary>the summary</itunes:summary>
  </channel>
</rss>`
	f = NewParser().Parse([]byte(both))
	if f.Description != "the description" {
		t.Errorf("Expected description to win over summary, got: %q", f.Description)
	}
}

func TestParseIdempotence(t *testing.T) {
	data := `<rss version="2.0" xmlns:podcast="https://podcastindex.org/namespace/1.0" xmlns:itunes="http://www.itunes.com/dtds/podcast-1.0.dtd">
  <channel>
    <title>Stable</title>
    <description>d</description>
    <podcast:person>Alice</podcast:person>
    <podcast:person role="guest">Bob</podcast:person>
    <podcast:funding url="https://example.com/f1">One</podcast:funding>
    <podcast:funding url="https://example.com/f2">Two</podcast:funding>
    <itunes:category text="Technology"/>
    <itunes:category text="Society &amp; Culture">
      <itunes:category text="Philosophy"/>
    </itunes:category>` + minimalItem + `
  </channel>
</rss>`

	p := NewParser()
	a := p.Parse([]byte(data))
	b := p.Parse([]byte(data))
	if a == nil || b == nil {
		t.Fatal("Expected both parses to succeed")
	}

	if mustJSON(t, a) != mustJSON(t, b) {
		t.Error("Expected deep-equal results across repeated parses")
	}

	if len(a.Persons) != 2 || a.Persons[0].Name != "Alice" || a.Persons[1].Name != "Bob" {
		t.Errorf("Expected two persons in document order, got: %+v", a.Persons)
	}
	if len(a.Fundings) != 2 || a.Fundings[0].URL != "https://example.com/f1" {
		t.Errorf("Expected two fundings in document order, got: %+v", a.Fundings)
	}
	if len(a.ItunesCategories) != 3 {
		t.Errorf("Expected 3 taxonomy paths, got: %v", a.ItunesCategories)
	}
}
