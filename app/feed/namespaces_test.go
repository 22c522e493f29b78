package feed

import (
	"testing"
)

func TestCustomAliasForAtomNamespace(t *testing.T) {
	data := `<rss version="2.0" xmlns:a10="http://www.w3.org/2005/Atom">
  <channel>
    <title>Aliased</title>
    <description>d</description>
    <a10:link rel="self" href="https://example.com/feed.xml"/>
    <a10:link rel="hub" href="https://hub.example.com/"/>
    <a10:link rel="next" href="https://example.com/feed.xml?page=2"/>
  </channel>
</rss>`

	f := NewParser().Parse([]byte(data))
	if f == nil {
		t.Fatal("Expected feed, got nil")
	}
	if f.SelfURL != "https://example.com/feed.xml" {
		t.Errorf("Expected self URL through custom alias, got: %s", f.SelfURL)
	}
	if f.HubURL != "https://hub.example.com/" {
		t.Errorf("Expected hub URL, got: %s", f.HubURL)
	}
	if f.NextURL != "https://example.com/feed.xml?page=2" {
		t.Errorf("Expected next URL, got: %s", f.NextURL)
	}
}

func TestUndeclaredAtomPrefixConvention(t *testing.T) {
	// Historical RSS feeds use atom:link without declaring the namespace.
	data := `<rss version="2.0">
  <channel>
    <title>Legacy</title>
    <description>d</description>
    <atom:link rel="self" href="https://legacy.example.com/feed.xml"/>
  </channel>
</rss>`

	f := NewParser().Parse([]byte(data))
	if f == nil {
		t.Fatal("Expected feed, got nil")
	}
	if f.SelfURL != "https://legacy.example.com/feed.xml" {
		t.Errorf("Expected conventional atom prefix to resolve, got: %s", f.SelfURL)
	}
}

func TestUnregisteredNamespaceIgnored(t *testing.T) {
	data := `<rss version="2.0" xmlns:weird="https://example.org/weird/1.0">
  <channel>
    <title>Odd</title>
    <description>d</description>
    <weird:link rel="self" href="https://example.com/should-not-resolve"/>
    <weird:thing frobnicate="yes"/>
  </channel>
</rss>`

	f := NewParser().Parse([]byte(data))
	if f == nil {
		t.Fatal("Expected feed, got nil")
	}
	if f.SelfURL != "" {
		t.Errorf("Expected unregistered namespace to be ignored, got: %s", f.SelfURL)
	}
}

func TestGenericRelLink(t *testing.T) {
	data := `<rss version="2.0">
  <channel>
    <title>Generic</title>
    <description>d</description>
    <link>https://example.com</link>
    <link rel="self" href="https://example.com/rss"/>
  </channel>
</rss>`

	f := NewParser().Parse([]byte(data))
	if f == nil {
		t.Fatal("Expected feed, got nil")
	}
	if f.SelfURL != "https://example.com/rss" {
		t.Errorf("Expected rel link on generic link tag, got: %s", f.SelfURL)
	}
	if f.Link != "https://example.com" {
		t.Errorf("Expected textual link untouched, got: %s", f.Link)
	}
}
