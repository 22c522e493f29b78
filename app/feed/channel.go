package feed

import (
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/feedshape/feed-shape/app/taxonomy"
	"github.com/feedshape/feed-shape/app/xmlnode"
)

// The base feed handler assembles the common RSS-2.0 and baseline-extension
// fields from a channel (or Atom feed) node. Every field has its own small
// function with an explicit fallback order so chains can change
// independently.

func baseFeed(channel *xmlnode.Node) *Feed {
	return &Feed{
		Title:            xmlnode.CollapseWhitespace(channel.ChildText("title")),
		Link:             resolveLink(channel),
		Description:      feedDescription(channel),
		Language:         normalizeLanguage(channel.ChildText("language")),
		Generator:        xmlnode.CollapseWhitespace(channel.ChildText("generator")),
		PubDate:          feedPubDate(channel),
		LastBuildDate:    parseDateChild(channel, "lastBuildDate"),
		Explicit:         explicitFlag(channel),
		Author:           xmlnode.CollapseWhitespace(channel.ChildText("itunes:author")),
		Owner:            feedOwner(channel),
		Type:             strings.ToLower(channel.ChildText("itunes:type")),
		Image:            feedImage(channel),
		ItunesCategories: itunesCategories(channel),
		Categories:       flatCategories(channel),
		Support:          Support{},
	}
}

func feedDescription(n *xmlnode.Node) string {
	for _, tag := range []string{"description", "itunes:summary", "subtitle"} {
		if t := n.ChildText(tag); t != "" {
			return xmlnode.CollapseWhitespace(t)
		}
	}
	return ""
}

// resolveLink handles the three ways feeds declare their canonical link:
// a textual <link>, an attributed <link href=...> (Atom), or a bare <url>.
func resolveLink(n *xmlnode.Node) string {
	if t := n.ChildText("link"); t != "" {
		return t
	}
	if l := xmlnode.FirstWithAttrs(n.Child("link"), "href"); l != nil {
		return l.MustAttr("href")
	}
	if t := n.ChildText("url"); t != "" {
		return t
	}
	return ""
}

func feedPubDate(n *xmlnode.Node) *time.Time {
	for _, tag := range []string{"pubDate", "lastBuildDate", "updated"} {
		if t := parseDateChild(n, tag); t != nil {
			return t
		}
	}
	return nil
}

func parseDateChild(n *xmlnode.Node, tag string) *time.Time {
	if t, ok := xmlnode.DateToTime(n.ChildText(tag)); ok {
		return &t
	}
	return nil
}

func explicitFlag(n *xmlnode.Node) bool {
	switch strings.ToLower(n.ChildText("itunes:explicit")) {
	case "yes", "true", "explicit":
		return true
	}
	return false
}

func feedOwner(n *xmlnode.Node) *Owner {
	o := xmlnode.First(n.Child("itunes:owner"))
	if o == nil {
		return nil
	}
	owner := &Owner{
		Name:  firstChildText(o, "itunes:name", "name"),
		Email: firstChildText(o, "itunes:email", "email"),
	}
	if owner.Name == "" && owner.Email == "" {
		return nil
	}
	return owner
}

// feedImage resolves artwork across the three spellings, in priority order:
// a structured <image> with a non-empty <url>, an <itunes:image> in any of
// its three forms, then an Atom <logo>.
func feedImage(n *xmlnode.Node) *Image {
	for _, img := range n.Child("image") {
		u := img.ChildText("url")
		if u == "" {
			continue
		}
		im := &Image{
			URL:   xmlnode.SanitizeURL(u),
			Title: img.ChildText("title"),
			Link:  img.ChildText("link"),
		}
		if w, ok := xmlnode.FirstWithText(img.Child("width")).Number(); ok {
			im.Width = int(w)
		}
		if h, ok := xmlnode.FirstWithText(img.Child("height")).Number(); ok {
			im.Height = int(h)
		}
		return im
	}
	if u := itunesImageURL(n); u != "" {
		return &Image{URL: u}
	}
	if u := n.ChildText("logo"); u != "" {
		return &Image{URL: xmlnode.SanitizeURL(u)}
	}
	return nil
}

// itunesImageURL accepts an href attribute, a nested <url>, or direct text.
func itunesImageURL(n *xmlnode.Node) string {
	for _, img := range n.Child("itunes:image") {
		if href, ok := img.Attr("href"); ok && href != "" {
			return xmlnode.SanitizeURL(href)
		}
		if u := img.ChildText("url"); u != "" {
			return xmlnode.SanitizeURL(u)
		}
		if t := img.Value(); t != "" {
			return xmlnode.SanitizeURL(t)
		}
	}
	return ""
}

// itunesCategories walks nested <itunes:category text=...> declarations,
// recording the " > "-joined ancestry at each level to a depth of two,
// dropping anything the taxonomy does not recognize.
func itunesCategories(n *xmlnode.Node) []string {
	seen := make(map[string]bool)
	var out []string
	record := func(path string) {
		canonical, ok := taxonomy.Lookup(path)
		if !ok || seen[canonical] {
			return
		}
		seen[canonical] = true
		out = append(out, canonical)
	}

	for _, top := range n.Child("itunes:category") {
		parent, ok := top.Attr("text")
		if !ok || parent == "" {
			continue
		}
		record(parent)
		for _, sub := range top.Child("itunes:category") {
			child, ok := sub.Attr("text")
			if !ok || child == "" {
				continue
			}
			record(parent + " > " + child)
		}
	}
	return out
}

// flatCategories runs every free-text category declaration through the flat
// slug classifier and dedupes across declarations, in document order.
func flatCategories(n *xmlnode.Node) []string {
	seen := make(map[string]bool)
	var out []string
	ingest := func(raw string) {
		for _, slug := range taxonomy.Classify(raw) {
			if !seen[slug] {
				seen[slug] = true
				out = append(out, slug)
			}
		}
	}

	for _, c := range n.Child("category") {
		if t := c.Value(); t != "" {
			ingest(t)
		}
	}
	for _, c := range n.Child("itunes:category") {
		if t, ok := c.Attr("text"); ok && t != "" {
			ingest(t)
		}
		for _, sub := range c.Child("itunes:category") {
			if t, ok := sub.Attr("text"); ok && t != "" {
				ingest(t)
			}
		}
	}
	return out
}

// normalizeLanguage canonicalizes BCP-47-ish language declarations
// ("EN-us" becomes "en-US"); unparseable values are kept lower-cased.
func normalizeLanguage(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return strings.ToLower(raw)
	}
	return tag.String()
}

func firstChildText(n *xmlnode.Node, tags ...string) string {
	for _, tag := range tags {
		if t := n.ChildText(tag); t != "" {
			return t
		}
	}
	return ""
}
