package feed

import (
	"strconv"
	"strings"
	"time"

	"github.com/feedshape/feed-shape/app/xmlnode"
)

// The base episode handler assembles the common item/entry fields. Extension
// rules run afterwards and never touch these fields.

func baseEpisode(item *xmlnode.Node) *Episode {
	e := &Episode{
		GUID:        episodeGUID(item),
		Title:       xmlnode.CollapseWhitespace(firstChildText(item, "title", "itunes:title")),
		Link:        resolveLink(item),
		Description: episodeDescription(item),
		Author:      xmlnode.CollapseWhitespace(firstChildText(item, "itunes:author", "author", "dc:creator")),
		ImageURL:    itunesImageURL(item),
		PubDate:     episodePubDate(item),
		Explicit:    explicitFlag(item),
		Enclosure:   episodeEnclosure(item),
	}

	// An absent duration tag means zero; a present but unparseable one
	// falls back to the documented default inside DurationToSeconds.
	if item.HasChild("itunes:duration") {
		e.Duration = xmlnode.DurationToSeconds(item.ChildText("itunes:duration"))
	}
	return e
}

func episodeGUID(item *xmlnode.Node) string {
	if g := item.ChildText("guid"); g != "" {
		return g
	}
	// Atom entries carry <id> instead.
	return item.ChildText("id")
}

func episodeDescription(item *xmlnode.Node) string {
	for _, tag := range []string{"description", "itunes:summary", "content:encoded", "content", "summary"} {
		if t := item.ChildText(tag); t != "" {
			return xmlnode.CollapseWhitespace(t)
		}
	}
	return ""
}

func episodePubDate(item *xmlnode.Node) *time.Time {
	for _, tag := range []string{"pubDate", "published", "updated"} {
		if t := parseDateChild(item, tag); t != nil {
			return t
		}
	}
	return nil
}

// episodeEnclosure reads the RSS <enclosure> element, falling back to an
// Atom <link rel="enclosure">. The declared MIME type wins; otherwise the
// URL's file extension is the last resort.
func episodeEnclosure(item *xmlnode.Node) Enclosure {
	var enc Enclosure

	if n := xmlnode.FirstWithAttrs(item.Child("enclosure"), "url"); n != nil {
		enc.URL = xmlnode.SanitizeURL(n.MustAttr("url"))
		enc.Length = parseLength(n.AttrOr("length", ""))
		enc.Type = n.AttrOr("type", "")
	} else if n := atomEnclosureLink(item); n != nil {
		enc.URL = xmlnode.SanitizeURL(n.MustAttr("href"))
		enc.Length = parseLength(n.AttrOr("length", ""))
		enc.Type = n.AttrOr("type", "")
	}

	if enc.URL != "" && enc.Type == "" {
		enc.Type = mimeByExtension(enc.URL)
	}
	return enc
}

func atomEnclosureLink(item *xmlnode.Node) *xmlnode.Node {
	for _, n := range item.Child("link") {
		if strings.EqualFold(n.AttrOr("rel", ""), "enclosure") {
			if _, ok := n.Attr("href"); ok {
				return n
			}
		}
	}
	return nil
}

func parseLength(raw string) int64 {
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return v
}
