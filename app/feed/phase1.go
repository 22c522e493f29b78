package feed

import (
	"mime"
	"net/url"
	"path"
	"strings"

	"github.com/feedshape/feed-shape/app/xmlnode"
)

// Phase 1: locked, funding, transcript, chapters, soundbite.

var phase1FeedRules = []feedRule{
	{
		phase: 1,
		tag:   "locked",
		// Repeated locked tags silently prefer the first occurrence.
		transform: keepFirstWithText,
		supported: hasText,
		extract: func(n *xmlnode.Node, _ *Feed) feedUpdate {
			flag := strings.ToLower(n.Value())
			return feedUpdate{locked: &Locked{
				Locked: flag == "yes" || flag == "true",
				Owner:  n.AttrOr("owner", ""),
			}}
		},
	},
	{
		phase:     1,
		tag:       "funding",
		supported: hasAttrs("url"),
		extract: func(n *xmlnode.Node, _ *Feed) feedUpdate {
			return feedUpdate{fundings: []Funding{{
				URL:     xmlnode.SanitizeURL(n.MustAttr("url")),
				Message: xmlnode.StripLineBreaks(n.Value()),
			}}}
		},
	},
}

var phase1ItemRules = []itemRule{
	{
		phase:     1,
		tag:       "transcript",
		supported: hasAttrs("url"),
		extract: func(n *xmlnode.Node, f *Feed) itemUpdate {
			u := xmlnode.SanitizeURL(n.MustAttr("url"))
			t := Transcript{
				URL:      u,
				Type:     n.AttrOr("type", mimeByExtension(u)),
				Language: n.AttrOr("language", f.Language),
				Rel:      n.AttrOr("rel", ""),
			}
			return itemUpdate{transcripts: []Transcript{t}}
		},
	},
	{
		phase:     1,
		tag:       "chapters",
		transform: keepFirst,
		supported: hasAttrs("url"),
		extract: func(n *xmlnode.Node, _ *Feed) itemUpdate {
			return itemUpdate{chapters: &Chapters{
				URL:  xmlnode.SanitizeURL(n.MustAttr("url")),
				Type: n.AttrOr("type", "application/json+chapters"),
			}}
		},
	},
	{
		phase:     1,
		tag:       "soundbite",
		supported: hasAttrs("startTime", "duration"),
		extract: func(n *xmlnode.Node, _ *Feed) itemUpdate {
			start := attrNumber(n, "startTime")
			dur := attrNumber(n, "duration")
			return itemUpdate{soundbites: []Soundbite{{
				StartTime: start,
				Duration:  dur,
				Title:     xmlnode.CollapseWhitespace(n.Value()),
			}}}
		},
	},
}

// mediaTypes covers the extensions feeds actually use. The system MIME
// database varies across hosts, so the common cases are pinned here and the
// stdlib table is only a backup.
var mediaTypes = map[string]string{
	".mp3":  "audio/mpeg",
	".m4a":  "audio/mp4",
	".aac":  "audio/aac",
	".ogg":  "audio/ogg",
	".opus": "audio/opus",
	".flac": "audio/flac",
	".wav":  "audio/wav",
	".mp4":  "video/mp4",
	".m4v":  "video/x-m4v",
	".mov":  "video/quicktime",
	".webm": "video/webm",
	".m3u8": "application/x-mpegURL",
	".srt":  "application/x-subrip",
	".vtt":  "text/vtt",
	".json": "application/json",
	".txt":  "text/plain",
	".html": "text/html",
	".pdf":  "application/pdf",
}

// mimeByExtension infers a content type from the URL's file extension, the
// last-resort fallback when a tag declares none. Unknown extensions yield "".
func mimeByExtension(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	ext := strings.ToLower(path.Ext(u.Path))
	if ext == "" {
		return ""
	}
	if t, ok := mediaTypes[ext]; ok {
		return t
	}
	t := mime.TypeByExtension(ext)
	// Strip any charset parameter; feeds declare bare media types.
	if i := strings.Index(t, ";"); i >= 0 {
		t = strings.TrimSpace(t[:i])
	}
	return t
}

// attrNumber reads a numeric attribute, zero when absent or malformed.
func attrNumber(n *xmlnode.Node, name string) float64 {
	v, ok := n.Attr(name)
	if !ok {
		return 0
	}
	num := &xmlnode.Node{Text: v}
	f, ok := num.Number()
	if !ok {
		return 0
	}
	return f
}
