package feed

import (
	"strconv"
	"strings"

	"github.com/feedshape/feed-shape/app/xmlnode"
)

// Phase 4: medium, images, liveItem, contentLink, socialInteract, block, txt.

var phase4FeedRules = []feedRule{
	{
		phase:     4,
		tag:       "medium",
		transform: keepFirstWithText,
		supported: hasText,
		extract: func(n *xmlnode.Node, _ *Feed) feedUpdate {
			m := strings.ToLower(n.Value())
			return feedUpdate{medium: &m}
		},
	},
	{
		phase:     4,
		tag:       "images",
		transform: keepFirst,
		supported: hasAttrs("srcset"),
		extract: func(n *xmlnode.Node, _ *Feed) feedUpdate {
			return feedUpdate{images: parseSrcSet(n.MustAttr("srcset"))}
		},
	},
	{
		phase:     4,
		tag:       "liveItem",
		supported: hasAttrs("status"),
		extract: func(n *xmlnode.Node, f *Feed) feedUpdate {
			li := LiveItem{
				Episode: *baseEpisode(n),
				Status:  strings.ToLower(n.MustAttr("status")),
			}
			if t, ok := xmlnode.DateToTime(n.AttrOr("start", "")); ok {
				li.Start = &t
			}
			if t, ok := xmlnode.DateToTime(n.AttrOr("end", "")); ok {
				li.End = &t
			}
			// A live item is episode-shaped: the whole item-scope rule set
			// applies to it, plus whatever nests under liveItem.
			applyItemRules(n, &li.Episode, f)
			applyNestedRules("liveItem", n, &li, f)
			return feedUpdate{liveItems: []LiveItem{li}}
		},
	},
	{
		phase:     4,
		tag:       "block",
		supported: hasText,
		extract: func(n *xmlnode.Node, _ *Feed) feedUpdate {
			flag := strings.ToLower(n.Value())
			return feedUpdate{blocked: []Block{{
				ID:      n.AttrOr("id", ""),
				Blocked: flag == "yes" || flag == "true",
			}}}
		},
	},
	{
		phase:     4,
		tag:       "txt",
		supported: hasText,
		extract: func(n *xmlnode.Node, _ *Feed) feedUpdate {
			return feedUpdate{txts: []Txt{txtFromNode(n)}}
		},
	},
}

var phase4ItemRules = []itemRule{
	{
		phase:     4,
		tag:       "socialInteract",
		supported: hasAttrs("uri", "protocol"),
		extract: func(n *xmlnode.Node, _ *Feed) itemUpdate {
			priority, _ := strconv.Atoi(n.AttrOr("priority", ""))
			return itemUpdate{socialInteracts: []SocialInteract{{
				Protocol:   n.MustAttr("protocol"),
				URI:        xmlnode.SanitizeURL(n.MustAttr("uri")),
				AccountID:  n.AttrOr("accountId", ""),
				AccountURL: xmlnode.SanitizeURL(n.AttrOr("accountUrl", "")),
				Priority:   priority,
			}}}
		},
	},
	{
		phase:     4,
		tag:       "txt",
		supported: hasText,
		extract: func(n *xmlnode.Node, _ *Feed) itemUpdate {
			return itemUpdate{txts: []Txt{txtFromNode(n)}}
		},
	},
}

// contentLink nests under liveItem: where to watch or listen while live.
var phase4LiveItemNested = []nestedRule{
	{
		phase:     4,
		tag:       "contentLink",
		supported: hasAttrs("href"),
		apply: func(n *xmlnode.Node, parent any) {
			li := parent.(*LiveItem)
			li.ContentLinks = append(li.ContentLinks, ContentLink{
				Href:  xmlnode.SanitizeURL(n.MustAttr("href")),
				Title: xmlnode.CollapseWhitespace(n.Value()),
			})
		},
	},
}

func txtFromNode(n *xmlnode.Node) Txt {
	return Txt{
		Purpose: n.AttrOr("purpose", ""),
		Value:   n.Value(),
	}
}

// parseSrcSet splits an HTML-style srcset attribute into URL/width pairs.
// Malformed candidates are dropped, never fatal.
func parseSrcSet(srcset string) []SrcSetImage {
	var out []SrcSetImage
	for _, candidate := range strings.Split(srcset, ",") {
		fields := strings.Fields(candidate)
		if len(fields) == 0 {
			continue
		}
		img := SrcSetImage{URL: xmlnode.SanitizeURL(fields[0])}
		if len(fields) > 1 && strings.HasSuffix(fields[1], "w") {
			if w, err := strconv.Atoi(strings.TrimSuffix(fields[1], "w")); err == nil {
				img.Width = w
			}
		}
		if img.URL != "" {
			out = append(out, img)
		}
	}
	return out
}
