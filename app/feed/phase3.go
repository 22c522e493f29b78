package feed

import (
	"strconv"
	"strings"

	"github.com/feedshape/feed-shape/app/licenses"
	"github.com/feedshape/feed-shape/app/xmlnode"
)

// Phase 3: guid, license, value, alternateEnclosure.

var phase3FeedRules = []feedRule{
	{
		phase:     3,
		tag:       "guid",
		transform: keepFirstWithText,
		supported: hasText,
		extract: func(n *xmlnode.Node, _ *Feed) feedUpdate {
			g := n.Value()
			return feedUpdate{guid: &g}
		},
	},
	{
		phase:     3,
		tag:       "license",
		transform: keepFirstWithText,
		supported: hasText,
		extract: func(n *xmlnode.Node, _ *Feed) feedUpdate {
			return feedUpdate{license: licenseFromNode(n)}
		},
	},
	{
		phase:     3,
		tag:       "value",
		transform: keepFirst,
		extract: func(n *xmlnode.Node, f *Feed) feedUpdate {
			return feedUpdate{value: valueFromNode(n, f)}
		},
	},
}

var phase3ItemRules = []itemRule{
	{
		phase:     3,
		tag:       "license",
		transform: keepFirstWithText,
		supported: hasText,
		extract: func(n *xmlnode.Node, _ *Feed) itemUpdate {
			return itemUpdate{license: licenseFromNode(n)}
		},
	},
	{
		phase:     3,
		tag:       "value",
		transform: keepFirst,
		extract: func(n *xmlnode.Node, f *Feed) itemUpdate {
			return itemUpdate{value: valueFromNode(n, f)}
		},
	},
	{
		phase:     3,
		tag:       "alternateEnclosure",
		supported: hasAttrs("type"),
		extract: func(n *xmlnode.Node, _ *Feed) itemUpdate {
			alt := AlternateEnclosure{
				Type:     n.MustAttr("type"),
				Length:   attrInt64(n, "length"),
				Bitrate:  attrNumber(n, "bitrate"),
				Height:   int(attrNumber(n, "height")),
				Language: n.AttrOr("lang", ""),
				Title:    n.AttrOr("title", ""),
				Rel:      n.AttrOr("rel", ""),
				Default:  strings.EqualFold(n.AttrOr("default", ""), "true"),
			}
			for _, src := range n.Child("podcast:source") {
				uri, ok := src.Attr("uri")
				if !ok || uri == "" {
					continue
				}
				alt.Sources = append(alt.Sources, EnclosureSource{
					URI:         xmlnode.SanitizeURL(uri),
					ContentType: src.AttrOr("contentType", ""),
				})
			}
			if in := xmlnode.FirstWithAttrs(n.Child("podcast:integrity"), "type", "value"); in != nil {
				alt.Integrity = &Integrity{
					Type:  in.MustAttr("type"),
					Value: in.MustAttr("value"),
				}
			}
			return itemUpdate{alternateEnclosures: []AlternateEnclosure{alt}}
		},
	},
}

func licenseFromNode(n *xmlnode.Node) *License {
	id := n.Value()
	l := &License{Identifier: id}
	if u, ok := n.Attr("url"); ok && u != "" {
		l.URL = xmlnode.SanitizeURL(u)
	} else if u, ok := licenses.URL(id); ok {
		l.URL = u
	}
	return l
}

func attrInt64(n *xmlnode.Node, name string) int64 {
	v, ok := n.Attr(name)
	if !ok {
		return 0
	}
	i, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0
	}
	return i
}
