package feed

import (
	"github.com/feedshape/feed-shape/app/xmlnode"
)

// Phase 2: person, location, season, episode.

var phase2FeedRules = []feedRule{
	{
		phase:     2,
		tag:       "person",
		supported: hasText,
		extract: func(n *xmlnode.Node, _ *Feed) feedUpdate {
			return feedUpdate{persons: []Person{personFromNode(n)}}
		},
	},
	{
		phase:     2,
		tag:       "location",
		transform: keepFirstWithText,
		supported: hasText,
		extract: func(n *xmlnode.Node, _ *Feed) feedUpdate {
			return feedUpdate{location: locationFromNode(n)}
		},
	},
}

var phase2ItemRules = []itemRule{
	{
		phase:     2,
		tag:       "person",
		supported: hasText,
		extract: func(n *xmlnode.Node, _ *Feed) itemUpdate {
			return itemUpdate{persons: []Person{personFromNode(n)}}
		},
	},
	{
		phase:     2,
		tag:       "location",
		transform: keepFirstWithText,
		supported: hasText,
		extract: func(n *xmlnode.Node, _ *Feed) itemUpdate {
			return itemUpdate{location: locationFromNode(n)}
		},
	},
	{
		phase:     2,
		tag:       "season",
		transform: keepFirstWithText,
		supported: hasNumber,
		extract: func(n *xmlnode.Node, _ *Feed) itemUpdate {
			return itemUpdate{season: numberingFromNode(n)}
		},
	},
	{
		phase:     2,
		tag:       "episode",
		transform: keepFirstWithText,
		supported: hasNumber,
		extract: func(n *xmlnode.Node, _ *Feed) itemUpdate {
			return itemUpdate{episodeNumber: numberingFromNode(n)}
		},
	},
}

func personFromNode(n *xmlnode.Node) Person {
	return Person{
		Name:  xmlnode.CollapseWhitespace(n.Value()),
		Role:  n.AttrOr("role", "host"),
		Group: n.AttrOr("group", ""),
		Img:   xmlnode.SanitizeURL(n.AttrOr("img", "")),
		Href:  xmlnode.SanitizeURL(n.AttrOr("href", "")),
	}
}

func locationFromNode(n *xmlnode.Node) *Location {
	return &Location{
		Name: xmlnode.CollapseWhitespace(n.Value()),
		Geo:  n.AttrOr("geo", ""),
		OSM:  n.AttrOr("osm", ""),
	}
}

func numberingFromNode(n *xmlnode.Node) *Numbering {
	v, _ := n.Number()
	return &Numbering{
		Number: v,
		Name:   n.AttrOr("name", ""),
	}
}

// hasNumber is the support check for tags whose text must be numeric.
func hasNumber(n *xmlnode.Node) bool {
	_, ok := n.Number()
	return ok
}
