package feed

import (
	"github.com/feedshape/feed-shape/app/xmlnode"
)

// Phase 5: remoteItem.

var phase5FeedRules = []feedRule{
	{
		phase:     5,
		tag:       "remoteItem",
		supported: hasAttrs("feedGuid"),
		extract: func(n *xmlnode.Node, _ *Feed) feedUpdate {
			return feedUpdate{remoteItems: []RemoteItem{remoteItemFromNode(n)}}
		},
	},
}

func remoteItemFromNode(n *xmlnode.Node) RemoteItem {
	return RemoteItem{
		FeedGUID: n.AttrOr("feedGuid", ""),
		FeedURL:  xmlnode.SanitizeURL(n.AttrOr("feedUrl", "")),
		ItemGUID: n.AttrOr("itemGuid", ""),
		Medium:   n.AttrOr("medium", ""),
	}
}
