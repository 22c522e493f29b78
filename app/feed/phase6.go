package feed

import (
	"github.com/feedshape/feed-shape/app/xmlnode"
)

// Phase 6: publisher, valueTimeSplit (nested under value), chat (nested
// under liveItem).

var phase6FeedRules = []feedRule{
	{
		phase:     6,
		tag:       "publisher",
		transform: keepFirst,
		supported: func(n *xmlnode.Node) bool {
			return xmlnode.FirstWithAttrs(n.Child("podcast:remoteItem"), "feedGuid") != nil
		},
		extract: func(n *xmlnode.Node, _ *Feed) feedUpdate {
			ref := xmlnode.FirstWithAttrs(n.Child("podcast:remoteItem"), "feedGuid")
			ri := remoteItemFromNode(ref)
			return feedUpdate{publisher: &ri}
		},
	},
}

var phase6ValueNested = []nestedRule{
	{
		phase:     6,
		tag:       "valueTimeSplit",
		supported: hasAttrs("startTime", "duration"),
		apply: func(n *xmlnode.Node, parent any) {
			v := parent.(*Value)
			split := ValueTimeSplit{
				StartTime:        attrNumber(n, "startTime"),
				Duration:         attrNumber(n, "duration"),
				RemoteStartTime:  attrNumber(n, "remoteStartTime"),
				RemotePercentage: attrNumber(n, "remotePercentage"),
			}
			if ref := xmlnode.FirstWithAttrs(n.Child("podcast:remoteItem"), "feedGuid"); ref != nil {
				ri := remoteItemFromNode(ref)
				split.RemoteItem = &ri
			}
			v.TimeSplits = append(v.TimeSplits, split)
		},
	},
}

var phase6LiveItemNested = []nestedRule{
	{
		phase:     6,
		tag:       "chat",
		supported: hasAttrs("server"),
		apply: func(n *xmlnode.Node, parent any) {
			li := parent.(*LiveItem)
			li.Chat = &Chat{
				Server:    n.MustAttr("server"),
				Protocol:  n.AttrOr("protocol", ""),
				AccountID: n.AttrOr("accountId", ""),
				Space:     n.AttrOr("space", ""),
			}
		},
	},
}
