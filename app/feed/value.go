package feed

import (
	"github.com/feedshape/feed-shape/app/xmlnode"
)

// valueFromNode builds a payment configuration from a podcast:value node.
// Shared between feed and item scope; the feed context is only threaded
// through so nested rules can mark the support record.
func valueFromNode(n *xmlnode.Node, f *Feed) *Value {
	v := &Value{
		Type:      n.AttrOr("type", ""),
		Method:    n.AttrOr("method", ""),
		Suggested: n.AttrOr("suggested", ""),
	}

	for _, r := range n.Child("podcast:valueRecipient") {
		addr, ok := r.Attr("address")
		if !ok || addr == "" {
			continue
		}
		v.Recipients = append(v.Recipients, ValueRecipient{
			Name:        r.AttrOr("name", ""),
			Type:        r.AttrOr("type", ""),
			Address:     addr,
			CustomKey:   r.AttrOr("customKey", ""),
			CustomValue: r.AttrOr("customValue", ""),
			Split:       attrNumber(r, "split"),
			Fee:         r.AttrOr("fee", "") == "true",
		})
	}

	// Rules nesting under value (time splits) register themselves in the
	// nested registry; this rule does not know them individually.
	applyNestedRules("value", n, v, f)

	return v
}
