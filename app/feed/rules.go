package feed

import (
	"github.com/feedshape/feed-shape/app/xmlnode"
)

// The rule registries are the extensibility core. A rule binds a phase
// number (informational, for the support record), the local tag name under
// the "podcast:" prefix, an optional multiplicity transform, an optional
// support check, and an extract function returning a partial update limited
// to the fields the rule owns. Extract functions are pure over the node and
// the enclosing feed context; they never depend on other rules having run.
//
// Registries are assembled once below by concatenating the per-phase slices
// in phase order and are never mutated afterwards. New rules are appended to
// the end of their phase slice, never inserted, so scalar-overwrite behavior
// stays stable for feeds matching several rules on one field.

type feedRule struct {
	phase     int
	tag       string
	transform func([]*xmlnode.Node) []*xmlnode.Node
	supported func(*xmlnode.Node) bool
	extract   func(*xmlnode.Node, *Feed) feedUpdate
}

type itemRule struct {
	phase     int
	tag       string
	transform func([]*xmlnode.Node) []*xmlnode.Node
	supported func(*xmlnode.Node) bool
	extract   func(*xmlnode.Node, *Feed) itemUpdate
}

// nestedRule applies inside a node already matched by another rule. The
// parent rule does not know which rules nest under it; it only asks the
// registry. apply mutates the parent rule's in-progress object.
type nestedRule struct {
	phase     int
	tag       string
	supported func(*xmlnode.Node) bool
	apply     func(*xmlnode.Node, any)
}

var feedRules = concatFeedRules(
	phase1FeedRules,
	phase2FeedRules,
	phase3FeedRules,
	phase4FeedRules,
	phase5FeedRules,
	phase6FeedRules,
)

var itemRules = concatItemRules(
	phase1ItemRules,
	phase2ItemRules,
	phase3ItemRules,
	phase4ItemRules,
)

// nestedRules maps a parent rule tag to the rules additionally tried against
// each child node that parent discovers.
var nestedRules = map[string][]nestedRule{
	"liveItem": append(phase4LiveItemNested, phase6LiveItemNested...),
	"value":    phase6ValueNested,
}

func concatFeedRules(groups ...[]feedRule) []feedRule {
	var out []feedRule
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func concatItemRules(groups ...[]itemRule) []itemRule {
	var out []itemRule
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func ruleSupported(check func(*xmlnode.Node) bool, n *xmlnode.Node) bool {
	if check != nil {
		return check(n)
	}
	return n.IsStructured()
}

// hasText is the support check for rules that fire on plain textual tags.
func hasText(n *xmlnode.Node) bool {
	return n.Value() != ""
}

// hasAttrs builds a support check requiring every named attribute.
func hasAttrs(names ...string) func(*xmlnode.Node) bool {
	return func(n *xmlnode.Node) bool {
		for _, name := range names {
			if v, ok := n.Attr(name); !ok || v == "" {
				return false
			}
		}
		return true
	}
}

// keepFirstWithText is the transform for scalar tags where the first
// populated occurrence wins and repeats are ignored.
func keepFirstWithText(nodes []*xmlnode.Node) []*xmlnode.Node {
	if n := xmlnode.FirstWithText(nodes); n != nil {
		return []*xmlnode.Node{n}
	}
	return nil
}

// keepFirst keeps only the first occurrence, text or not.
func keepFirst(nodes []*xmlnode.Node) []*xmlnode.Node {
	if n := xmlnode.First(nodes); n != nil {
		return []*xmlnode.Node{n}
	}
	return nil
}

// applyFeedRules folds every applicable feed-scope rule into the feed and
// the support record.
func applyFeedRules(channel *xmlnode.Node, f *Feed) {
	for _, r := range feedRules {
		nodes := channel.Child("podcast:" + r.tag)
		if len(nodes) == 0 {
			continue
		}
		if r.transform != nil {
			nodes = r.transform(nodes)
		}
		fired := false
		for _, n := range nodes {
			if !ruleSupported(r.supported, n) {
				continue
			}
			f.merge(r.extract(n, f))
			fired = true
		}
		if fired {
			f.Support.Add(r.phase, r.tag)
		}
	}
}

// applyItemRules folds every applicable item-scope rule into the episode.
// Capability bookkeeping still lands on the enclosing feed's record.
func applyItemRules(item *xmlnode.Node, e *Episode, f *Feed) {
	for _, r := range itemRules {
		nodes := item.Child("podcast:" + r.tag)
		if len(nodes) == 0 {
			continue
		}
		if r.transform != nil {
			nodes = r.transform(nodes)
		}
		fired := false
		for _, n := range nodes {
			if !ruleSupported(r.supported, n) {
				continue
			}
			e.merge(r.extract(n, f))
			fired = true
		}
		if fired {
			f.Support.Add(r.phase, r.tag)
		}
	}
}

// applyNestedRules runs every rule registered under parentTag against the
// matching children of the parent's node, mutating the parent object. The
// support record stays additive, one mark per fired tag.
func applyNestedRules(parentTag string, parentNode *xmlnode.Node, parent any, f *Feed) {
	for _, r := range nestedRules[parentTag] {
		fired := false
		for _, n := range parentNode.Child("podcast:" + r.tag) {
			if !ruleSupported(r.supported, n) {
				continue
			}
			r.apply(n, parent)
			fired = true
		}
		if fired && f != nil {
			f.Support.Add(r.phase, r.tag)
		}
	}
}
