package feed

import (
	"sort"
	"strings"

	"github.com/feedshape/feed-shape/app/xmlnode"
)

// The namespace dispatch layer routes namespace-qualified root-level tags to
// handlers registered per canonical namespace URI. Aliases are whatever the
// document declared; the registry only knows URIs.

const atomNamespaceURI = "http://www.w3.org/2005/atom"

type nsHandler struct {
	supported func(*xmlnode.Node) bool
	extract   func(*xmlnode.Node, *Feed) feedUpdate
}

// namespaceHandlers maps lower-cased namespace URI to the local tags handled
// for that namespace on the feed root. Populated once, never mutated.
var namespaceHandlers = map[string]map[string]nsHandler{
	atomNamespaceURI: {
		"link": {
			supported: hasAttrs("rel", "href"),
			extract:   relLinkExtract,
		},
	},
}

// namespaceAliases reads the document-local alias table from the root
// element's xmlns declarations. URIs are lower-cased for registry lookup.
func namespaceAliases(root *xmlnode.Node) map[string]string {
	aliases := make(map[string]string)
	if root == nil {
		return aliases
	}
	for name, value := range root.Attrs {
		if alias, ok := strings.CutPrefix(name, "xmlns:"); ok {
			aliases[alias] = strings.ToLower(strings.TrimSpace(value))
		}
	}
	return aliases
}

// applyNamespaceHandlers resolves every alias-qualified tag on the feed root
// through the alias table and runs the registered handler, if any. Qualified
// tags from unregistered namespaces are ignored. Keys are walked in sorted
// order so repeated parses of one document stay deterministic.
func applyNamespaceHandlers(channel *xmlnode.Node, aliases map[string]string, f *Feed) {
	if channel == nil || channel.Children == nil {
		return
	}
	keys := make([]string, 0, len(channel.Children))
	for k := range channel.Children {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		alias, local, found := strings.Cut(key, ":")
		if !found {
			continue
		}
		uri := aliases[alias]
		if uri == "" && alias == "atom" {
			// RSS feeds historically use the atom: prefix without
			// declaring it; honor the convention.
			uri = atomNamespaceURI
		}
		handler, ok := namespaceHandlers[uri][local]
		if !ok {
			continue
		}
		for _, n := range channel.Children[key] {
			if !ruleSupported(handler.supported, n) {
				continue
			}
			f.merge(handler.extract(n, f))
		}
	}
}

// applyGenericRelLinks runs the relation-link extraction over unqualified
// <link> nodes. RSS documents frequently carry rel-attributed links without
// any namespace qualification; both spellings must resolve identically.
func applyGenericRelLinks(channel *xmlnode.Node, f *Feed) {
	for _, n := range channel.Child("link") {
		if _, ok := n.Attr("rel"); !ok {
			continue
		}
		if _, ok := n.Attr("href"); !ok {
			continue
		}
		f.merge(relLinkExtract(n, f))
	}
}

func relLinkExtract(n *xmlnode.Node, _ *Feed) feedUpdate {
	href := xmlnode.SanitizeURL(n.MustAttr("href"))
	switch strings.ToLower(n.MustAttr("rel")) {
	case "self":
		return feedUpdate{selfURL: &href}
	case "hub":
		return feedUpdate{hubURL: &href}
	case "next":
		return feedUpdate{nextURL: &href}
	default:
		return feedUpdate{}
	}
}
