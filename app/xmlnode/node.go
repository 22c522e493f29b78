// Package xmlnode builds and reads the ambiguous node tree all feed
// extraction works against. The tree is deliberately dumb: a node is either
// text with attributes, or a bag of named children where every child access
// yields a slice, so multiplicity never has to be special-cased downstream.
package xmlnode

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

// Node is one element of the parsed document. Children is keyed by the raw
// tag name as written in the document (prefix included, e.g. "podcast:person"),
// so namespace aliases survive until the dispatch layer resolves them.
type Node struct {
	Text     string
	Attrs    map[string]string
	Children map[string][]*Node
}

// extendedEntities are the HTML character entities feeds commonly use
// beyond the XML built-ins the reader already decodes.
var extendedEntities = map[string]string{
	"nbsp":   " ",
	"copy":   "©",
	"reg":    "®",
	"trade":  "™",
	"hellip": "…",
	"mdash":  "—",
	"ndash":  "–",
	"lsquo":  "‘",
	"rsquo":  "’",
	"ldquo":  "“",
	"rdquo":  "”",
}

// Parse validates well-formedness and builds the node tree for the document
// root. Entity decoding is handled by the underlying XML reader.
func Parse(data []byte) (*Node, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.Entity = extendedEntities
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("failed to read XML document: %w", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("document has no root element")
	}

	// The returned node represents the document itself, with the root
	// element as its single child. That keeps lookups like "rss" and
	// "feed" uniform with every other child access.
	top := &Node{Children: map[string][]*Node{
		fullName(root.Space, root.Tag): {fromElement(root)},
	}}
	return top, nil
}

func fromElement(el *etree.Element) *Node {
	n := &Node{}

	if len(el.Attr) > 0 {
		n.Attrs = make(map[string]string, len(el.Attr))
		for _, a := range el.Attr {
			n.Attrs[fullName(a.Space, a.Key)] = a.Value
		}
	}

	children := el.ChildElements()
	if len(children) == 0 {
		n.Text = strings.TrimSpace(el.Text())
		return n
	}

	n.Children = make(map[string][]*Node, len(children))
	for _, child := range children {
		name := fullName(child.Space, child.Tag)
		n.Children[name] = append(n.Children[name], fromElement(child))
	}
	// Mixed content is rare in feeds; keep whatever text surrounds the
	// children so text lookups on structured nodes still see something.
	n.Text = strings.TrimSpace(el.Text())
	return n
}

func fullName(space, local string) string {
	if space == "" {
		return local
	}
	return space + ":" + local
}
