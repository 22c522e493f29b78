package xmlnode

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Child returns every occurrence of the named child, in document order.
// Missing children and nil receivers yield an empty slice, never nil panics.
func (n *Node) Child(name string) []*Node {
	if n == nil || n.Children == nil {
		return nil
	}
	return n.Children[name]
}

// HasChild reports whether at least one occurrence of the named child exists.
func (n *Node) HasChild(name string) bool {
	return len(n.Child(name)) > 0
}

// First picks the first node of a multiplicity-normalized slice, or nil.
func First(nodes []*Node) *Node {
	if len(nodes) == 0 {
		return nil
	}
	return nodes[0]
}

// FirstWithText prefers the first node carrying non-empty text; when none
// does, it falls back to the plain first node. Used to implement "first
// populated value wins" for repeated scalar tags.
func FirstWithText(nodes []*Node) *Node {
	for _, n := range nodes {
		if n != nil && strings.TrimSpace(n.Text) != "" {
			return n
		}
	}
	return First(nodes)
}

// FirstWithAttrs picks the first node carrying every named attribute, or nil.
func FirstWithAttrs(nodes []*Node, names ...string) *Node {
	for _, n := range nodes {
		if n == nil {
			continue
		}
		ok := true
		for _, name := range names {
			if _, has := n.Attr(name); !has {
				ok = false
				break
			}
		}
		if ok {
			return n
		}
	}
	return nil
}

// Value returns the node's trimmed text content. Nil-safe, never errors.
func (n *Node) Value() string {
	if n == nil {
		return ""
	}
	return strings.TrimSpace(n.Text)
}

// ChildText returns the trimmed text of the first populated occurrence of
// the named child, or "".
func (n *Node) ChildText(name string) string {
	return FirstWithText(n.Child(name)).Value()
}

// Number parses the node's text as a number. The second return is false when
// the node is absent or the content is non-numeric; a NaN is never produced.
func (n *Node) Number() (float64, bool) {
	s := n.Value()
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	// ParseFloat accepts the literals "NaN" and "Inf"; neither is a usable
	// number and either would poison JSON marshaling of the whole document.
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Attr returns the trimmed attribute value. The second return is false when
// the node or the attribute is absent.
func (n *Node) Attr(name string) (string, bool) {
	if n == nil || n.Attrs == nil {
		return "", false
	}
	v, ok := n.Attrs[name]
	if !ok {
		return "", false
	}
	return strings.TrimSpace(v), true
}

// AttrOr returns the trimmed attribute value, or the fallback when absent.
func (n *Node) AttrOr(name, fallback string) string {
	if v, ok := n.Attr(name); ok {
		return v
	}
	return fallback
}

// MustAttr returns the trimmed attribute value and panics when it is absent.
// Only for call sites where a prior support check already guaranteed the
// attribute; a panic here is a programming error, not a data condition.
func (n *Node) MustAttr(name string) string {
	v, ok := n.Attr(name)
	if !ok {
		panic(fmt.Sprintf("xmlnode: required attribute %q is absent", name))
	}
	return v
}

// IsStructured reports whether the node exists and carries children or
// attributes. This is the default support check for extension rules: a bare
// empty tag does not count as exercising a capability.
func (n *Node) IsStructured() bool {
	return n != nil && (len(n.Children) > 0 || len(n.Attrs) > 0)
}
