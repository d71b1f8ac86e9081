package markup

import (
	"strings"

	"golang.org/x/net/html"
)

// NodeType identifies the kind of a Node.
type NodeType uint8

const (
	// TextNode holds character data in Data.
	TextNode NodeType = iota
	// ElementNode holds a tag name in Data plus attributes and children.
	ElementNode
	// CommentNode holds comment text in Data.
	CommentNode
)

// Node is a markup tree node.
type Node struct {
	Type     NodeType
	Data     string
	Attr     []html.Attribute
	Children []*Node
}

// Text returns a new text node.
func Text(s string) *Node {
	return &Node{Type: TextNode, Data: s}
}

// Element returns a new element node.
func Element(tag string, children ...*Node) *Node {
	return &Node{Type: ElementNode, Data: tag, Children: children}
}

// voidElements never carry children or an end tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// Walk visits nodes depth-first, left to right. Returning false from fn
// skips the children of the visited node.
func Walk(nodes []*Node, fn func(n *Node) bool) {
	for _, n := range nodes {
		if fn(n) && n.Type == ElementNode {
			Walk(n.Children, fn)
		}
	}
}

// PlainText concatenates the text nodes of the tree in document order.
func PlainText(nodes []*Node) string {
	var sb strings.Builder
	Walk(nodes, func(n *Node) bool {
		if n.Type == TextNode {
			sb.WriteString(n.Data)
		}
		return true
	})
	return sb.String()
}

// StripTags returns the plain text of an HTML fragment. Input that cannot
// be parsed is returned unchanged.
func StripTags(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}
	nodes, err := Parse(s)
	if err != nil {
		return s
	}
	return PlainText(nodes)
}
