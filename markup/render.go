package markup

import (
	"strings"

	"golang.org/x/net/html"
)

// rawTextElements hold unescaped character data.
var rawTextElements = map[string]bool{
	"script": true, "style": true,
}

// Render serializes nodes back to an HTML string.
func Render(nodes []*Node) string {
	var sb strings.Builder
	for _, n := range nodes {
		render(&sb, n)
	}
	return sb.String()
}

func render(sb *strings.Builder, n *Node) {
	switch n.Type {
	case TextNode:
		sb.WriteString(html.EscapeString(n.Data))
	case CommentNode:
		sb.WriteString("<!--")
		sb.WriteString(n.Data)
		sb.WriteString("-->")
	case ElementNode:
		sb.WriteByte('<')
		sb.WriteString(n.Data)
		for _, a := range n.Attr {
			sb.WriteByte(' ')
			if a.Namespace != "" {
				sb.WriteString(a.Namespace)
				sb.WriteByte(':')
			}
			sb.WriteString(a.Key)
			sb.WriteString(`="`)
			sb.WriteString(html.EscapeString(a.Val))
			sb.WriteByte('"')
		}
		sb.WriteByte('>')
		if voidElements[n.Data] {
			return
		}
		for _, c := range n.Children {
			if c.Type == TextNode && rawTextElements[n.Data] {
				sb.WriteString(c.Data)
				continue
			}
			render(sb, c)
		}
		sb.WriteString("</")
		sb.WriteString(n.Data)
		sb.WriteByte('>')
	}
}
