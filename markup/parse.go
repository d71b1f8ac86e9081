package markup

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Parse parses an HTML fragment into a tree.
//
// The tree follows the tags as written: no elements are implied, moved or
// dropped the way an HTML5 tree builder would. An end tag closes the nearest
// open element with the same name together with everything opened after it;
// end tags without an open element are ignored. Elements still open at the
// end of the input are closed implicitly.
func Parse(s string) ([]*Node, error) {
	z := html.NewTokenizer(strings.NewReader(s))
	root := &Node{Type: ElementNode}
	stack := []*Node{root}

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("markup: tokenize: %w", err)
			}
			return root.Children, nil
		}

		tok := z.Token()
		parent := stack[len(stack)-1]

		switch tt {
		case html.TextToken:
			parent.Children = append(parent.Children, Text(tok.Data))
		case html.CommentToken:
			parent.Children = append(parent.Children, &Node{Type: CommentNode, Data: tok.Data})
		case html.StartTagToken, html.SelfClosingTagToken:
			n := &Node{Type: ElementNode, Data: tok.Data}
			if len(tok.Attr) > 0 {
				n.Attr = tok.Attr
			}
			parent.Children = append(parent.Children, n)
			if tt == html.StartTagToken && !voidElements[tok.Data] {
				stack = append(stack, n)
			}
		case html.EndTagToken:
			for i := len(stack) - 1; i > 0; i-- {
				if stack[i].Data == tok.Data {
					stack = stack[:i]
					break
				}
			}
		}
	}
}
