package highlight

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/net/html"

	"github.com/hupe1980/reclist/markup"
)

// Options configures the marker element.
type Options struct {
	// Tag is the marker element name. Defaults to "span".
	Tag string
	// Class is the marker element class. Empty omits the attribute.
	Class string
	// StripDiacritics matches base letters against accented ones.
	StripDiacritics bool
}

// DefaultOptions returns the default options: <span class="highlight">.
func DefaultOptions() Options {
	return Options{Tag: "span", Class: "highlight"}
}

func (o Options) open() string {
	tag := o.Tag
	if tag == "" {
		tag = "span"
	}
	if o.Class == "" {
		return "<" + tag + ">"
	}
	return "<" + tag + ` class="` + html.EscapeString(o.Class) + `">`
}

func (o Options) close() string {
	if o.Tag == "" {
		return "</span>"
	}
	return "</" + o.Tag + ">"
}

// Highlight wraps the matches of query inside the HTML fragment s.
//
// The fragment is returned unchanged when it cannot be parsed or when
// nothing matches.
func Highlight(s, query string, opts Options) string {
	nodes, err := markup.Parse(s)
	if err != nil {
		return s
	}
	flat := markup.PlainText(nodes)
	mask := Mask(flat, query, opts.StripDiacritics)
	if !hasMatch([]rune(flat), mask) {
		return s
	}
	return Inject(nodes, mask, opts)
}

// Inject renders nodes with the runs flagged in mask wrapped in marker
// elements. mask is consumed in text-node order; nodes is modified.
//
// Text nodes are first swapped for unique placeholders while the tree is
// walked, and the generated fragments are substituted into the serialized
// output afterwards, so no node is rewritten while it is being visited.
func Inject(nodes []*markup.Node, mask []bool, opts Options) string {
	prefix := "hl-" + uuid.NewString() + "-"
	var pairs []string
	pos, seq := 0, 0

	markup.Walk(nodes, func(n *markup.Node) bool {
		if n.Type != markup.TextNode {
			return true
		}
		rs := []rune(n.Data)
		lo, hi := min(pos, len(mask)), min(pos+len(rs), len(mask))
		frag := renderRuns(rs, mask[lo:hi], opts)
		pos += len(rs)

		token := prefix + strconv.Itoa(seq) + "-"
		seq++
		n.Data = token
		pairs = append(pairs, token, frag)
		return true
	})

	out := markup.Render(nodes)
	if len(pairs) == 0 {
		return out
	}
	return strings.NewReplacer(pairs...).Replace(out)
}

// renderRuns builds the HTML for one text node: maximal runs of matched
// runes are wrapped, everything is escaped, and a run consisting of a
// single space stays unwrapped.
func renderRuns(rs []rune, mask []bool, opts Options) string {
	var sb strings.Builder
	matched := func(i int) bool { return i < len(mask) && mask[i] }

	for start := 0; start < len(rs); {
		end := start + 1
		for end < len(rs) && matched(end) == matched(start) {
			end++
		}
		run := string(rs[start:end])
		if matched(start) && run != " " {
			sb.WriteString(opts.open())
			sb.WriteString(html.EscapeString(run))
			sb.WriteString(opts.close())
		} else {
			sb.WriteString(html.EscapeString(run))
		}
		start = end
	}
	return sb.String()
}
