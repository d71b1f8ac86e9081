package highlight

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/reclist/markup"
)

func TestHighlight(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		query string
		opts  Options
		want  string
	}{
		{
			name:  "inside element",
			in:    "<b>United</b> States",
			query: "unit",
			opts:  DefaultOptions(),
			want:  `<b><span class="highlight">Unit</span>ed</b> States`,
		},
		{
			name:  "across elements",
			in:    "<i>Al</i>pha",
			query: "alp",
			opts:  DefaultOptions(),
			want:  `<i><span class="highlight">Al</span></i><span class="highlight">p</span>ha`,
		},
		{
			name:  "several tokens",
			in:    "new york",
			query: "york new",
			opts:  DefaultOptions(),
			want:  `<span class="highlight">new york</span>`,
		},
		{
			name:  "lone space stays plain",
			in:    "Tom & Jerry",
			query: "tom",
			opts:  DefaultOptions(),
			want:  `<span class="highlight">Tom </span>&amp; Jerry`,
		},
		{
			name:  "custom marker",
			in:    "United",
			query: "ted",
			opts:  Options{Tag: "mark"},
			want:  `Uni<mark>ted</mark>`,
		},
		{
			name:  "diacritics stripped",
			in:    "Zürich",
			query: "zur",
			opts:  Options{Tag: "span", Class: "hl", StripDiacritics: true},
			want:  `<span class="hl">Zür</span>ich`,
		},
		{
			name:  "diacritics kept",
			in:    "Zürich",
			query: "zur",
			opts:  DefaultOptions(),
			want:  "Zürich",
		},
		{
			name:  "regexp characters are literal",
			in:    "axb a.b",
			query: "a.b",
			opts:  Options{Tag: "em"},
			want:  `axb<em> a.b</em>`,
		},
		{
			name:  "no match",
			in:    "<B>Alpha</B>",
			query: "zeta",
			opts:  DefaultOptions(),
			want:  "<B>Alpha</B>",
		},
		{
			name:  "blank query",
			in:    "Alpha Beta",
			query: "  ",
			opts:  DefaultOptions(),
			want:  "Alpha Beta",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Highlight(tt.in, tt.query, tt.opts))
		})
	}
}

func TestHighlightKeepsTagStructure(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"<td>Alpha</td>", `<td><span class="highlight">Al</span>pha</td>`},
		{"<p>Al<div>pha</div></p>", `<p><span class="highlight">Al</span><div>pha</div></p>`},
		{"<tr><td>x</td><td>Alpha</td></tr>", `<tr><td>x</td><td><span class="highlight">Al</span>pha</td></tr>`},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Highlight(tt.in, "al", DefaultOptions()))
		})
	}
}

func TestHighlightKeepsPlainText(t *testing.T) {
	in := `<p class="x">Über <a href="#">ålesund</a> &amp; <b>Malmö</b></p>`
	out := Highlight(in, "al ö", Options{Tag: "span", StripDiacritics: true})

	assert.NotEqual(t, in, out)
	assert.Equal(t, markup.StripTags(in), markup.StripTags(out))
	assert.NotContains(t, out, "hl-")
}

func TestInjectManyNodes(t *testing.T) {
	var nodes []*markup.Node
	for range 12 {
		nodes = append(nodes, markup.Element("i", markup.Text("ab")))
	}
	flat := markup.PlainText(nodes)
	out := Inject(nodes, Mask(flat, "b", false), DefaultOptions())

	assert.Equal(t, strings.Repeat(`<i>a<span class="highlight">b</span></i>`, 12), out)
}

func TestMask(t *testing.T) {
	assert.Equal(t, []bool{false, true, true, false, true}, Mask("ab ab", "b", false))
	assert.Equal(t, []bool{false, false, false}, Mask("a b", "", false))
	assert.Equal(t, []bool{true, true, false}, Mask("ÅÄx", "aa", true))
	assert.Len(t, Mask("Zürich", "zur", false), 6)
}
