// Package highlight marks query matches inside markup without breaking it.
//
// Matching happens on the flattened plain text of a fragment: every
// whitespace separated query token is searched case-insensitively and the
// matched characters are recorded in a per-rune mask. The mask is then
// re-injected into the markup tree text node by text node, so a match that
// spans element boundaries is split into one marker element per text node
// instead of crossing tags.
//
//	out := highlight.Highlight("<b>United</b> States", "unit", highlight.DefaultOptions())
//	// <b><span class="highlight">Unit</span>ed</b> States
package highlight
