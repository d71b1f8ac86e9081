// Package markup provides a small abstract markup tree.
//
// Field values rendered by list collaborators may contain inline HTML. The
// tree decouples the text-level algorithms (plain-text flattening and match
// highlighting) from any host document model: a fragment is parsed into
// text, element and comment nodes and serialized back to an HTML string.
package markup
