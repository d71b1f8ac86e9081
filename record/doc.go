// Package record provides the typed record model used by reclist.
//
// A Record carries a mandatory id, an optional disabled flag, its canonical
// fields and an optional shadow side-table. Shadow values are pre-normalized
// copies of fields (for example with diacritics removed) that take precedence
// over the canonical value whenever records are compared or matched.
//
// # Values
//
// Field values are small typed values:
//
//   - String: record.String("Alpha")
//   - Int: record.Int(2024)
//   - Float: record.Float(3.14)
//   - Bool: record.Bool(true)
//   - Array: record.Array([]record.Value{...}), also used as the set operand of in / not-in
//   - Null: record.Null()
//
// Example:
//
//	rec := record.Record{
//	    ID: "1",
//	    Fields: record.Document{
//	        "name": record.String("Zürich"),
//	        "pop":  record.Int(421878),
//	    },
//	    Shadow: record.Document{
//	        "name": record.String("Zurich"),
//	    },
//	}
//
// # Loose input
//
// Collaborators usually hand over untyped maps decoded from JSON. FromMap maps
// the conventional keys onto a Record: "id", "isDisabled" and underscore
// prefixed shadow fields ("_name" shadows "name").
package record
