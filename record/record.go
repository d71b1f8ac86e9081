package record

const (
	// FieldID is the loose-map key holding the record id.
	FieldID = "id"
	// FieldDisabled is the loose-map key holding the disabled flag.
	FieldDisabled = "isDisabled"
	// ShadowPrefix marks loose-map keys that hold shadow values.
	ShadowPrefix = "_"
)

// Document maps field names to values.
type Document map[string]Value

// Clone creates a deep copy of the document.
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}
	clone := make(Document, len(d))
	for k, v := range d {
		clone[k] = v.clone()
	}
	return clone
}

// Record is a uniquely identified entry of a list.
type Record struct {
	ID       string
	Disabled bool
	// Fields holds the canonical field values.
	Fields Document
	// Shadow holds optional search-optimized copies of fields, keyed by the
	// name of the field they shadow.
	Shadow Document
}

// Clone returns a deep copy of the record.
func (r Record) Clone() Record {
	return Record{
		ID:       r.ID,
		Disabled: r.Disabled,
		Fields:   r.Fields.Clone(),
		Shadow:   r.Shadow.Clone(),
	}
}

// Get returns the canonical value of a field.
func (r Record) Get(field string) (Value, bool) {
	v, ok := r.Fields[field]
	return v, ok
}

// Lookup returns the shadow value of a field if present, otherwise the
// canonical value.
func (r Record) Lookup(field string) (Value, bool) {
	if v, ok := r.Shadow[field]; ok {
		return v, true
	}
	return r.Get(field)
}

// SearchDocument returns a copy of the canonical fields with every shadow
// value pulled forward over the field it shadows.
func (r Record) SearchDocument() Document {
	doc := r.Fields.Clone()
	if doc == nil {
		doc = make(Document, len(r.Shadow))
	}
	for k, v := range r.Shadow {
		doc[k] = v.clone()
	}
	return doc
}
