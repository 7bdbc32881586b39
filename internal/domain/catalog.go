package domain

import "fmt"

// Catalog is an ordered, validated list of fields.
type Catalog struct {
	fields []*Field
}

// NewCatalog validates the fields and returns a catalog in declaration order.
func NewCatalog(fields ...*Field) (*Catalog, error) {
	seen := make(map[string]struct{}, len(fields))
	for i, f := range fields {
		if f == nil || f.Name == "" {
			return nil, fmt.Errorf("field %d: %w", i, ErrEmptyFieldName)
		}
		if f.Name == ConfirmFieldName {
			return nil, fmt.Errorf("field %q: %w", f.Name, ErrReservedField)
		}
		if _, ok := seen[f.Name]; ok {
			return nil, fmt.Errorf("field %q: %w", f.Name, ErrDuplicateField)
		}
		seen[f.Name] = struct{}{}
	}
	return &Catalog{fields: fields}, nil
}

// Fields returns the fields in declaration order.
func (c *Catalog) Fields() []*Field {
	return c.fields
}

// Len returns the number of fields.
func (c *Catalog) Len() int {
	return len(c.fields)
}

// Lookup returns the field with the given name.
func (c *Catalog) Lookup(name string) (*Field, bool) {
	for _, f := range c.fields {
		if f.Name == name {
			return f, true
		}
	}
	return nil, false
}

// Clone returns a catalog whose fields can be modified without
// touching the receiver's fields.
func (c *Catalog) Clone() *Catalog {
	fields := make([]*Field, len(c.fields))
	for i, f := range c.fields {
		cp := *f
		fields[i] = &cp
	}
	return &Catalog{fields: fields}
}
