// Package schema compiles datamodel text into its in-memory representation:
// datasource and generator blocks, models with typed fields, and enums.
package schema

// FieldKind classifies what a field's type refers to.
type FieldKind int

const (
	// KindScalar is a built-in scalar type (String, Int, ...).
	KindScalar FieldKind = iota
	// KindEnum references an enum declared in the schema.
	KindEnum
	// KindRelation references another model.
	KindRelation
)

// Schema is a fully parsed datamodel.
type Schema struct {
	Datasources []*Datasource
	Generators  []*GeneratorBlock
	Models      []*Model
	Enums       []*Enum
}

// Datasource is a `datasource` block; properties are kept raw.
type Datasource struct {
	Name       string
	Properties map[string]string
}

// GeneratorBlock is a `generator` block; properties are kept raw.
type GeneratorBlock struct {
	Name       string
	Properties map[string]string
}

// Model is a `model` block.
type Model struct {
	Name   string
	Fields []*Field
	// BlockAttributes are the model-level `@@` attributes, raw.
	BlockAttributes []string
}

// Field is a single model field.
type Field struct {
	Name string
	// Type as written, without list/optional markers.
	Type     string
	Kind     FieldKind
	Optional bool
	List     bool
	// Attributes are the field's `@` attributes.
	Attributes []Attribute
}

// Attribute is one `@name(args)` field attribute.
type Attribute struct {
	Name string
	Args string
}

// Enum is an `enum` block.
type Enum struct {
	Name   string
	Values []string
}

// Provider returns the datasource provider, or "" when absent.
func (d *Datasource) Provider() string {
	return d.Properties["provider"]
}

// Model looks up a model by name.
func (s *Schema) Model(name string) *Model {
	for _, m := range s.Models {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// Enum looks up an enum by name.
func (s *Schema) Enum(name string) *Enum {
	for _, e := range s.Enums {
		if e.Name == name {
			return e
		}
	}
	return nil
}

// Field looks up a field by name.
func (m *Model) Field(name string) *Field {
	for _, f := range m.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// IDField returns the field carrying `@id`, or nil.
func (m *Model) IDField() *Field {
	for _, f := range m.Fields {
		if f.Attribute("id") != nil {
			return f
		}
	}
	return nil
}

// ScalarFields returns the model's non-relation fields in order.
func (m *Model) ScalarFields() []*Field {
	var fields []*Field
	for _, f := range m.Fields {
		if f.Kind != KindRelation {
			fields = append(fields, f)
		}
	}
	return fields
}

// Attribute looks up a field attribute by name.
func (f *Field) Attribute(name string) *Attribute {
	for i := range f.Attributes {
		if f.Attributes[i].Name == name {
			return &f.Attributes[i]
		}
	}
	return nil
}

// Required reports whether the field must be present (not optional, not a
// list).
func (f *Field) Required() bool {
	return !f.Optional && !f.List
}
