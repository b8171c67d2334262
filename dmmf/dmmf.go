// Package dmmf flattens a query schema into the metadata document handed to
// generation functions: per-model field metadata plus the operation
// mappings, in a shape that serializes cleanly and can be queried as a
// generic value tree.
package dmmf

import (
	"fmt"
	"strings"

	"github.com/ohler55/ojg/oj"

	"github.com/spacedriveapp/gensdk/query"
	"github.com/spacedriveapp/gensdk/schema"
)

// Document is the flattened metadata document.
type Document struct {
	Datamodel Datamodel `json:"datamodel"`
	Mappings  Mappings  `json:"mappings"`
}

type Datamodel struct {
	Models []Model `json:"models"`
	Enums  []Enum  `json:"enums"`
}

type Model struct {
	Name string `json:"name"`
	// DBName is the mapped table name from @@map, if any.
	DBName string  `json:"dbName,omitempty"`
	Fields []Field `json:"fields"`
}

type Field struct {
	Name         string `json:"name"`
	Kind         string `json:"kind"` // scalar | enum | object
	Type         string `json:"type"`
	IsRequired   bool   `json:"isRequired"`
	IsList       bool   `json:"isList"`
	IsID         bool   `json:"isId"`
	IsUnique     bool   `json:"isUnique"`
	HasDefault   bool   `json:"hasDefaultValue"`
	IsUpdatedAt  bool   `json:"isUpdatedAt"`
	RelationName string `json:"relationName,omitempty"`
}

type Enum struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

type Mappings struct {
	ModelOperations []ModelOperations `json:"modelOperations"`
	OtherOperations []string          `json:"otherOperations,omitempty"`
}

type ModelOperations struct {
	Model      string            `json:"model"`
	Operations map[string]string `json:"operations"`
}

// FromParts flattens the query schema into a Document.
func FromParts(qs *query.QuerySchema) *Document {
	doc := &Document{}

	for _, m := range qs.Schema.Models {
		doc.Datamodel.Models = append(doc.Datamodel.Models, flattenModel(m))

		ops := map[string]string{}
		for _, op := range qs.ModelOperations(m.Name) {
			ops[op.Action] = op.Name
		}
		doc.Mappings.ModelOperations = append(doc.Mappings.ModelOperations, ModelOperations{
			Model:      m.Name,
			Operations: ops,
		})
	}

	for _, e := range qs.Schema.Enums {
		doc.Datamodel.Enums = append(doc.Datamodel.Enums, Enum{Name: e.Name, Values: e.Values})
	}

	for _, op := range qs.Operations {
		if op.Model == "" {
			doc.Mappings.OtherOperations = append(doc.Mappings.OtherOperations, op.Name)
		}
	}

	return doc
}

func flattenModel(m *schema.Model) Model {
	out := Model{Name: m.Name, DBName: mappedName(m)}
	for _, f := range m.Fields {
		out.Fields = append(out.Fields, flattenField(f))
	}
	return out
}

func flattenField(f *schema.Field) Field {
	field := Field{
		Name:        f.Name,
		Type:        f.Type,
		IsRequired:  f.Required(),
		IsList:      f.List,
		IsID:        f.Attribute("id") != nil,
		IsUnique:    f.Attribute("unique") != nil,
		HasDefault:  f.Attribute("default") != nil,
		IsUpdatedAt: f.Attribute("updatedAt") != nil,
	}

	switch f.Kind {
	case schema.KindScalar:
		field.Kind = "scalar"
	case schema.KindEnum:
		field.Kind = "enum"
	case schema.KindRelation:
		field.Kind = "object"
		field.RelationName = f.Type + "Relation"
	}

	return field
}

// mappedName extracts the @@map("...") table name, or "".
func mappedName(m *schema.Model) string {
	for _, attr := range m.BlockAttributes {
		if !strings.HasPrefix(attr, "@@map(") {
			continue
		}
		name := strings.TrimPrefix(attr, "@@map(")
		name = strings.TrimSuffix(name, ")")
		return strings.Trim(name, `"`)
	}
	return ""
}

// Interface converts the document into a generic value tree (maps, slices,
// primitives) suitable for JSONPath evaluation.
func (d *Document) Interface() (any, error) {
	data, err := oj.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("encode metadata document: %w", err)
	}
	value, err := oj.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("decode metadata document: %w", err)
	}
	return value, nil
}
