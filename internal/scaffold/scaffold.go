// Package scaffold is the reference generation function shipped with the
// SDK: a minimal Rust client scaffold with one module per model and enum.
// It exists so the CLI can run end to end and as a template for writing
// real generators.
package scaffold

import (
	"fmt"
	"strings"

	"github.com/lithammer/dedent"

	"github.com/spacedriveapp/gensdk/api"
	"github.com/spacedriveapp/gensdk/internal/casing"
	"github.com/spacedriveapp/gensdk/schema"
)

var preludeTemplate = dedent.Dedent(`
	pub struct Client;

	impl Client {
	    pub fn new() -> Self {
	        Self
	    }
	}
`)

// scalar type mapping; unknown scalars fall back to String
var scalarTypes = map[string]string{
	"String":   "String",
	"Int":      "i32",
	"BigInt":   "i64",
	"Float":    "f64",
	"Boolean":  "bool",
	"DateTime": "chrono::DateTime<chrono::FixedOffset>",
	"Json":     "serde_json::Value",
	"Bytes":    "Vec<u8>",
}

// Generate builds the scaffold module tree.
func Generate(args api.GenerateArgs, config api.ConfigMap) (*api.Module, error) {
	root := &api.Module{Name: "client", Contents: preludeTemplate}

	for _, enum := range args.Schema.Enums {
		root.Add(api.NewModule(enum.Name, enumContents(enum)))
	}
	for _, model := range args.Schema.Models {
		root.Add(api.NewModule(model.Name, modelContents(model)))
	}

	return root, nil
}

func enumContents(enum *schema.Enum) string {
	var b strings.Builder
	fmt.Fprintf(&b, "pub enum %s {\n", casing.Pascal(enum.Name))
	for _, value := range enum.Values {
		fmt.Fprintf(&b, "    %s,\n", casing.Pascal(strings.ToLower(value)))
	}
	b.WriteString("}\n")
	return b.String()
}

func modelContents(model *schema.Model) string {
	var b strings.Builder
	fmt.Fprintf(&b, "pub struct %s {\n", casing.Pascal(model.Name))
	for _, field := range model.ScalarFields() {
		fmt.Fprintf(&b, "    pub %s: %s,\n", casing.Snake(field.Name), fieldType(field))
	}
	b.WriteString("}\n")
	return b.String()
}

func fieldType(field *schema.Field) string {
	t, ok := scalarTypes[field.Type]
	if !ok {
		if field.Kind == schema.KindEnum {
			t = fmt.Sprintf("super::%s::%s", casing.Snake(field.Type), casing.Pascal(field.Type))
		} else {
			t = "String"
		}
	}

	switch {
	case field.List:
		return fmt.Sprintf("Vec<%s>", t)
	case field.Optional:
		return fmt.Sprintf("Option<%s>", t)
	}
	return t
}
