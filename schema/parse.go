package schema

import (
	"bufio"
	"fmt"
	"strings"
)

// Parse compiles datamodel text. The runtime treats a failure here as an
// internal invariant violation: payloads reach a plugin only after the host
// has validated the schema.
func Parse(text string) (*Schema, error) {
	p := &parser{schema: &Schema{}}

	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := stripComment(scanner.Text())
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if err := p.line(line); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read datamodel: %w", err)
	}
	if p.block != blockNone {
		return nil, fmt.Errorf("unterminated %s block %q", p.block, p.blockName)
	}

	p.resolveKinds()

	return p.schema, nil
}

type blockKind string

const (
	blockNone       blockKind = ""
	blockDatasource blockKind = "datasource"
	blockGenerator  blockKind = "generator"
	blockModel      blockKind = "model"
	blockEnum       blockKind = "enum"
)

type parser struct {
	schema    *Schema
	block     blockKind
	blockName string

	datasource *Datasource
	generator  *GeneratorBlock
	model      *Model
	enum       *Enum
}

func (p *parser) line(line string) error {
	if p.block == blockNone {
		return p.openBlock(line)
	}

	if line == "}" {
		p.closeBlock()
		return nil
	}

	switch p.block {
	case blockDatasource:
		key, value, err := parseProperty(line)
		if err != nil {
			return err
		}
		p.datasource.Properties[key] = value
	case blockGenerator:
		key, value, err := parseProperty(line)
		if err != nil {
			return err
		}
		p.generator.Properties[key] = value
	case blockModel:
		if strings.HasPrefix(line, "@@") {
			p.model.BlockAttributes = append(p.model.BlockAttributes, line)
			return nil
		}
		field, err := parseField(line)
		if err != nil {
			return err
		}
		p.model.Fields = append(p.model.Fields, field)
	case blockEnum:
		name := strings.Fields(line)[0]
		p.enum.Values = append(p.enum.Values, name)
	}
	return nil
}

func (p *parser) openBlock(line string) error {
	if !strings.HasSuffix(line, "{") {
		return fmt.Errorf("expected block declaration, got %q", line)
	}
	parts := strings.Fields(strings.TrimSuffix(line, "{"))
	if len(parts) != 2 {
		return fmt.Errorf("malformed block declaration %q", line)
	}
	kind, name := blockKind(parts[0]), parts[1]

	switch kind {
	case blockDatasource:
		p.datasource = &Datasource{Name: name, Properties: map[string]string{}}
	case blockGenerator:
		p.generator = &GeneratorBlock{Name: name, Properties: map[string]string{}}
	case blockModel:
		p.model = &Model{Name: name}
	case blockEnum:
		p.enum = &Enum{Name: name}
	default:
		return fmt.Errorf("unknown block kind %q", parts[0])
	}

	p.block = kind
	p.blockName = name
	return nil
}

func (p *parser) closeBlock() {
	switch p.block {
	case blockDatasource:
		p.schema.Datasources = append(p.schema.Datasources, p.datasource)
	case blockGenerator:
		p.schema.Generators = append(p.schema.Generators, p.generator)
	case blockModel:
		p.schema.Models = append(p.schema.Models, p.model)
	case blockEnum:
		p.schema.Enums = append(p.schema.Enums, p.enum)
	}
	p.block = blockNone
	p.blockName = ""
}

// resolveKinds classifies field types once all models and enums are known.
func (p *parser) resolveKinds() {
	models := map[string]bool{}
	enums := map[string]bool{}
	for _, m := range p.schema.Models {
		models[m.Name] = true
	}
	for _, e := range p.schema.Enums {
		enums[e.Name] = true
	}

	for _, m := range p.schema.Models {
		for _, f := range m.Fields {
			switch {
			case models[f.Type]:
				f.Kind = KindRelation
			case enums[f.Type]:
				f.Kind = KindEnum
			default:
				f.Kind = KindScalar
			}
		}
	}
}

// parseProperty handles `key = value` lines inside datasource and generator
// blocks; quotes around the value are dropped, env("X") is kept raw.
func parseProperty(line string) (string, string, error) {
	key, value, ok := strings.Cut(line, "=")
	if !ok {
		return "", "", fmt.Errorf("expected property assignment, got %q", line)
	}
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)
	value = strings.Trim(value, `"`)
	if key == "" {
		return "", "", fmt.Errorf("empty property name in %q", line)
	}
	return key, value, nil
}

// parseField handles `name Type markers attributes...` lines.
func parseField(line string) (*Field, error) {
	parts := strings.Fields(line)
	if len(parts) < 2 {
		return nil, fmt.Errorf("malformed field %q", line)
	}

	field := &Field{Name: parts[0], Type: parts[1]}

	if strings.HasSuffix(field.Type, "?") {
		field.Type = strings.TrimSuffix(field.Type, "?")
		field.Optional = true
	}
	if strings.HasSuffix(field.Type, "[]") {
		field.Type = strings.TrimSuffix(field.Type, "[]")
		field.List = true
	}

	// Everything after the type is attributes; args may contain spaces, so
	// split on the @ marker rather than on whitespace.
	rest := strings.TrimSpace(line[len(parts[0]):])
	rest = strings.TrimSpace(rest[len(parts[1]):])
	for _, raw := range strings.Split(rest, "@") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		name, args := raw, ""
		if open := strings.Index(raw, "("); open >= 0 {
			if !strings.HasSuffix(raw, ")") {
				return nil, fmt.Errorf("unterminated attribute arguments in %q", line)
			}
			name = raw[:open]
			args = raw[open+1 : len(raw)-1]
		}
		field.Attributes = append(field.Attributes, Attribute{Name: name, Args: args})
	}

	return field, nil
}

func stripComment(line string) string {
	if idx := strings.Index(line, "//"); idx >= 0 {
		return line[:idx]
	}
	return line
}
