package document

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/mailblocks/pkg/block"
)

// ErrInvalidTemplate is returned when a template definition cannot be
// parsed or names an unknown block type.
var ErrInvalidTemplate = errors.New("invalid document template")

// Template is a starter-document definition. Blocks carry no ids; ids are
// generated at instantiation so two documents created from the same
// template never collide.
type Template struct {
	Name   string          `yaml:"name"`
	Blocks []TemplateBlock `yaml:"blocks"`
}

// TemplateBlock describes one block of a template.
type TemplateBlock struct {
	Type     block.Type     `yaml:"type"`
	Content  string         `yaml:"content,omitempty"`
	Settings map[string]any `yaml:"settings,omitempty"`
}

// ParseTemplate decodes a YAML template definition.
func ParseTemplate(data []byte) (Template, error) {
	var tpl Template
	if err := yaml.Unmarshal(data, &tpl); err != nil {
		return Template{}, errors.Join(ErrInvalidTemplate, err)
	}
	if tpl.Name == "" {
		return Template{}, fmt.Errorf("%w: name is required", ErrInvalidTemplate)
	}
	for i, tb := range tpl.Blocks {
		if !tb.Type.IsValid() {
			return Template{}, fmt.Errorf("%w: blocks[%d] has unknown type %q", ErrInvalidTemplate, i, tb.Type)
		}
	}
	return tpl, nil
}

// Instantiate creates a new document from the template with fresh block
// ids.
func (t Template) Instantiate() Document {
	doc := New(t.Name)
	doc.Blocks = make(block.Sequence, 0, len(t.Blocks))
	for _, tb := range t.Blocks {
		b := block.New(tb.Type)
		b.Content = tb.Content
		b.Settings = normalizeSettings(tb.Settings)
		doc.Blocks = append(doc.Blocks, b)
	}
	return doc
}

// normalizeSettings converts YAML's map[any]any nesting into the
// string-keyed form blocks carry, dropping keys that are not strings.
func normalizeSettings(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = normalizeValue(v)
	}
	return out
}

func normalizeValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return normalizeSettings(val)
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			key, ok := k.(string)
			if !ok {
				continue
			}
			out[key] = normalizeValue(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalizeValue(item)
		}
		return out
	default:
		return v
	}
}
