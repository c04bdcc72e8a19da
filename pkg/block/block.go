package block

import "github.com/google/uuid"

// Type identifies the kind of content a block renders as.
type Type string

const (
	TypeText    Type = "text"
	TypeHeading Type = "heading"
	TypeImage   Type = "image"
	TypeButton  Type = "button"
	TypeDivider Type = "divider"
	TypeSpacer  Type = "spacer"

	// TypeAction marks a block whose Settings encode an interactive action
	// configuration destined for structured-markup generation.
	TypeAction Type = "action"
)

// IsAction reports whether blocks of this type carry an action configuration.
func (t Type) IsAction() bool {
	return t == TypeAction
}

// IsValid reports whether t is one of the known block types.
func (t Type) IsValid() bool {
	switch t {
	case TypeText, TypeHeading, TypeImage, TypeButton, TypeDivider, TypeSpacer, TypeAction:
		return true
	}
	return false
}

// Block is one unit of document content. ID is unique within a document's
// sequence; order within the sequence defines rendering order.
type Block struct {
	ID       string         `json:"id"`
	Type     Type           `json:"type"`
	Content  string         `json:"content,omitempty"`
	Settings map[string]any `json:"settings,omitempty"`
}

// New creates a block of the given type with a freshly generated unique id.
func New(t Type) Block {
	return Block{
		ID:   newID(),
		Type: t,
	}
}

func newID() string {
	return uuid.NewString()
}

// NewWithContent creates a block with initial text content.
func NewWithContent(t Type, content string) Block {
	b := New(t)
	b.Content = content
	return b
}

// Clone returns a deep copy of the block. Settings values are cloned
// recursively so the copy never aliases nested maps or slices of the
// original.
func (b Block) Clone() Block {
	c := b
	c.Settings = cloneSettings(b.Settings)
	return c
}

func cloneSettings(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return cloneSettings(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}
