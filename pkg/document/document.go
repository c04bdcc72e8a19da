package document

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/mailblocks/pkg/block"
)

// Document is one named mail document. Blocks order is rendering order.
type Document struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Blocks    block.Sequence `json:"blocks"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// New creates an empty document with a generated id.
func New(name string) Document {
	now := time.Now().UTC()
	return Document{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Clone returns a deep copy of the document.
func (d Document) Clone() Document {
	c := d
	c.Blocks = d.Blocks.Clone()
	return c
}

// UnmarshalJSON decodes a persisted document, recovering from damaged block
// data instead of failing the whole load: non-object entries and entries
// without an id or type are dropped, and a blocks field that is not an
// array yields an empty body.
func (d *Document) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID        string          `json:"id"`
		Name      string          `json:"name"`
		Blocks    json.RawMessage `json:"blocks"`
		CreatedAt time.Time       `json:"created_at"`
		UpdatedAt time.Time       `json:"updated_at"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	d.ID = raw.ID
	d.Name = raw.Name
	d.CreatedAt = raw.CreatedAt
	d.UpdatedAt = raw.UpdatedAt
	d.Blocks = DecodeBlocks(raw.Blocks)
	return nil
}

// DecodeBlocks leniently decodes a persisted blocks array. Conforming
// entries are kept in order; everything else is silently discarded.
func DecodeBlocks(raw json.RawMessage) block.Sequence {
	if len(raw) == 0 {
		return nil
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		// Not an array at all: lossy recovery, the document loads empty.
		return block.Sequence{}
	}
	out := make(block.Sequence, 0, len(entries))
	for _, entry := range entries {
		var b block.Block
		if err := json.Unmarshal(entry, &b); err != nil {
			continue
		}
		if b.ID == "" || b.Type == "" {
			continue
		}
		out = append(out, b)
	}
	return out
}
