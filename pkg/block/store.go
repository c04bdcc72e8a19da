package block

// Direction selects a neighbor for Move.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// Sequence is the ordered block list that constitutes one document body.
// All methods return a new snapshot and leave the receiver untouched.
type Sequence []Block

// Patch describes a partial top-level update of a block. Nil fields are left
// as they are. Settings, when non-nil, replaces the block's settings map
// wholesale — callers wanting a partial settings update must merge before
// calling.
type Patch struct {
	Type     *Type
	Content  *string
	Settings map[string]any
}

// Clone returns a deep copy of the sequence.
func (s Sequence) Clone() Sequence {
	if s == nil {
		return nil
	}
	out := make(Sequence, len(s))
	for i, b := range s {
		out[i] = b.Clone()
	}
	return out
}

// IDs returns the block ids in sequence order.
func (s Sequence) IDs() []string {
	ids := make([]string, len(s))
	for i, b := range s {
		ids[i] = b.ID
	}
	return ids
}

// Find returns the block with the given id and whether it was found.
func (s Sequence) Find(id string) (Block, bool) {
	for _, b := range s {
		if b.ID == id {
			return b.Clone(), true
		}
	}
	return Block{}, false
}

func (s Sequence) indexOf(id string) int {
	for i, b := range s {
		if b.ID == id {
			return i
		}
	}
	return -1
}

// Add inserts b at position at, clamped to [0, len]. A negative position
// appends. Always succeeds.
func (s Sequence) Add(b Block, at int) Sequence {
	if at < 0 || at > len(s) {
		at = len(s)
	}
	out := make(Sequence, 0, len(s)+1)
	out = append(out, s[:at].Clone()...)
	out = append(out, b.Clone())
	out = append(out, s[at:].Clone()...)
	return out
}

// Remove drops the first block with the given id. Unknown ids leave the
// sequence unchanged.
func (s Sequence) Remove(id string) Sequence {
	i := s.indexOf(id)
	if i < 0 {
		return s.Clone()
	}
	out := make(Sequence, 0, len(s)-1)
	out = append(out, s[:i].Clone()...)
	out = append(out, s[i+1:].Clone()...)
	return out
}

// Update shallow-merges the patch into the matching block's top-level
// fields. Unknown ids leave the sequence unchanged.
func (s Sequence) Update(id string, p Patch) Sequence {
	i := s.indexOf(id)
	if i < 0 {
		return s.Clone()
	}
	out := s.Clone()
	if p.Type != nil {
		out[i].Type = *p.Type
	}
	if p.Content != nil {
		out[i].Content = *p.Content
	}
	if p.Settings != nil {
		out[i].Settings = cloneSettings(p.Settings)
	}
	return out
}

// Move swaps the block with its immediate neighbor in the given direction.
// Blocks already at the boundary, and unknown ids, leave the sequence
// unchanged.
func (s Sequence) Move(id string, dir Direction) Sequence {
	i := s.indexOf(id)
	if i < 0 {
		return s.Clone()
	}
	j := i
	switch dir {
	case DirectionUp:
		j = i - 1
	case DirectionDown:
		j = i + 1
	}
	if j < 0 || j >= len(s) || j == i {
		return s.Clone()
	}
	out := s.Clone()
	out[i], out[j] = out[j], out[i]
	return out
}

// Duplicate clones the matching block under a freshly generated id and
// inserts the clone immediately after the original. Unknown ids leave the
// sequence unchanged.
func (s Sequence) Duplicate(id string) Sequence {
	i := s.indexOf(id)
	if i < 0 {
		return s.Clone()
	}
	dup := s[i].Clone()
	dup.ID = newID()
	out := make(Sequence, 0, len(s)+1)
	out = append(out, s[:i+1].Clone()...)
	out = append(out, dup)
	out = append(out, s[i+1:].Clone()...)
	return out
}

// Reorder produces a sequence containing exactly the blocks whose ids appear
// in ids, in that order. Ids not present in the current sequence are
// silently skipped — the id list may be stale relative to the sequence, and
// resilience beats strictness here.
func (s Sequence) Reorder(ids []string) Sequence {
	byID := make(map[string]Block, len(s))
	for _, b := range s {
		byID[b.ID] = b
	}
	out := make(Sequence, 0, len(ids))
	for _, id := range ids {
		if b, ok := byID[id]; ok {
			out = append(out, b.Clone())
			delete(byID, id)
		}
	}
	return out
}
