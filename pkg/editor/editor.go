package editor

import (
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/mailblocks/pkg/action"
	"github.com/dmitrymomot/mailblocks/pkg/block"
	"github.com/dmitrymomot/mailblocks/pkg/history"
	"github.com/dmitrymomot/mailblocks/pkg/markup"
)

// Option configures an Editor.
type Option func(*Editor)

// WithLogger replaces the default slog logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Editor) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithHistoryLimit bounds the undo stack.
func WithHistoryLimit(n int) Option {
	return func(e *Editor) {
		e.historyLimit = n
	}
}

// Editor is the per-document façade over the block store, undo history and
// the action validation/generation pipeline.
type Editor struct {
	hist         history.History[block.Sequence]
	logger       *slog.Logger
	historyLimit int
}

// New creates an editor holding the given initial sequence.
func New(initial block.Sequence, opts ...Option) *Editor {
	e := &Editor{
		logger:       slog.Default(),
		historyLimit: history.DefaultLimit,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.hist = history.New(initial.Clone(), history.WithLimit[block.Sequence](e.historyLimit))
	return e
}

// Blocks returns a copy of the current block sequence.
func (e *Editor) Blocks() block.Sequence {
	return e.hist.Present().Clone()
}

// Load replaces the document body with an externally loaded sequence,
// recording the transition so the previous body stays reachable via undo.
func (e *Editor) Load(seq block.Sequence) {
	e.apply(seq.Clone())
}

// AddBlock inserts b at the given position (negative appends).
func (e *Editor) AddBlock(b block.Block, at int) {
	e.apply(e.hist.Present().Add(b, at))
}

// RemoveBlock drops the block with the given id.
func (e *Editor) RemoveBlock(id string) {
	e.apply(e.hist.Present().Remove(id))
}

// UpdateBlock patches the block with the given id.
func (e *Editor) UpdateBlock(id string, p block.Patch) {
	e.apply(e.hist.Present().Update(id, p))
}

// MoveBlock swaps the block with its neighbor in the given direction.
func (e *Editor) MoveBlock(id string, dir block.Direction) {
	e.apply(e.hist.Present().Move(id, dir))
}

// DuplicateBlock clones the block with the given id.
func (e *Editor) DuplicateBlock(id string) {
	e.apply(e.hist.Present().Duplicate(id))
}

// ReorderBlocks rebuilds the sequence in the order of ids; stale ids are
// skipped.
func (e *Editor) ReorderBlocks(ids []string) {
	e.apply(e.hist.Present().Reorder(ids))
}

func (e *Editor) apply(next block.Sequence) {
	e.hist = e.hist.Apply(next, history.SourceExternal)
}

// Undo steps the document back one recorded change. It reports whether a
// step happened.
func (e *Editor) Undo() bool {
	next, ok := e.hist.Undo()
	if ok {
		e.hist = next
	}
	return ok
}

// Redo re-applies the most recently undone change.
func (e *Editor) Redo() bool {
	next, ok := e.hist.Redo()
	if ok {
		e.hist = next
	}
	return ok
}

// CanUndo reports whether an undo step is available.
func (e *Editor) CanUndo() bool { return e.hist.CanUndo() }

// CanRedo reports whether a redo step is available.
func (e *Editor) CanRedo() bool { return e.hist.CanRedo() }

// DecodeAction interprets an action block's settings as a typed action
// configuration. The settings map is the wire form; decoding goes through
// JSON so loose numeric and nested-map values normalize the same way a
// persisted document would.
func DecodeAction(b block.Block) (action.Config, error) {
	if !b.Type.IsAction() {
		return action.Config{}, ErrNotActionBlock
	}
	raw, err := json.Marshal(b.Settings)
	if err != nil {
		return action.Config{}, errors.Join(ErrDecodeAction, err)
	}
	var cfg action.Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return action.Config{}, errors.Join(ErrDecodeAction, err)
	}
	return cfg, nil
}

// ValidateBlock runs live validation for the action block with the given
// id.
func (e *Editor) ValidateBlock(id string) (action.Result, error) {
	b, ok := e.hist.Present().Find(id)
	if !ok {
		return action.Result{}, ErrBlockNotFound
	}
	cfg, err := DecodeAction(b)
	if err != nil {
		return action.Result{}, err
	}
	return action.Validate(cfg), nil
}

// CompiledBlock is the per-block outcome of a document compile. Exactly one
// of Markup and Err is set.
type CompiledBlock struct {
	BlockID string
	Markup  markup.Object
	Err     error
}

// Compile generates structured markup for every action block in the current
// sequence. Failures are captured per block and logged; a broken block
// never aborts compilation of the rest of the document.
func (e *Editor) Compile() []CompiledBlock {
	var out []CompiledBlock
	for _, b := range e.hist.Present() {
		if !b.Type.IsAction() {
			continue
		}
		out = append(out, e.compileOne(b))
	}
	return out
}

// CompileBlock generates markup for a single action block.
func (e *Editor) CompileBlock(id string) (markup.Object, error) {
	b, ok := e.hist.Present().Find(id)
	if !ok {
		return nil, ErrBlockNotFound
	}
	compiled := e.compileOne(b)
	return compiled.Markup, compiled.Err
}

func (e *Editor) compileOne(b block.Block) CompiledBlock {
	cfg, err := DecodeAction(b)
	if err == nil {
		var obj markup.Object
		obj, err = markup.Generate(cfg)
		if err == nil {
			return CompiledBlock{BlockID: b.ID, Markup: obj}
		}
	}
	e.logger.Error("failed to compile action block",
		slog.String("block_id", b.ID),
		slog.Any("error", err),
	)
	return CompiledBlock{BlockID: b.ID, Err: err}
}
