package editor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailblocks/pkg/action"
	"github.com/dmitrymomot/mailblocks/pkg/block"
	"github.com/dmitrymomot/mailblocks/pkg/editor"
	"github.com/dmitrymomot/mailblocks/pkg/markup"
)

func viewActionBlock(id string) block.Block {
	return block.Block{
		ID:   id,
		Type: block.TypeAction,
		Settings: map[string]any{
			"type":   "ViewAction",
			"name":   "Go",
			"target": "https://x.com",
		},
	}
}

func TestEditor_MutationsRecordHistory(t *testing.T) {
	t.Parallel()

	ed := editor.New(nil)
	heading := block.NewWithContent(block.TypeHeading, "Hi")
	ed.AddBlock(heading, -1)
	ed.AddBlock(viewActionBlock("a1"), -1)

	require.Len(t, ed.Blocks(), 2)
	assert.True(t, ed.CanUndo())

	ed.MoveBlock("a1", block.DirectionUp)
	assert.Equal(t, "a1", ed.Blocks()[0].ID)

	require.True(t, ed.Undo())
	assert.Equal(t, heading.ID, ed.Blocks()[0].ID)

	require.True(t, ed.Redo())
	assert.Equal(t, "a1", ed.Blocks()[0].ID)
}

func TestEditor_UndoRedoDoNotReRecord(t *testing.T) {
	t.Parallel()

	ed := editor.New(nil)
	ed.AddBlock(block.NewWithContent(block.TypeText, "one"), -1)
	ed.AddBlock(block.NewWithContent(block.TypeText, "two"), -1)

	require.True(t, ed.Undo())
	require.True(t, ed.CanRedo())

	// A redo followed by an undo keeps both stacks intact; if undo/redo
	// re-recorded themselves the opposite stack would be destroyed.
	require.True(t, ed.Redo())
	require.True(t, ed.CanUndo())
	require.True(t, ed.Undo())
	assert.True(t, ed.CanRedo())

	// A real edit after undo clears the redo stack.
	ed.AddBlock(block.NewWithContent(block.TypeText, "three"), -1)
	assert.False(t, ed.CanRedo())
}

func TestEditor_NoOpMutationDoesNotGrowHistory(t *testing.T) {
	t.Parallel()

	ed := editor.New(block.Sequence{viewActionBlock("a1")})
	assert.False(t, ed.CanUndo())

	ed.RemoveBlock("ghost")
	assert.False(t, ed.CanUndo(), "removing an unknown id must not record a change")
}

func TestDecodeAction(t *testing.T) {
	t.Parallel()

	t.Run("decodes typed config from settings", func(t *testing.T) {
		t.Parallel()
		cfg, err := editor.DecodeAction(viewActionBlock("a1"))
		require.NoError(t, err)

		assert.Equal(t, action.TypeView, cfg.Type)
		first, ok := cfg.Target.First()
		require.True(t, ok)
		assert.Equal(t, "https://x.com", first)
	})

	t.Run("rejects content blocks", func(t *testing.T) {
		t.Parallel()
		_, err := editor.DecodeAction(block.NewWithContent(block.TypeText, "hi"))
		assert.ErrorIs(t, err, editor.ErrNotActionBlock)
	})

	t.Run("nested payloads decode", func(t *testing.T) {
		t.Parallel()
		b := block.Block{
			ID:   "a2",
			Type: block.TypeAction,
			Settings: map[string]any{
				"type": "RsvpAction",
				"name": "RSVP",
				"event": map[string]any{
					"name":      "Launch",
					"startDate": "2026-09-01T18:00:00Z",
					"location":  map[string]any{"name": "HQ"},
				},
			},
		}
		cfg, err := editor.DecodeAction(b)
		require.NoError(t, err)
		require.NotNil(t, cfg.Event)
		assert.Equal(t, "Launch", cfg.Event.Name)
	})
}

func TestEditor_ValidateBlock(t *testing.T) {
	t.Parallel()

	ed := editor.New(block.Sequence{
		viewActionBlock("a1"),
		{ID: "a2", Type: block.TypeAction, Settings: map[string]any{"type": "ViewAction"}},
	})

	res, err := ed.ValidateBlock("a1")
	require.NoError(t, err)
	assert.True(t, res.Valid)

	res, err = ed.ValidateBlock("a2")
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Contains(t, res.Errors, "Action name is required")

	_, err = ed.ValidateBlock("ghost")
	assert.ErrorIs(t, err, editor.ErrBlockNotFound)
}

func TestEditor_Compile(t *testing.T) {
	t.Parallel()

	t.Run("compiles action blocks only", func(t *testing.T) {
		t.Parallel()
		ed := editor.New(block.Sequence{
			block.NewWithContent(block.TypeHeading, "Hi"),
			viewActionBlock("a1"),
		})

		compiled := ed.Compile()
		require.Len(t, compiled, 1)
		assert.Equal(t, "a1", compiled[0].BlockID)
		require.NoError(t, compiled[0].Err)
		assert.Equal(t, "EmailMessage", compiled[0].Markup["@type"])
	})

	t.Run("one broken block does not abort the rest", func(t *testing.T) {
		t.Parallel()
		broken := block.Block{
			ID:   "bad",
			Type: block.TypeAction,
			Settings: map[string]any{
				"type": "FlightReservation",
				"name": "Flight",
				// flight payload missing: generation must fail fatally
			},
		}
		ed := editor.New(block.Sequence{broken, viewActionBlock("ok")})

		compiled := ed.Compile()
		require.Len(t, compiled, 2)

		assert.Equal(t, "bad", compiled[0].BlockID)
		assert.True(t, markup.IsMissingPayloadError(compiled[0].Err))
		assert.Nil(t, compiled[0].Markup)

		assert.Equal(t, "ok", compiled[1].BlockID)
		require.NoError(t, compiled[1].Err)
		assert.NotNil(t, compiled[1].Markup)
	})

	t.Run("compile single block", func(t *testing.T) {
		t.Parallel()
		ed := editor.New(block.Sequence{viewActionBlock("a1")})

		obj, err := ed.CompileBlock("a1")
		require.NoError(t, err)
		assert.Equal(t, "EmailMessage", obj["@type"])

		_, err = ed.CompileBlock("ghost")
		assert.ErrorIs(t, err, editor.ErrBlockNotFound)
	})
}

func TestEditor_LoadRecordsExternalChange(t *testing.T) {
	t.Parallel()

	ed := editor.New(block.Sequence{viewActionBlock("a1")})
	ed.Load(block.Sequence{block.NewWithContent(block.TypeText, "fresh")})

	require.True(t, ed.CanUndo())
	require.True(t, ed.Undo())
	assert.Equal(t, "a1", ed.Blocks()[0].ID)
}
