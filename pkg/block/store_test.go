package block_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailblocks/pkg/block"
)

func seq(blocks ...block.Block) block.Sequence {
	return block.Sequence(blocks)
}

func b(id string, t block.Type) block.Block {
	return block.Block{ID: id, Type: t}
}

func TestSequence_Add(t *testing.T) {
	t.Parallel()

	t.Run("appends by default", func(t *testing.T) {
		t.Parallel()
		s := seq(b("1", block.TypeText))
		out := s.Add(b("2", block.TypeHeading), -1)

		require.Len(t, out, 2)
		assert.Equal(t, "2", out[1].ID)
		assert.Len(t, s, 1, "input snapshot must stay unchanged")
	})

	t.Run("inserts at position", func(t *testing.T) {
		t.Parallel()
		s := seq(b("1", block.TypeText), b("3", block.TypeText))
		out := s.Add(b("2", block.TypeHeading), 1)

		assert.Equal(t, []string{"1", "2", "3"}, out.IDs())
	})

	t.Run("clamps out-of-range position", func(t *testing.T) {
		t.Parallel()
		s := seq(b("1", block.TypeText))
		out := s.Add(b("2", block.TypeText), 99)

		assert.Equal(t, []string{"1", "2"}, out.IDs())
	})

	t.Run("inserts into empty sequence", func(t *testing.T) {
		t.Parallel()
		out := block.Sequence{}.Add(b("1", block.TypeText), 0)
		assert.Equal(t, []string{"1"}, out.IDs())
	})
}

func TestSequence_Remove(t *testing.T) {
	t.Parallel()

	t.Run("removes matching block", func(t *testing.T) {
		t.Parallel()
		s := seq(b("1", block.TypeText), b("2", block.TypeText))
		out := s.Remove("1")

		assert.Equal(t, []string{"2"}, out.IDs())
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		t.Parallel()
		s := seq(b("1", block.TypeText))
		out := s.Remove("nope")

		assert.Equal(t, s.IDs(), out.IDs())
	})
}

func TestSequence_Update(t *testing.T) {
	t.Parallel()

	t.Run("patches top-level fields", func(t *testing.T) {
		t.Parallel()
		s := seq(block.Block{ID: "1", Type: block.TypeText, Content: "old"})
		content := "new"
		out := s.Update("1", block.Patch{Content: &content})

		assert.Equal(t, "new", out[0].Content)
		assert.Equal(t, "old", s[0].Content, "input snapshot must stay unchanged")
	})

	t.Run("replaces settings wholesale", func(t *testing.T) {
		t.Parallel()
		s := seq(block.Block{
			ID:       "1",
			Type:     block.TypeAction,
			Settings: map[string]any{"type": "ViewAction", "name": "Go"},
		})
		out := s.Update("1", block.Patch{Settings: map[string]any{"type": "SaveAction"}})

		assert.Equal(t, map[string]any{"type": "SaveAction"}, out[0].Settings)
	})

	t.Run("nil patch fields are kept", func(t *testing.T) {
		t.Parallel()
		s := seq(block.Block{ID: "1", Type: block.TypeText, Content: "keep"})
		out := s.Update("1", block.Patch{})

		assert.Equal(t, "keep", out[0].Content)
		assert.Equal(t, block.TypeText, out[0].Type)
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		t.Parallel()
		s := seq(b("1", block.TypeText))
		content := "x"
		out := s.Update("nope", block.Patch{Content: &content})

		assert.Equal(t, "", out[0].Content)
	})
}

func TestSequence_Move(t *testing.T) {
	t.Parallel()

	t.Run("swaps with previous neighbor", func(t *testing.T) {
		t.Parallel()
		s := seq(b("1", block.TypeHeading), b("2", block.TypeAction))
		out := s.Move("2", block.DirectionUp)

		assert.Equal(t, []string{"2", "1"}, out.IDs())
	})

	t.Run("swaps with next neighbor", func(t *testing.T) {
		t.Parallel()
		s := seq(b("1", block.TypeText), b("2", block.TypeText))
		out := s.Move("1", block.DirectionDown)

		assert.Equal(t, []string{"2", "1"}, out.IDs())
	})

	t.Run("boundary moves are no-ops", func(t *testing.T) {
		t.Parallel()
		s := seq(b("1", block.TypeText), b("2", block.TypeText))

		assert.Equal(t, []string{"1", "2"}, s.Move("1", block.DirectionUp).IDs())
		assert.Equal(t, []string{"1", "2"}, s.Move("2", block.DirectionDown).IDs())
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		t.Parallel()
		s := seq(b("1", block.TypeText))
		assert.Equal(t, []string{"1"}, s.Move("nope", block.DirectionUp).IDs())
	})
}

func TestSequence_Duplicate(t *testing.T) {
	t.Parallel()

	t.Run("inserts clone after original with fresh id", func(t *testing.T) {
		t.Parallel()
		s := seq(
			block.Block{ID: "1", Type: block.TypeHeading, Content: "Hi"},
			b("2", block.TypeText),
		)
		out := s.Duplicate("1")

		require.Len(t, out, 3)
		assert.Equal(t, "1", out[0].ID)
		assert.NotEqual(t, "1", out[1].ID)
		assert.NotEmpty(t, out[1].ID)
		assert.Equal(t, "Hi", out[1].Content)
		assert.Equal(t, "2", out[2].ID)
	})

	t.Run("clone does not alias settings", func(t *testing.T) {
		t.Parallel()
		s := seq(block.Block{
			ID:       "1",
			Type:     block.TypeAction,
			Settings: map[string]any{"nested": map[string]any{"url": "https://a.com"}},
		})
		out := s.Duplicate("1")

		out[1].Settings["nested"].(map[string]any)["url"] = "https://b.com"
		assert.Equal(t, "https://a.com", s[0].Settings["nested"].(map[string]any)["url"])
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		t.Parallel()
		s := seq(b("1", block.TypeText))
		assert.Len(t, s.Duplicate("nope"), 1)
	})
}

func TestSequence_Reorder(t *testing.T) {
	t.Parallel()

	t.Run("reorders by id list", func(t *testing.T) {
		t.Parallel()
		s := seq(b("1", block.TypeText), b("2", block.TypeText), b("3", block.TypeText))
		out := s.Reorder([]string{"3", "1", "2"})

		assert.Equal(t, []string{"3", "1", "2"}, out.IDs())
	})

	t.Run("skips stale ids silently", func(t *testing.T) {
		t.Parallel()
		s := seq(b("1", block.TypeText), b("2", block.TypeText))
		out := s.Reorder([]string{"2", "ghost", "1"})

		assert.Equal(t, []string{"2", "1"}, out.IDs())
	})

	t.Run("omits blocks missing from the id list", func(t *testing.T) {
		t.Parallel()
		s := seq(b("1", block.TypeText), b("2", block.TypeText))
		out := s.Reorder([]string{"2"})

		assert.Equal(t, []string{"2"}, out.IDs())
	})
}

func TestSequence_EndToEnd(t *testing.T) {
	t.Parallel()

	s := seq(
		block.Block{ID: "1", Type: block.TypeHeading, Content: "Hi"},
		block.Block{ID: "2", Type: block.TypeAction},
	)

	moved := s.Move("2", block.DirectionUp)
	require.Equal(t, []string{"2", "1"}, moved.IDs())

	final := moved.Duplicate("1")
	require.Len(t, final, 3)
	assert.Equal(t, "2", final[0].ID)
	assert.Equal(t, "1", final[1].ID)
	assert.Equal(t, "Hi", final[2].Content)
	assert.NotEqual(t, "1", final[2].ID)
}
