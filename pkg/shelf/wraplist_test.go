package shelf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWrapList(t *testing.T, perPage int, labels ...string) *Container {
	t.Helper()
	c := NewWrappingList(listConfig(perPage))
	c.SetItems(letters(labels...))
	require.Equal(t, perPage, c.ItemsPerPage())
	return c
}

func TestWrapList_PadsShortStore(t *testing.T) {
	c := newWrapList(t, 5, "A", "B", "C")

	assert.Equal(t, 5, c.store.len())
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, []string{"A", "B", "C"}, labelsOf(c.Items()))
	assert.Equal(t, "A", c.store.at(3).item.Label())
	assert.Equal(t, "B", c.store.at(4).item.Label())
}

func TestWrapList_MoveDownCyclesBack(t *testing.T) {
	c := newWrapList(t, 5, "A", "B", "C")
	start := c.SelectedIndex()

	for i := 0; i < 5; i++ {
		require.True(t, c.OnDown())
		idx := c.SelectedIndex()
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, 3)
	}

	assert.Equal(t, start, c.SelectedIndex())
}

func TestWrapList_MovesNeverHitAnEdge(t *testing.T) {
	cfg := listConfig(3)
	cfg.Navigation = Navigation{Up: 7, Down: 7}
	c := NewWrappingList(cfg)
	c.SetItems(letters("A", "B", "C", "D"))

	for i := 0; i < 10; i++ {
		require.True(t, c.OnUp())
	}
	assert.Equal(t, -10, c.Offset())
	assert.Equal(t, wrapIndex(-10, 0, 4), c.SelectedIndex())
}

func TestWrapList_VisibleWindowIsFull(t *testing.T) {
	for n := 1; n < 5; n++ {
		labels := []string{"A", "B", "C", "D"}[:n]
		c := newWrapList(t, 5, labels...)
		rc := &recordingContext{}

		c.Render(rc, 0)

		assert.Len(t, rc.slots, 5, "n=%d", n)
		for _, s := range rc.slots {
			assert.NotNil(t, s.Item)
			assert.Less(t, s.Logical, n)
		}
		assert.Len(t, rc.focused(), 1)
	}
}

func TestWrapList_FocusPosition(t *testing.T) {
	cfg := listConfig(5)
	cfg.FocusPosition = 2
	c := NewWrappingList(cfg)
	c.SetItems(letters("A", "B", "C", "D", "E", "F"))

	assert.Equal(t, 2, c.Cursor())
	assert.Equal(t, 2, c.SelectedIndex())

	c.OnDown()
	assert.Equal(t, 2, c.Cursor())
	assert.Equal(t, 3, c.SelectedIndex())
}

func TestWrapList_SelectItemTakesShortestWay(t *testing.T) {
	c := newWrapList(t, 5, "A", "B", "C", "D", "E", "F", "G", "H", "I", "J")

	c.SelectItem(9)
	assert.Equal(t, -1, c.Offset())
	assert.Equal(t, 9, c.SelectedIndex())

	c.SelectItem(2)
	assert.Equal(t, 2, c.Offset())
	assert.Equal(t, 2, c.SelectedIndex())
}

func TestWrapList_IndexRoundTripModulo(t *testing.T) {
	const n = 7
	for combined := -20; combined < 20; combined++ {
		idx := wrapIndex(combined, 0, n)
		require.GreaterOrEqual(t, idx, 0)
		require.Less(t, idx, n)

		back := wrapPosition(idx, combined, n)
		assert.Equal(t, idx, wrapIndex(back, 0, n))
		assert.Equal(t, combined, back)
	}
}

func TestWrapList_RebindStripsFiller(t *testing.T) {
	c := newWrapList(t, 5, "A", "B")
	require.Equal(t, 5, c.store.len())

	c.SetItems(letters("A", "B", "C", "D", "E", "F"))
	assert.Equal(t, 6, c.store.len())
	assert.Equal(t, 6, c.Len())

	c.Reset()
	assert.Equal(t, 0, c.store.len())

	c.AddItem(&MenuItem{Text: "Z"})
	assert.Equal(t, 5, c.store.len())
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 0, c.SelectedIndex())
}

func labelsOf(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Label()
	}
	return out
}
