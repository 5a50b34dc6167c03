package shelf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/shelf/pkg/shelf/constants"
)

func conditions(active ...string) ConditionFunc {
	return func(cond string) bool {
		for _, a := range active {
			if a == cond {
				return true
			}
		}
		return false
	}
}

func TestLayoutSet_Resolve(t *testing.T) {
	compact := &Template{Name: "compact", Height: 5}
	normal := &Template{Name: "normal", Height: 10}
	wide := &Template{Name: "wide", Height: 20}
	ls := LayoutSet{
		{Condition: "compact", Template: compact},
		{Condition: "wide", Template: wide},
		{Template: normal},
	}

	tests := []struct {
		name string
		eval ConditionEvaluator
		want *Template
	}{
		{"nil evaluator", nil, normal},
		{"first true wins", conditions("wide", "compact"), compact},
		{"second condition", conditions("wide"), wide},
		{"unconditioned entry", conditions(), normal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ls.Resolve(tt.eval)
			require.NoError(t, err)
			assert.Same(t, tt.want, got)
		})
	}
}

func TestLayoutSet_ResolveFallsBackToFirst(t *testing.T) {
	first := &Template{Name: "first", Height: 5}
	ls := LayoutSet{{Condition: "a", Template: first}, {Condition: "b", Template: &Template{}}}

	got, err := ls.Resolve(conditions())
	require.NoError(t, err)
	assert.Same(t, first, got)
}

func TestLayoutSet_Empty(t *testing.T) {
	_, err := LayoutSet{}.Resolve(nil)
	assert.ErrorIs(t, err, ErrNoTemplate)
	assert.Nil(t, LayoutSet{}.Fallback())
}

func TestResolveTemplate_InvalidExtentFallsBack(t *testing.T) {
	good := &Template{Name: "good", Height: 10}
	broken := &Template{Name: "broken", Height: 0}
	ls := LayoutSet{{Condition: "x", Template: good}, {Template: broken}}
	measure := func(t *Template) float64 { return t.Size(constants.Vertical) }

	got, err := resolveTemplate(ls, nil, measure)

	assert.Same(t, good, got)
	assert.ErrorIs(t, err, ErrInvalidExtent)
}

func TestContainer_LayoutErrorIsReported(t *testing.T) {
	cfg := listConfig(3)
	cfg.Layouts = LayoutSet{
		{Condition: "x", Template: itemTemplate()},
		{Template: &Template{Name: "broken"}},
	}
	c := NewList(cfg)

	err := c.LayoutError()
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
	assert.ErrorIs(t, err, ErrInvalidExtent)
	assert.Equal(t, 3, c.ItemsPerPage(), "the fallback template is used")
}

func TestContainer_NoTemplateStillNavigates(t *testing.T) {
	c := NewList(Config{ID: 1, Viewport: Rect{Width: 100, Height: 100}})
	c.SetItems(letters("A", "B"))

	assert.ErrorIs(t, c.LayoutError(), ErrNoTemplate)
	assert.Equal(t, 1, c.ItemsPerPage())
	assert.True(t, c.OnDown())
	assert.Equal(t, 1, c.SelectedIndex())

	rc := &recordingContext{}
	c.Render(rc, 0)
	assert.Empty(t, rc.slots)
}

func TestContainer_NoTemplateClampsAfterShrink(t *testing.T) {
	c := NewList(Config{ID: 1, Viewport: Rect{Width: 100, Height: 30}})
	c.SetItems(letters("a", "b", "c", "d", "e", "f", "g", "h", "i", "j"))
	require.True(t, c.SelectItem(9))

	c.SetItems(letters("a", "b"))

	assert.Equal(t, 1, c.SelectedIndex())
	assert.NotPanics(t, func() {
		require.NotNil(t, c.SelectedItem())
		assert.Equal(t, "b", c.SelectedItem().Label())
	})
	assert.LessOrEqual(t, c.Offset()+c.Cursor(), 1)
}

func TestContainer_ConditionChangeRecomputesPage(t *testing.T) {
	cfg := listConfig(3)
	cfg.Layouts = LayoutSet{
		{Condition: "compact", Template: &Template{Name: "compact", Width: 100, Height: 5}},
		{Template: itemTemplate()},
	}
	c := NewList(cfg)
	c.SetItems(letters("a", "b", "c", "d", "e", "f", "g", "h"))
	rc := &recordingContext{}
	c.Render(rc, 0)
	require.Equal(t, 3, c.ItemsPerPage())
	require.EqualValues(t, 3, c.Stats().Live.Load())

	c.SetConditionEvaluator(conditions("compact"))

	assert.Equal(t, 6, c.ItemsPerPage())
	assert.EqualValues(t, 0, c.Stats().Live.Load(), "instances of the old template are freed")
}

func TestTemplate_Size(t *testing.T) {
	tmpl := &Template{Width: 300, Height: 40}
	assert.Equal(t, 40.0, tmpl.Size(constants.Vertical))
	assert.Equal(t, 300.0, tmpl.Size(constants.Horizontal))
	assert.Equal(t, 300.0, tmpl.CrossSize(constants.Vertical))
	assert.Equal(t, 40.0, tmpl.CrossSize(constants.Horizontal))
}
