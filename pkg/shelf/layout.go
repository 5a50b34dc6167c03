package shelf

import (
	"fmt"

	"github.com/BrandonKowalski/shelf/pkg/shelf/constants"
)

// Template is a skin-authored description of one item's layout. Only the
// outer size and the number of sub-focus targets matter to the containers;
// what gets drawn inside is up to the RenderContext.
type Template struct {
	Name          string  `toml:"name"`
	Width         float64 `toml:"width"`
	Height        float64 `toml:"height"`
	SubFocusCount int     `toml:"sub_focus"` // Focusable sub-items inside one item
}

// Size returns the template's extent along orientation o.
func (t *Template) Size(o constants.Orientation) float64 {
	if o == constants.Horizontal {
		return t.Width
	}
	return t.Height
}

// CrossSize returns the template's extent across orientation o.
func (t *Template) CrossSize(o constants.Orientation) float64 {
	if o == constants.Horizontal {
		return t.Height
	}
	return t.Width
}

// Variant pairs a visibility condition with a template. An empty condition
// always matches.
type Variant struct {
	Condition string
	Template  *Template
}

// ConditionEvaluator resolves opaque condition tokens to booleans.
type ConditionEvaluator interface {
	Evaluate(condition string) bool
}

// ConditionFunc adapts a function to ConditionEvaluator.
type ConditionFunc func(condition string) bool

func (f ConditionFunc) Evaluate(condition string) bool {
	return f(condition)
}

// LayoutSet is the ordered list of conditional templates for one role
// (unfocused or focused).
type LayoutSet []Variant

// Resolve picks the active template: the first variant that is
// unconditioned or whose condition holds, else variant 0. A nil evaluator
// treats every condition as false.
func (ls LayoutSet) Resolve(eval ConditionEvaluator) (*Template, error) {
	if len(ls) == 0 {
		return nil, ErrNoTemplate
	}
	for _, v := range ls {
		if v.Template == nil {
			continue
		}
		if v.Condition == "" || (eval != nil && eval.Evaluate(v.Condition)) {
			return v.Template, nil
		}
	}
	if ls[0].Template == nil {
		return nil, ErrNoTemplate
	}
	return ls[0].Template, nil
}

// Fallback returns the first variant's template, or nil.
func (ls LayoutSet) Fallback() *Template {
	for _, v := range ls {
		if v.Template != nil {
			return v.Template
		}
	}
	return nil
}

// resolveTemplate resolves ls and checks the measured extent. On any problem
// it falls back to the first template and reports the error so the caller
// can log it.
func resolveTemplate(ls LayoutSet, eval ConditionEvaluator, measure func(*Template) float64) (*Template, error) {
	t, err := ls.Resolve(eval)
	if err == nil && measure(t) > 0 {
		return t, nil
	}
	if err == nil {
		err = fmt.Errorf("%w: template %q", ErrInvalidExtent, t.Name)
	}

	fb := ls.Fallback()
	if fb == nil || measure(fb) <= 0 {
		return nil, err
	}
	return fb, err
}
