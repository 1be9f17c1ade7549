package widgets

import "github.com/tteejj/supertui/core/focus"

// target adapts a piece of widget state into a focus.Target via callbacks.
type target struct {
	id        string
	focusable func() bool
	loaded    func() bool
	onFocus   func()
	onBlur    func()
}

func (t *target) ID() string { return t.id }

func (t *target) CanFocus() bool {
	if t.focusable == nil {
		return true
	}
	return t.focusable()
}

func (t *target) Loaded() bool {
	if t.loaded == nil {
		return true
	}
	return t.loaded()
}

func (t *target) Focus() error {
	if t.onFocus != nil {
		t.onFocus()
	}
	return nil
}

func (t *target) Blur() {
	if t.onBlur != nil {
		t.onBlur()
	}
}

var _ focus.Target = (*target)(nil)
