package avatar

import (
	"fmt"

	apperrors "github.com/alexisbeaulieu97/alpaca/pkg/errors"
)

// Selection maps every category to the chosen option ID. It is a value
// type: assignment copies it, and == compares every category.
type Selection struct {
	values [categoryCount]string
}

// Source draws uniformly distributed integers in [0, n).
// *math/rand/v2.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

var defaultSelection = Selection{values: [categoryCount]string{
	Background: backgroundColors[0],
	Fur:        furColors[0],
	Ears:       "pointy",
	Hair:       "poof",
	Eyes:       "happy",
	Mouth:      "smile",
	Clothes:    "none",
	Accessory:  "none",
}}

// DefaultSelection returns the startup selection.
func DefaultSelection() Selection {
	return defaultSelection
}

// Reset returns the default selection regardless of any prior state.
func Reset() Selection {
	return defaultSelection
}

// Get returns the option ID chosen for the category.
func (s Selection) Get(c Category) string {
	if !c.valid() {
		return ""
	}
	return s.values[c]
}

// Option returns the full option chosen for the category.
func (s Selection) Option(c Category) Option {
	opt, ok := Lookup(c, s.Get(c))
	if !ok {
		return Option{ID: s.Get(c), Label: s.Get(c)}
	}
	return opt
}

// Pick returns a copy of s with category c set to id. s is not modified.
// Passing an id that is not registered for c is a programming error.
func Pick(s Selection, c Category, id string) Selection {
	if !Valid(c, id) {
		panic(fmt.Sprintf("avatar: %q is not an option of %s", id, c))
	}
	s.values[c] = id
	return s
}

// Randomize draws one option per category, independently and uniformly.
func Randomize(src Source) Selection {
	var s Selection
	for c := Category(0); c < categoryCount; c++ {
		opts := registry[c]
		s.values[c] = opts[src.IntN(len(opts))].ID
	}
	return s
}

// Validate checks that every category holds a registered option.
func (s Selection) Validate() error {
	for c := Category(0); c < categoryCount; c++ {
		if !Valid(c, s.values[c]) {
			return apperrors.NewValidationError(c.String(), fmt.Sprintf("unknown option %q", s.values[c]), nil)
		}
	}
	return nil
}

// Raw builds a selection without validation. Renderers accept any value, so
// this exists for callers that deliberately step outside the registry.
func Raw(values map[Category]string) Selection {
	s := defaultSelection
	for c, v := range values {
		if c.valid() {
			s.values[c] = v
		}
	}
	return s
}
